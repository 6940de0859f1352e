package scheme

import (
	"context"

	"github.com/litetable/litetable-scheme/internal/litetable"
	"github.com/litetable/litetable-scheme/internal/metrics"
	"github.com/litetable/litetable-scheme/internal/tuple"
)

// Source pulls the next row from src and decodes it. It returns false, without an error, once
// src has no more rows. A failing src is a fatal read error; no partial tuple is returned.
func (s *Scheme) Source(ctx context.Context, src RowSource) (tuple.Tuple, bool, error) {
	var (
		key   string
		value litetable.Result
	)

	hasNext, err := src.Next(ctx, &key, &value)
	if err != nil {
		metrics.RecordFailure(metrics.OpDecode, "read")
		return nil, false, wrapError(ErrRead, err, "fetching next row")
	}
	if !hasNext {
		return nil, false, nil
	}

	result, err := s.Decode(key, value)
	if err != nil {
		return nil, false, err
	}
	return result, true, nil
}

// Decode projects the declared columns of row into a tuple: key first, then one value per column
// in declaration order. Absent cells still produce a slot.
func (s *Scheme) Decode(key string, row RowValue) (tuple.Tuple, error) {
	if row == nil {
		row = litetable.Result{}
	}

	result := make(tuple.Tuple, 0, len(s.codecs)+1)
	result = append(result, key)

	for _, c := range s.codecs {
		raw := row.Value(c.column.Family, c.column.Qualifier)
		v, err := c.decode(raw)
		if err != nil {
			metrics.RecordFailure(metrics.OpDecode, "coercion")
			return nil, wrapError(ErrCoercion, err, "row %s column %s", key, c.address)
		}
		result = append(result, v)
	}

	metrics.RecordDecoded(len(s.codecs))
	return result, nil
}
