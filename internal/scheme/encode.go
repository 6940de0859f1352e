package scheme

import (
	"bytes"
	"context"
	"errors"

	"github.com/litetable/litetable-scheme/internal/litetable"
	"github.com/litetable/litetable-scheme/internal/metrics"
	"github.com/litetable/litetable-scheme/internal/tuple"
)

// Sink encodes entry and hands the mutation to sink with a nil routing key.
func (s *Scheme) Sink(ctx context.Context, entry tuple.Entry, sink RowSink) error {
	m, err := s.Encode(entry)
	if err != nil {
		return err
	}

	if err = sink.Collect(ctx, nil, m); err != nil {
		metrics.RecordFailure(metrics.OpEncode, "sink")
		return wrapError(ErrSink, err, "row %s", m.Key)
	}
	return nil
}

// Encode builds the mutation for entry. Every declared value field yields exactly one cell; a nil
// value, typed nil pointers included, yields a zero-length cell. Values implementing io.WriterTo
// are written as their own payload, so a reader passed as a value (a *bytes.Buffer, say) is
// consumed. The family and qualifier slices of the cells are shared by every mutation of the
// scheme and must not be modified.
func (s *Scheme) Encode(entry tuple.Entry) (*litetable.Mutation, error) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	key, err := s.rowKey(buf, entry)
	if err != nil {
		metrics.RecordFailure(metrics.OpEncode, "key")
		return nil, err
	}

	m := litetable.NewMutation(key, len(s.codecs))
	for _, c := range s.codecs {
		value, err := entry.Get(c.field.Name)
		if err != nil {
			metrics.RecordFailure(metrics.OpEncode, "field")
			return nil, wrapError(ErrFieldNotFound, err, "row %s column %s", key, c.address)
		}

		payload, err := c.encode(buf, value)
		if err != nil {
			metrics.RecordFailure(metrics.OpEncode, "coercion")
			return nil, wrapError(ErrCoercion, err, "row %s column %s", key, c.address)
		}
		m.Add(c.column.Family, c.column.Qualifier, payload)
	}

	metrics.RecordEncoded(m.Len())
	return m, nil
}

// rowKey extracts the row key from entry using the key field's own encoding.
func (s *Scheme) rowKey(buf *bytes.Buffer, entry tuple.Entry) (string, error) {
	value, err := entry.Get(s.keyField.Name)
	if err != nil {
		return "", wrapError(ErrFieldNotFound, err, "key field")
	}

	key, err := s.keyCodec.encode(buf, value)
	if err != nil {
		return "", wrapError(ErrCoercion, err, "key field %s", s.keyField.Name)
	}
	if len(key) == 0 {
		return "", newError(ErrMissingKey, "key field %s is empty", s.keyField.Name)
	}
	return string(key), nil
}

// IsRecordError reports whether err was caused by the data of a single record, as opposed to the
// scheme declaration or the row source. Whether such records are skipped is up to the caller.
func IsRecordError(err error) bool {
	return errors.Is(err, ErrCoercion) || errors.Is(err, ErrFieldNotFound) ||
		errors.Is(err, ErrMissingKey)
}
