package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/litetable/litetable-db/pkg/proto"
	"github.com/litetable/litetable-scheme/internal/litetable"
	"github.com/rs/zerolog/log"
)

// Reader is a row source over a LiteTable server. It reads either a fixed set of row keys or every
// row under a key prefix, restricted to the configured columns, and yields rows in key order.
// A Reader belongs to a single worker and is not safe for concurrent use.
type Reader struct {
	client   Client
	families []familyColumns
	keys     []string
	prefix   string

	loaded bool
	rows   []*litetable.Row
	pos    int
}

type familyColumns struct {
	name       string
	qualifiers []string
}

type ReaderConfig struct {
	Client Client
	// Columns restricts the read to these cells, usually scheme.Cells().
	Columns []litetable.Column
	// Exactly one of Keys or Prefix selects the rows.
	Keys   []string
	Prefix string
}

func (c *ReaderConfig) validate() error {
	var errGrp []error
	if c.Client == nil {
		errGrp = append(errGrp, errors.New("client required"))
	}
	if len(c.Columns) == 0 {
		errGrp = append(errGrp, errors.New("columns required"))
	}
	if len(c.Keys) == 0 && c.Prefix == "" {
		errGrp = append(errGrp, errors.New("keys or prefix required"))
	}
	if len(c.Keys) > 0 && c.Prefix != "" {
		errGrp = append(errGrp, errors.New("only one of keys or prefix allowed"))
	}
	return errors.Join(errGrp...)
}

// NewReader creates a row source. Nothing is read until the first call to Next.
func NewReader(cfg *ReaderConfig) (*Reader, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var families []familyColumns
	index := make(map[string]int)
	for _, col := range cfg.Columns {
		name := string(col.Family)
		i, ok := index[name]
		if !ok {
			i = len(families)
			index[name] = i
			families = append(families, familyColumns{name: name})
		}
		families[i].qualifiers = append(families[i].qualifiers, string(col.Qualifier))
	}

	return &Reader{
		client:   cfg.Client,
		families: families,
		keys:     append([]string(nil), cfg.Keys...),
		prefix:   cfg.Prefix,
	}, nil
}

// Next fills key and value with the next row. It returns false once every row has been produced.
func (r *Reader) Next(ctx context.Context, key *string, value *litetable.Result) (bool, error) {
	if !r.loaded {
		if err := r.load(ctx); err != nil {
			return false, err
		}
		r.loaded = true
	}

	if r.pos >= len(r.rows) {
		return false, nil
	}

	row := r.rows[r.pos]
	r.pos++

	*key = row.Key
	*value = litetable.NewResult(row)
	return true, nil
}

// load issues one read per family and row selector and merges the answers into rows.
func (r *Reader) load(ctx context.Context) error {
	data := make(map[string]*litetable.Row)

	for _, family := range r.families {
		for _, req := range r.requests(family) {
			log.Debug().Msgf("reading family %s row %s (%s)", req.GetFamily(), req.GetRowKey(),
				req.GetQueryType())

			resp, err := r.client.Read(ctx, req)
			if err != nil {
				if isNotFound(err) {
					continue
				}
				return fmt.Errorf("failed to read family %s row %s: %w", req.GetFamily(),
					req.GetRowKey(), err)
			}
			convertFromProtoData(resp, data)
		}
	}

	r.rows = make([]*litetable.Row, 0, len(data))
	for _, row := range data {
		r.rows = append(r.rows, row)
	}
	sort.Slice(r.rows, func(i, j int) bool {
		return r.rows[i].Key < r.rows[j].Key
	})

	log.Debug().Msgf("loaded %d rows", len(r.rows))
	return nil
}

func (r *Reader) requests(family familyColumns) []*proto.ReadRequest {
	if r.prefix != "" {
		return []*proto.ReadRequest{{
			Family:     family.name,
			RowKey:     r.prefix,
			QueryType:  proto.QueryType_PREFIX,
			Qualifiers: family.qualifiers,
			Latest:     1,
		}}
	}

	reqs := make([]*proto.ReadRequest, 0, len(r.keys))
	for _, key := range r.keys {
		reqs = append(reqs, &proto.ReadRequest{
			Family:     family.name,
			RowKey:     key,
			QueryType:  proto.QueryType_EXACT,
			Qualifiers: family.qualifiers,
			Latest:     1,
		})
	}
	return reqs
}
