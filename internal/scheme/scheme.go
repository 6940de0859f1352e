// Package scheme converts between pipeline tuples and LiteTable rows.
//
// A Scheme is declared once from a key field and one group of value fields per column family. It
// derives the column addresses of every declared field up front and then offers both directions
// of the codec:
//
//   - Decode/Source project the declared cells of a stored row into a tuple whose first value is
//     the row key, followed by one value per column in declaration order.
//   - Encode/Sink turn an outgoing tuple into a litetable.Mutation carrying exactly one cell per
//     declared value field.
//
// A Scheme is immutable after New and safe for concurrent use.
package scheme

import (
	"context"
	"errors"
	"strings"

	"github.com/litetable/litetable-scheme/internal/litetable"
	"github.com/litetable/litetable-scheme/internal/tuple"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

//go:generate mockgen -destination=scheme_mock.go -package=scheme -source=scheme.go

// RowValue looks up the raw value of a cell, returning nil when the cell is absent.
type RowValue interface {
	Value(family, qualifier []byte) []byte
}

// RowSource fills key and value with the next row. It returns false once the input is exhausted.
type RowSource interface {
	Next(ctx context.Context, key *string, value *litetable.Result) (bool, error)
}

// RowSink persists a mutation. The scheme always passes a nil routing key: the mutation carries
// its own row key.
type RowSink interface {
	Collect(ctx context.Context, key []byte, m *litetable.Mutation) error
}

// Scheme is the declared mapping between a tuple and a set of LiteTable columns.
type Scheme struct {
	keyField       tuple.Field
	families       []string
	valueFields    []tuple.Fields
	fullyQualified bool

	// derived once in New
	columns      []string
	codecs       []fieldCodec
	keyCodec     fieldCodec
	sourceFields tuple.Fields
}

type Config struct {
	// KeyField is the tuple field holding the row key.
	KeyField tuple.Field
	// Families and ValueFields are parallel: ValueFields[i] are the qualifiers of Families[i].
	Families    []string
	ValueFields []tuple.Fields
	// FullyQualified treats every field name as a complete family:qualifier address. Families
	// are then only used for bookkeeping.
	FullyQualified bool
}

func (c *Config) validate() error {
	var errGrp []error
	if c.KeyField.Name == "" {
		errGrp = append(errGrp, newError(ErrInvalidScheme, "key field name required"))
	}
	if len(c.Families) == 0 {
		errGrp = append(errGrp, newError(ErrInvalidScheme, "at least one family required"))
	}
	if len(c.Families) != len(c.ValueFields) {
		errGrp = append(errGrp, newError(ErrInvalidScheme,
			"%d families but %d field groups", len(c.Families), len(c.ValueFields)))
	}

	for i, family := range c.Families {
		if family == "" && !c.FullyQualified {
			errGrp = append(errGrp, newError(ErrInvalidScheme, "family %d has no name", i))
		}
	}

	for i, fields := range c.ValueFields {
		seen := make(map[string]struct{}, len(fields))
		for _, field := range fields {
			if field.Name == "" {
				errGrp = append(errGrp, newError(ErrInvalidScheme,
					"field group %d has an empty qualifier", i))
				continue
			}
			if _, ok := seen[field.Name]; ok {
				errGrp = append(errGrp, newError(ErrInvalidScheme,
					"duplicate qualifier %s in field group %d", field.Name, i))
				continue
			}
			seen[field.Name] = struct{}{}
		}
	}

	return errors.Join(errGrp...)
}

// New validates the declaration and derives the column addresses and field codecs.
func New(cfg *Config) (*Scheme, error) {
	if cfg == nil {
		return nil, newError(ErrInvalidScheme, "config required")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &Scheme{
		keyField:       cfg.KeyField,
		families:       append([]string(nil), cfg.Families...),
		valueFields:    make([]tuple.Fields, len(cfg.ValueFields)),
		fullyQualified: cfg.FullyQualified,
	}
	for i, fields := range cfg.ValueFields {
		s.valueFields[i] = append(tuple.Fields(nil), fields...)
	}

	s.columns = columns(s.families, s.valueFields, s.fullyQualified)
	s.codecs = make([]fieldCodec, 0, len(s.columns))
	i := 0
	for _, fields := range s.valueFields {
		for _, field := range fields {
			s.codecs = append(s.codecs, newFieldCodec(field, s.columns[i]))
			i++
		}
	}
	s.keyCodec = newFieldCodec(s.keyField, "")
	s.sourceFields = tuple.Fields{s.keyField}.Concat(s.valueFields...)

	log.Debug().Msgf("sourcing from columns: %s", s.SourceColumns())
	return s, nil
}

// NewSingle is New for a scheme with a single column family.
func NewSingle(keyField tuple.Field, family string, valueFields tuple.Fields) (*Scheme, error) {
	return New(&Config{
		KeyField:    keyField,
		Families:    []string{family},
		ValueFields: []tuple.Fields{valueFields},
	})
}

// Columns returns the family:qualifier address of every declared value field, in declaration
// order.
func (s *Scheme) Columns() []string {
	return append([]string(nil), s.columns...)
}

// SourceColumns returns the declared columns as a single space separated list, the form a row
// source uses to restrict its reads.
func (s *Scheme) SourceColumns() string {
	return strings.Join(s.columns, " ")
}

// Cells returns the resolved family and qualifier of every declared column.
func (s *Scheme) Cells() []litetable.Column {
	return lo.Map(s.codecs, func(c fieldCodec, _ int) litetable.Column {
		return c.column
	})
}

// Families returns the distinct family names, in the order they were declared.
func (s *Scheme) Families() []string {
	if s.fullyQualified {
		return lo.Uniq(lo.Map(s.codecs, func(c fieldCodec, _ int) string {
			return string(c.column.Family)
		}))
	}
	return lo.Uniq(s.families)
}

// KeyField returns the field holding the row key.
func (s *Scheme) KeyField() tuple.Field {
	return s.keyField
}

// SourceFields returns the fields of a decoded tuple: the key field followed by every value field.
func (s *Scheme) SourceFields() tuple.Fields {
	return append(tuple.Fields(nil), s.sourceFields...)
}

// FullyQualified reports whether field names are complete column addresses.
func (s *Scheme) FullyQualified() bool {
	return s.fullyQualified
}
