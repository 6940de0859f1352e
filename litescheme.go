// Package litescheme maps pipeline tuples onto LiteTable rows and back.
//
// Declare a Scheme from a key field and the value fields of each column family, then either use
// it directly (Decode, Encode) or Open a Client that reads and writes through a LiteTable server
// configured in ~/.litetable/litetable.conf:
//
//	s, err := litescheme.NewSingle(litescheme.Field{Name: "id"}, "info",
//		litescheme.Fields{{Name: "name"}, {Name: "age", Type: litescheme.Int64}})
//	c, err := litescheme.Open(s)
//	defer c.Close()
//	rows, err := c.Get(ctx, "42")
package litescheme

import (
	"io"

	"github.com/litetable/litetable-scheme/internal/config"
	"github.com/litetable/litetable-scheme/internal/scheme"
	"github.com/litetable/litetable-scheme/internal/tuple"
)

type (
	Scheme = scheme.Scheme
	Config = scheme.Config

	// StoreConfig describes the LiteTable server a Client talks to.
	StoreConfig = config.Config

	Field         = tuple.Field
	Fields        = tuple.Fields
	Tuple         = tuple.Tuple
	Entry         = tuple.Entry
	Type          = tuple.Type
	CoercibleType = tuple.CoercibleType
	WritableType  = tuple.WritableType
)

// Logical types.
var (
	Bytes   = tuple.Bytes
	Int64   = tuple.Int64
	Float64 = tuple.Float64
	Bool    = tuple.Bool
	String  = tuple.String
	UUID    = tuple.UUID
)

var (
	ErrInvalidScheme = scheme.ErrInvalidScheme
	ErrRead          = scheme.ErrRead
	ErrCoercion      = scheme.ErrCoercion
	ErrMissingKey    = scheme.ErrMissingKey
	ErrFieldNotFound = scheme.ErrFieldNotFound
	ErrSink          = scheme.ErrSink
	ErrEmptyValue    = tuple.ErrEmptyValue
)

// New validates a scheme declaration.
func New(cfg *Config) (*Scheme, error) {
	return scheme.New(cfg)
}

// NewSingle declares a scheme with a single column family.
func NewSingle(keyField Field, family string, valueFields Fields) (*Scheme, error) {
	return scheme.NewSingle(keyField, family, valueFields)
}

// Names declares untyped fields.
func Names(names ...string) Fields {
	return tuple.Names(names...)
}

// NewEntry pairs values with the fields they belong to.
func NewEntry(fields Fields, values Tuple) (Entry, error) {
	return tuple.NewEntry(fields, values)
}

func Time(layout string) CoercibleType {
	return tuple.Time(layout)
}

// Nullable makes t map empty cells to nil instead of failing.
func Nullable(t CoercibleType) CoercibleType {
	return tuple.Nullable(t)
}

func Writable(name string, newFunc func() io.ReaderFrom) WritableType {
	return tuple.Writable(name, newFunc)
}

// IsRecordError reports whether err concerns a single record rather than the scheme or the store.
func IsRecordError(err error) bool {
	return scheme.IsRecordError(err)
}
