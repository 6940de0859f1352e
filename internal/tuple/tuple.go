package tuple

import (
	"errors"
	"fmt"
)

var (
	ErrFieldNotFound = errors.New("field not found")
	ErrArity         = errors.New("tuple arity does not match fields")
)

// Tuple is an ordered sequence of values.
type Tuple []any

// Entry pairs a tuple with the fields that describe it.
type Entry struct {
	Fields Fields
	Tuple  Tuple
}

// NewEntry creates an entry, checking that every field has exactly one value.
func NewEntry(fields Fields, values Tuple) (Entry, error) {
	if len(fields) != len(values) {
		return Entry{}, fmt.Errorf("%w: %d fields, %d values", ErrArity, len(fields), len(values))
	}
	return Entry{Fields: fields, Tuple: values}, nil
}

// Get returns the value of the named field.
func (e Entry) Get(name string) (any, error) {
	i := e.Fields.Index(name)
	if i < 0 || i >= len(e.Tuple) {
		return nil, fmt.Errorf("%w: %s", ErrFieldNotFound, name)
	}
	return e.Tuple[i], nil
}
