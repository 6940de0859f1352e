package tuple

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// ErrEmptyValue is returned by coercible types that cannot canonicalize an empty value.
var ErrEmptyValue = errors.New("empty value")

// Type is the logical type of a field.
type Type interface {
	TypeName() string
}

// CoercibleType is a logical type whose in-memory form differs from the text stored in a cell.
type CoercibleType interface {
	Type
	// Canonical converts a stored or loosely typed value into the in-memory form.
	Canonical(value any) (any, error)
	// Coerce converts a value into the text form written to the store.
	Coerce(value any) (string, error)
}

// WritableType is a logical type whose cells hold a binary payload produced by an io.WriterTo.
type WritableType interface {
	Type
	// New returns an empty value to read a stored payload into.
	New() io.ReaderFrom
}

// Text is the default text rendering of a value: byte slices verbatim, everything else through
// its natural string form.
func Text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return s
}

type plainType string

func (p plainType) TypeName() string { return string(p) }

// Bytes is a plain field: cells are handed over untouched.
var Bytes Type = plainType("bytes")

var (
	Int64   CoercibleType = int64Type{}
	Float64 CoercibleType = float64Type{}
	Bool    CoercibleType = boolType{}
	String  CoercibleType = stringType{}
	UUID    CoercibleType = uuidType{}
)

// asText returns the text of a stored value. ok is false for values that are not text (nil, string
// or []byte), which are converted with cast instead.
func asText(value any) (s string, ok bool) {
	switch v := value.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case []byte:
		return string(v), true
	}
	return "", false
}

func canonicalError(t Type, value any, err error) error {
	return fmt.Errorf("cannot convert %q to %s: %w", Text(value), t.TypeName(), err)
}

type int64Type struct{}

func (int64Type) TypeName() string { return "int64" }

func (t int64Type) Canonical(value any) (any, error) {
	s, ok := asText(value)
	if !ok {
		v, err := cast.ToInt64E(value)
		if err != nil {
			return nil, canonicalError(t, value, err)
		}
		return v, nil
	}
	if s == "" {
		return nil, canonicalError(t, value, ErrEmptyValue)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, canonicalError(t, value, err)
	}
	return v, nil
}

func (t int64Type) Coerce(value any) (string, error) {
	v, err := t.Canonical(value)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(v.(int64), 10), nil
}

type float64Type struct{}

func (float64Type) TypeName() string { return "float64" }

func (t float64Type) Canonical(value any) (any, error) {
	s, ok := asText(value)
	if !ok {
		v, err := cast.ToFloat64E(value)
		if err != nil {
			return nil, canonicalError(t, value, err)
		}
		return v, nil
	}
	if s == "" {
		return nil, canonicalError(t, value, ErrEmptyValue)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, canonicalError(t, value, err)
	}
	return v, nil
}

func (t float64Type) Coerce(value any) (string, error) {
	v, err := t.Canonical(value)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(v.(float64), 'g', -1, 64), nil
}

type boolType struct{}

func (boolType) TypeName() string { return "bool" }

func (t boolType) Canonical(value any) (any, error) {
	s, ok := asText(value)
	if !ok {
		v, err := cast.ToBoolE(value)
		if err != nil {
			return nil, canonicalError(t, value, err)
		}
		return v, nil
	}
	if s == "" {
		return nil, canonicalError(t, value, ErrEmptyValue)
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, canonicalError(t, value, err)
	}
	return v, nil
}

func (t boolType) Coerce(value any) (string, error) {
	v, err := t.Canonical(value)
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(v.(bool)), nil
}

// stringType accepts empty text: an absent cell canonicalizes to "".
type stringType struct{}

func (stringType) TypeName() string { return "string" }

func (stringType) Canonical(value any) (any, error) {
	return Text(value), nil
}

func (stringType) Coerce(value any) (string, error) {
	return Text(value), nil
}

type uuidType struct{}

func (uuidType) TypeName() string { return "uuid" }

func (t uuidType) Canonical(value any) (any, error) {
	if v, ok := value.(uuid.UUID); ok {
		return v, nil
	}
	s, ok := asText(value)
	if !ok {
		return nil, canonicalError(t, value, fmt.Errorf("unsupported type %T", value))
	}
	if s == "" {
		return nil, canonicalError(t, value, ErrEmptyValue)
	}
	v, err := uuid.Parse(s)
	if err != nil {
		return nil, canonicalError(t, value, err)
	}
	return v, nil
}

func (t uuidType) Coerce(value any) (string, error) {
	v, err := t.Canonical(value)
	if err != nil {
		return "", err
	}
	return v.(uuid.UUID).String(), nil
}

type timeType struct {
	layout string
}

// Time is a coercible timestamp stored as text in the given layout.
func Time(layout string) CoercibleType {
	return timeType{layout: layout}
}

func (t timeType) TypeName() string { return "time(" + t.layout + ")" }

func (t timeType) Canonical(value any) (any, error) {
	if v, ok := value.(time.Time); ok {
		return v, nil
	}
	s, ok := asText(value)
	if !ok {
		return nil, canonicalError(t, value, fmt.Errorf("unsupported type %T", value))
	}
	if s == "" {
		return nil, canonicalError(t, value, ErrEmptyValue)
	}
	v, err := time.Parse(t.layout, s)
	if err != nil {
		return nil, canonicalError(t, value, err)
	}
	return v, nil
}

func (t timeType) Coerce(value any) (string, error) {
	v, err := t.Canonical(value)
	if err != nil {
		return "", err
	}
	return v.(time.Time).Format(t.layout), nil
}

type nullable struct {
	CoercibleType
}

// Nullable wraps a coercible type so that empty values canonicalize to nil instead of failing.
func Nullable(t CoercibleType) CoercibleType {
	return nullable{CoercibleType: t}
}

func (n nullable) TypeName() string { return "nullable(" + n.CoercibleType.TypeName() + ")" }

func (n nullable) Canonical(value any) (any, error) {
	if s, ok := asText(value); ok && s == "" {
		return nil, nil
	}
	return n.CoercibleType.Canonical(value)
}

func (n nullable) Coerce(value any) (string, error) {
	if value == nil {
		return "", nil
	}
	return n.CoercibleType.Coerce(value)
}

type writableType struct {
	name    string
	newFunc func() io.ReaderFrom
}

// Writable declares a binary payload type. newFunc must return a fresh value on every call.
func Writable(name string, newFunc func() io.ReaderFrom) WritableType {
	return writableType{name: name, newFunc: newFunc}
}

func (w writableType) TypeName() string { return w.name }

func (w writableType) New() io.ReaderFrom { return w.newFunc() }
