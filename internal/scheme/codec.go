package scheme

import (
	"bytes"
	"io"
	"reflect"
	"sync"

	"github.com/litetable/litetable-scheme/internal/litetable"
	"github.com/litetable/litetable-scheme/internal/tuple"
)

// scratch buffers for values that serialize themselves. A buffer is owned by a single Encode
// call and reset before every field.
var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// fieldCodec is the resolved read and write behavior of one declared column. The variant is
// picked once from the field's logical type.
type fieldCodec struct {
	field   tuple.Field
	address string
	column  litetable.Column
	decode  func(raw []byte) (any, error)
	encode  func(buf *bytes.Buffer, value any) ([]byte, error)
}

func newFieldCodec(field tuple.Field, address string) fieldCodec {
	c := fieldCodec{
		field:   field,
		address: address,
		column:  litetable.ParseColumn(address),
	}

	switch typ := field.Type.(type) {
	case tuple.WritableType:
		c.decode = decodeWritable(typ)
		c.encode = encodePlain
	case tuple.CoercibleType:
		c.decode = decodeCoercible(typ)
		c.encode = encodeCoercible(typ)
	default:
		c.decode = decodePlain
		c.encode = encodePlain
	}

	return c
}

// decodePlain hands over the stored bytes untouched.
func decodePlain(raw []byte) (any, error) {
	return raw, nil
}

// decodeCoercible canonicalizes the cell text. An absent cell is canonicalized as "", so the type
// decides whether a missing value is acceptable.
func decodeCoercible(typ tuple.CoercibleType) func([]byte) (any, error) {
	return func(raw []byte) (any, error) {
		return typ.Canonical(string(raw))
	}
}

// decodeWritable reads the payload back through the type's own binary reader. Absent and
// zero-length cells, which is what a nil value is written as, decode to nil.
func decodeWritable(typ tuple.WritableType) func([]byte) (any, error) {
	return func(raw []byte) (any, error) {
		if len(raw) == 0 {
			return nil, nil
		}
		v := typ.New()
		if _, err := v.ReadFrom(bytes.NewReader(raw)); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// encodeSelf covers the first two steps every variant shares: nil values become a zero-length
// payload and values that serialize themselves are written through buf. ok is false when the
// value needs type specific handling.
//
// Any io.WriterTo serializes itself, including readers such as *bytes.Buffer or *strings.Reader
// which are drained by the write.
func encodeSelf(buf *bytes.Buffer, value any) (payload []byte, ok bool, err error) {
	if isNil(value) {
		return []byte{}, true, nil
	}

	w, isWriter := value.(io.WriterTo)
	if !isWriter {
		return nil, false, nil
	}

	buf.Reset()
	if _, err = w.WriteTo(buf); err != nil {
		return nil, true, err
	}
	payload = make([]byte, buf.Len())
	copy(payload, buf.Bytes())
	return payload, true, nil
}

func encodePlain(buf *bytes.Buffer, value any) ([]byte, error) {
	if payload, ok, err := encodeSelf(buf, value); ok {
		return payload, err
	}
	return []byte(tuple.Text(value)), nil
}

func encodeCoercible(typ tuple.CoercibleType) func(*bytes.Buffer, any) ([]byte, error) {
	return func(buf *bytes.Buffer, value any) ([]byte, error) {
		if payload, ok, err := encodeSelf(buf, value); ok {
			return payload, err
		}
		text, err := typ.Coerce(value)
		if err != nil {
			return nil, err
		}
		return []byte(text), nil
	}
}

// isNil reports whether value is nil or a typed nil pointer, map, slice, func, chan or interface.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
