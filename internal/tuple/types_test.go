package tuple

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stringer struct{}

func (stringer) String() string { return "stringer" }

func TestText(t *testing.T) {
	tests := map[string]struct {
		value    any
		expected string
	}{
		"nil":      {value: nil, expected: ""},
		"string":   {value: "Alice", expected: "Alice"},
		"bytes":    {value: []byte{'h', 'i'}, expected: "hi"},
		"int":      {value: 30, expected: "30"},
		"int64":    {value: int64(-7), expected: "-7"},
		"float":    {value: 1.5, expected: "1.5"},
		"bool":     {value: true, expected: "true"},
		"stringer": {value: stringer{}, expected: "stringer"},
		"struct":   {value: struct{ A int }{A: 1}, expected: "{1}"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.expected, Text(tc.value))
		})
	}
}

func TestCoercibleTypes(t *testing.T) {
	id := uuid.MustParse("0d3f3b0e-8a51-4f7e-9d55-5c2f7e3c1a01")
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		typ       CoercibleType
		stored    any
		canonical any
		text      string
	}{
		"int64 from text":    {typ: Int64, stored: "30", canonical: int64(30), text: "30"},
		"int64 from bytes":   {typ: Int64, stored: []byte("-12"), canonical: int64(-12), text: "-12"},
		"int64 from int":     {typ: Int64, stored: 30, canonical: int64(30), text: "30"},
		"float64 from text":  {typ: Float64, stored: "2.5", canonical: 2.5, text: "2.5"},
		"bool from text":     {typ: Bool, stored: "true", canonical: true, text: "true"},
		"string from bytes":  {typ: String, stored: []byte("Alice"), canonical: "Alice", text: "Alice"},
		"string from empty":  {typ: String, stored: nil, canonical: "", text: ""},
		"uuid from text":     {typ: UUID, stored: id.String(), canonical: id, text: id.String()},
		"uuid passthrough":   {typ: UUID, stored: id, canonical: id, text: id.String()},
		"time from text":     {typ: Time(time.DateOnly), stored: "2024-03-01", canonical: day, text: "2024-03-01"},
		"nullable int empty": {typ: Nullable(Int64), stored: "", canonical: nil, text: ""},
		"nullable int value": {typ: Nullable(Int64), stored: "5", canonical: int64(5), text: "5"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)

			got, err := tc.typ.Canonical(tc.stored)
			req.NoError(err)
			req.Equal(tc.canonical, got)

			if got == nil {
				return
			}
			text, err := tc.typ.Coerce(got)
			req.NoError(err)
			req.Equal(tc.text, text)
		})
	}
}

func TestCoercibleTypes_Reject(t *testing.T) {
	tests := map[string]struct {
		typ     CoercibleType
		stored  any
		isEmpty bool
	}{
		"int64 empty":      {typ: Int64, stored: "", isEmpty: true},
		"int64 nil":        {typ: Int64, stored: nil, isEmpty: true},
		"int64 garbage":    {typ: Int64, stored: "thirty"},
		"float64 empty":    {typ: Float64, stored: []byte{}, isEmpty: true},
		"bool garbage":     {typ: Bool, stored: "maybe"},
		"uuid garbage":     {typ: UUID, stored: "not-a-uuid"},
		"uuid empty":       {typ: UUID, stored: "", isEmpty: true},
		"time wrong type":  {typ: Time(time.DateOnly), stored: 42},
		"time empty":       {typ: Time(time.DateOnly), stored: nil, isEmpty: true},
		"nullable garbage": {typ: Nullable(Int64), stored: "x"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			_, err := tc.typ.Canonical(tc.stored)
			req.Error(err)
			req.Equal(tc.isEmpty, errors.Is(err, ErrEmptyValue))
		})
	}
}

func TestTypeNames(t *testing.T) {
	req := require.New(t)
	req.Equal("bytes", Bytes.TypeName())
	req.Equal("nullable(int64)", Nullable(Int64).TypeName())
	req.Equal("time(2006-01-02)", Time(time.DateOnly).TypeName())
}

type point struct {
	X, Y int32
}

func (p *point) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, binary.BigEndian, p); err != nil {
		return 0, err
	}
	return 8, nil
}

func (p *point) ReadFrom(r io.Reader) (int64, error) {
	if err := binary.Read(r, binary.BigEndian, p); err != nil {
		return 0, err
	}
	return 8, nil
}

func TestWritable(t *testing.T) {
	req := require.New(t)

	typ := Writable("point", func() io.ReaderFrom { return &point{} })
	req.Equal("point", typ.TypeName())

	var buf bytes.Buffer
	_, err := (&point{X: 1, Y: -2}).WriteTo(&buf)
	req.NoError(err)

	v := typ.New()
	_, err = v.ReadFrom(&buf)
	req.NoError(err)
	req.Equal(&point{X: 1, Y: -2}, v)

	// every call hands out a fresh value
	req.NotSame(typ.New(), typ.New())
}
