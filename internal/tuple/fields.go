// Package tuple holds the record model of the batch pipeline: ordered, named and typed fields and
// the tuples of values that flow through them.
package tuple

import "strings"

// Field is a named, typed slot of a tuple. A nil Type is a plain field.
type Field struct {
	Name string
	Type Type
}

// String renders the field as name or name:type.
func (f Field) String() string {
	if f.Type == nil {
		return f.Name
	}
	return f.Name + ":" + f.Type.TypeName()
}

// Fields is an ordered list of fields.
type Fields []Field

// Names builds plain fields from names.
func Names(names ...string) Fields {
	fields := make(Fields, len(names))
	for i, name := range names {
		fields[i] = Field{Name: name}
	}
	return fields
}

// Len returns the number of fields.
func (f Fields) Len() int {
	return len(f)
}

// Index returns the position of name, or -1 when the field is not declared.
func (f Fields) Index(name string) int {
	for i, field := range f {
		if field.Name == name {
			return i
		}
	}
	return -1
}

// Names returns the field names in order.
func (f Fields) Names() []string {
	names := make([]string, len(f))
	for i, field := range f {
		names[i] = field.Name
	}
	return names
}

// Concat returns a new list with other appended to f.
func (f Fields) Concat(other ...Fields) Fields {
	out := make(Fields, 0, len(f))
	out = append(out, f...)
	for _, o := range other {
		out = append(out, o...)
	}
	return out
}

func (f Fields) String() string {
	parts := make([]string, len(f))
	for i, field := range f {
		parts[i] = field.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
