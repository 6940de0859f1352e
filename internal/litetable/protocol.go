package litetable

// Operation is a LiteTable text protocol operation.
type Operation int

const (
	OperationUnknown Operation = iota
	OperationRead
	OperationWrite
	OperationDelete
	OperationCreate
)

var operationPrefixes = map[Operation]string{
	OperationRead:   "READ ",
	OperationWrite:  "WRITE ",
	OperationDelete: "DELETE ",
	OperationCreate: "CREATE ",
}

// ErrorPrefix starts every failed text protocol response.
const ErrorPrefix = "ERROR: "

// Encode prefixes a query with its operation. Unknown operations encode to nil.
func Encode(op Operation, query string) []byte {
	prefix, ok := operationPrefixes[op]
	if !ok {
		return nil
	}
	return append([]byte(prefix), query...)
}

// WriteLine renders the cells of one family of m as a WRITE protocol line.
func (m *Mutation) WriteLine(family string) []byte {
	return Encode(OperationWrite, m.Query(family))
}

// WriteLines renders a mutation as one WRITE protocol line per family.
func (m *Mutation) WriteLines() [][]byte {
	families := m.Families()
	lines := make([][]byte, 0, len(families))
	for _, family := range families {
		lines = append(lines, m.WriteLine(family))
	}
	return lines
}
