package litetable

// TimestampedValue stores a value with its timestamp
type TimestampedValue struct {
	Value       []byte `json:"value"`
	Timestamp   int64  `json:"timestamp"`
	IsTombstone bool   `json:"tombstone"` // if the value is slated for deletion
	ExpiresAt   int64  `json:"expires"`   // the time in which the value will expire
}

// VersionedQualifier maps qualifiers to their timestamped values
type VersionedQualifier map[string][]TimestampedValue

// Data is the full table: rowKey -> family -> qualifier -> []TimestampedValue
type Data map[string]map[string]VersionedQualifier

// Row defines a row of data in LiteTable:
//
// Example:
//
//	Row{
//	  Key: "row1",
//	  Columns: map[string]VersionedQualifier{
//	    "info": {
//	      "name": {{Value: []byte("Alice"), Timestamp: 1700000000}},
//	      "age":  {{Value: []byte("30"), Timestamp: 1700000000}},
//	    },
//	  },
//	}
//
// A scheme only ever looks at the qualifiers it declares; everything else in the row is ignored.
type Row struct {
	Key     string                        `json:"key"`
	Columns map[string]VersionedQualifier `json:"cols"` // family → qualifier → []TimestampedValue
}

// Column is a fully resolved cell address.
type Column struct {
	Family    []byte
	Qualifier []byte
}

// String renders the column as family:qualifier.
func (c Column) String() string {
	return string(c.Family) + Separator + string(c.Qualifier)
}
