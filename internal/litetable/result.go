package litetable

// Result is the read-side view of a stored row. Only the latest live version of each cell is
// visible; anything at or before the newest tombstone is treated as deleted.
type Result struct {
	row *Row
}

// NewResult wraps a row for cell lookups. A nil row behaves like an empty row.
func NewResult(row *Row) Result {
	return Result{row: row}
}

// Key returns the row key, or an empty string for an empty result.
func (r Result) Key() string {
	if r.row == nil {
		return ""
	}
	return r.row.Key
}

// IsEmpty reports whether the result holds no row.
func (r Result) IsEmpty() bool {
	return r.row == nil
}

// Value returns the latest live value of family:qualifier, or nil when the cell is absent.
func (r Result) Value(family, qualifier []byte) []byte {
	if r.row == nil {
		return nil
	}
	qualifiers, ok := r.row.Columns[string(family)]
	if !ok {
		return nil
	}
	v, ok := latest(qualifiers[string(qualifier)])
	if !ok {
		return nil
	}
	return v.Value
}

// latest returns the newest value written after the newest tombstone.
func latest(values []TimestampedValue) (TimestampedValue, bool) {
	var (
		tombstoneTimestamp int64
		hasTombstone       bool
		newest             TimestampedValue
		found              bool
	)

	// First pass: find the newest tombstone (if any)
	for _, v := range values {
		if v.IsTombstone && (!hasTombstone || v.Timestamp > tombstoneTimestamp) {
			tombstoneTimestamp = v.Timestamp
			hasTombstone = true
		}
	}

	// Second pass: keep only the newest value younger than the tombstone
	for _, v := range values {
		if v.IsTombstone || (hasTombstone && v.Timestamp <= tombstoneTimestamp) {
			continue
		}
		if !found || v.Timestamp > newest.Timestamp {
			newest = v
			found = true
		}
	}

	return newest, found
}
