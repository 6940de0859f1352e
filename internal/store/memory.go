package store

import (
	"context"
	"sort"
	"sync"

	"github.com/litetable/litetable-scheme/internal/litetable"
)

// Memory is an in-process table. Collect appends a new version for every cell of a mutation and
// Reader scans a snapshot of the table in key order.
type Memory struct {
	mutex sync.RWMutex
	data  litetable.Data
	clock int64
}

// NewMemory creates an empty table.
func NewMemory() *Memory {
	return &Memory{
		data: make(litetable.Data),
	}
}

// Collect stores the cells of m. Versions are stamped with a logical clock so that later writes
// always win.
func (t *Memory) Collect(_ context.Context, _ []byte, m *litetable.Mutation) error {
	if m == nil {
		return nil
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.clock++
	families, ok := t.data[m.Key]
	if !ok {
		families = make(map[string]litetable.VersionedQualifier)
		t.data[m.Key] = families
	}

	for _, c := range m.Cells {
		qualifiers, ok := families[string(c.Family)]
		if !ok {
			qualifiers = make(litetable.VersionedQualifier)
			families[string(c.Family)] = qualifiers
		}
		value := append([]byte{}, c.Value...)
		qualifiers[string(c.Qualifier)] = append(qualifiers[string(c.Qualifier)],
			litetable.TimestampedValue{
				Value:     value,
				Timestamp: t.clock,
			})
	}
	return nil
}

// Len returns the number of rows in the table.
func (t *Memory) Len() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return len(t.data)
}

// Row returns a copy of the stored row for key.
func (t *Memory) Row(key string) (*litetable.Row, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	families, ok := t.data[key]
	if !ok {
		return nil, false
	}
	return copyRow(key, families), true
}

// Reader returns a row source over the rows present right now. Later writes are not visible to it.
func (t *Memory) Reader() *MemoryReader {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	rows := make([]*litetable.Row, 0, len(t.data))
	for key, families := range t.data {
		rows = append(rows, copyRow(key, families))
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Key < rows[j].Key
	})
	return &MemoryReader{rows: rows}
}

// MemoryReader iterates a Memory snapshot.
type MemoryReader struct {
	rows []*litetable.Row
	pos  int
}

func (r *MemoryReader) Next(ctx context.Context, key *string, value *litetable.Result) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if r.pos >= len(r.rows) {
		return false, nil
	}

	row := r.rows[r.pos]
	r.pos++

	*key = row.Key
	*value = litetable.NewResult(row)
	return true, nil
}

func copyRow(key string, families map[string]litetable.VersionedQualifier) *litetable.Row {
	row := &litetable.Row{
		Key:     key,
		Columns: make(map[string]litetable.VersionedQualifier, len(families)),
	}
	for family, qualifiers := range families {
		vq := make(litetable.VersionedQualifier, len(qualifiers))
		for qualifier, values := range qualifiers {
			vq[qualifier] = append([]litetable.TimestampedValue(nil), values...)
		}
		row.Columns[family] = vq
	}
	return row
}
