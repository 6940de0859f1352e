package store

import (
	"testing"

	"github.com/litetable/litetable-db/pkg/proto"
	"github.com/litetable/litetable-scheme/internal/litetable"
	"github.com/stretchr/testify/require"
)

func protoRow(key, family string, cells map[string]string) *proto.Row {
	qualifiers := make(map[string]*proto.QualifierValues, len(cells))
	for q, v := range cells {
		qualifiers[q] = &proto.QualifierValues{
			Values: []*proto.TimestampedValue{{Value: []byte(v), TimestampUnix: 1000}},
		}
	}
	return &proto.Row{
		Key: key,
		Cols: map[string]*proto.VersionedQualifier{
			family: {Qualifiers: qualifiers},
		},
	}
}

func TestConvertFromProtoData(t *testing.T) {
	tests := map[string]struct {
		answers  []*proto.LitetableData
		expected map[string]*litetable.Row
	}{
		"empty answer": {
			answers:  []*proto.LitetableData{{Rows: map[string]*proto.Row{}}},
			expected: map[string]*litetable.Row{},
		},
		"nil answer": {
			answers:  []*proto.LitetableData{nil},
			expected: map[string]*litetable.Row{},
		},
		"single family": {
			answers: []*proto.LitetableData{{
				Rows: map[string]*proto.Row{
					"42": protoRow("42", "info", map[string]string{"name": "Alice"}),
				},
			}},
			expected: map[string]*litetable.Row{
				"42": {
					Key: "42",
					Columns: map[string]litetable.VersionedQualifier{
						"info": {"name": {{Value: []byte("Alice"), Timestamp: 1000}}},
					},
				},
			},
		},
		"two families merge into one row": {
			answers: []*proto.LitetableData{
				{Rows: map[string]*proto.Row{
					"42": protoRow("42", "info", map[string]string{"name": "Alice"}),
				}},
				{Rows: map[string]*proto.Row{
					"42": protoRow("42", "meta", map[string]string{"owner": "bob"}),
				}},
			},
			expected: map[string]*litetable.Row{
				"42": {
					Key: "42",
					Columns: map[string]litetable.VersionedQualifier{
						"info": {"name": {{Value: []byte("Alice"), Timestamp: 1000}}},
						"meta": {"owner": {{Value: []byte("bob"), Timestamp: 1000}}},
					},
				},
			},
		},
		"missing row key falls back to map key": {
			answers: []*proto.LitetableData{{
				Rows: map[string]*proto.Row{
					"7": protoRow("", "info", map[string]string{"name": "Eve"}),
				},
			}},
			expected: map[string]*litetable.Row{
				"7": {
					Key: "7",
					Columns: map[string]litetable.VersionedQualifier{
						"info": {"name": {{Value: []byte("Eve"), Timestamp: 1000}}},
					},
				},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rows := make(map[string]*litetable.Row)
			for _, answer := range tc.answers {
				convertFromProtoData(answer, rows)
			}
			require.Equal(t, tc.expected, rows)
		})
	}
}

func TestConvertToWriteRequest(t *testing.T) {
	req := require.New(t)

	m := litetable.NewMutation("42", 3)
	m.Add([]byte("info"), []byte("name"), []byte("Alice"))
	m.Add([]byte("meta"), []byte("owner"), []byte("bob"))
	m.Add([]byte("info"), []byte("age"), nil)

	got := convertToWriteRequest(m, "info")
	req.Equal("info", got.GetFamily())
	req.Equal("42", got.GetRowKey())
	req.Len(got.GetQualifiers(), 2)
	req.Equal("name", got.GetQualifiers()[0].GetName())
	req.Equal([]byte("Alice"), got.GetQualifiers()[0].GetValue())
	req.Equal("age", got.GetQualifiers()[1].GetName())
	req.Empty(got.GetQualifiers()[1].GetValue())

	got = convertToWriteRequest(m, "meta")
	req.Len(got.GetQualifiers(), 1)
	req.Equal("owner", got.GetQualifiers()[0].GetName())
}
