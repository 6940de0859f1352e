package store

import (
	"github.com/litetable/litetable-db/pkg/proto"
	"github.com/litetable/litetable-scheme/internal/litetable"
)

// convertFromProtoData turns a server answer into rows, merging into rows when it already holds
// data for a key (one answer per family).
func convertFromProtoData(data *proto.LitetableData, rows map[string]*litetable.Row) {
	for rowKey, protoRow := range data.GetRows() {
		key := protoRow.GetKey()
		if key == "" {
			key = rowKey
		}

		row, ok := rows[key]
		if !ok {
			row = &litetable.Row{
				Key:     key,
				Columns: make(map[string]litetable.VersionedQualifier),
			}
			rows[key] = row
		}

		for familyName, columnFamily := range protoRow.GetCols() {
			qualifiers, ok := row.Columns[familyName]
			if !ok {
				qualifiers = make(litetable.VersionedQualifier)
				row.Columns[familyName] = qualifiers
			}

			for qualifierName, qualifierValues := range columnFamily.GetQualifiers() {
				values := make([]litetable.TimestampedValue, 0, len(qualifierValues.GetValues()))
				for _, tv := range qualifierValues.GetValues() {
					values = append(values, litetable.TimestampedValue{
						Value:     tv.GetValue(),
						Timestamp: tv.GetTimestampUnix(),
						ExpiresAt: tv.GetExpiresAtUnix(),
					})
				}
				qualifiers[qualifierName] = append(qualifiers[qualifierName], values...)
			}
		}
	}
}

// convertToWriteRequest builds the write request for the cells of one family of a mutation. The
// server drops zero-length values, so families holding one must not be sent this way.
func convertToWriteRequest(m *litetable.Mutation, family string) *proto.WriteRequest {
	cells := m.CellsByFamily(family)
	req := &proto.WriteRequest{
		Family:     family,
		RowKey:     m.Key,
		Qualifiers: make([]*proto.ColumnQualifier, 0, len(cells)),
	}
	for _, c := range cells {
		req.Qualifiers = append(req.Qualifiers, &proto.ColumnQualifier{
			Name:  string(c.Qualifier),
			Value: c.Value,
		})
	}
	return req
}
