package scheme

import (
	"github.com/litetable/litetable-scheme/internal/litetable"
	"github.com/litetable/litetable-scheme/internal/tuple"
	"github.com/samber/lo"
)

// columns flattens the field groups into family:qualifier addresses, preserving group order and
// field order within a group. In fully qualified mode the field name already is the address and
// only gets a separator appended when it lacks one.
func columns(families []string, groups []tuple.Fields, fullyQualified bool) []string {
	size := lo.SumBy(groups, func(fields tuple.Fields) int {
		return fields.Len()
	})

	cols := make([]string, 0, size)
	for i, fields := range groups {
		for _, field := range fields {
			if fullyQualified {
				cols = append(cols, litetable.QualifiedColumn(field.Name))
				continue
			}
			cols = append(cols, litetable.QualifiedColumn(families[i])+field.Name)
		}
	}

	return cols
}
