package tableview

import "sort"

// Sort orders rows per the spec, leaving the input slice untouched. An
// inactive spec returns the input unchanged, preserving filter-stage order.
// Ties keep their original relative order (sort.SliceStable), which also
// makes direction toggling yield the exact reverse for non-tied rows.
func Sort(rows []Row, spec SortSpec) []Row {
	if !spec.Active() || len(rows) < 2 {
		return rows
	}
	out := make([]Row, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		c := compareField(out[i], out[j], spec.Field)
		if spec.Direction == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}
