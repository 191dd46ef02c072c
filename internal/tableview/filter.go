package tableview

import "strings"

// Filter keeps the rows passing all active predicates, preserving their
// relative order. The date predicate matches by exact calendar-date
// equality; every other field matches case-insensitively by substring.
// With no rows or no predicates the input is returned unchanged.
func Filter(rows []Row, predicates map[string]string) []Row {
	if len(rows) == 0 || len(predicates) == 0 {
		return rows
	}
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if matches(row, predicates) {
			out = append(out, row)
		}
	}
	return out
}

func matches(row Row, predicates map[string]string) bool {
	for field, want := range predicates {
		if want == "" {
			continue
		}
		if field == FieldDate {
			if row.Date != want {
				return false
			}
			continue
		}
		value := strings.ToLower(fieldText(row, field))
		if !strings.Contains(value, strings.ToLower(want)) {
			return false
		}
	}
	return true
}
