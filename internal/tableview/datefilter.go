package tableview

import "time"

// DateLayout is the canonical calendar-date form used by rows and the date
// predicate. No timezone shifting: the selected date's year, month and day
// are taken as-is.
const DateLayout = "2006-01-02"

// DateFilter translates a calendar-date selection into the filter stage's
// date predicate. Clearing the selection removes the predicate entirely
// rather than setting an empty one, so rows with a blank date are never
// matched by accident.
type DateFilter struct {
	engine *Engine
}

func NewDateFilter(engine *Engine) *DateFilter {
	return &DateFilter{engine: engine}
}

// Select sets the date predicate to the day's canonical string form.
func (f *DateFilter) Select(day time.Time) {
	f.engine.SetFilter(FieldDate, day.Format(DateLayout))
}

// Clear removes the date predicate.
func (f *DateFilter) Clear() {
	f.engine.ClearFilter(FieldDate)
}

// Selected returns the currently selected day, if any.
func (f *DateFilter) Selected() (time.Time, bool) {
	value, ok := f.engine.Filters()[FieldDate]
	if !ok {
		return time.Time{}, false
	}
	day, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}
