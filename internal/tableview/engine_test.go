package tableview

import (
	"fmt"
	"testing"
)

// scheduleRows builds the ten-appointment dataset used by the scenarios:
// distinct hours 08:00..17:00, three appointments on 2026-03-10.
func scheduleRows() []Row {
	dates := []string{
		"2026-03-10", "2026-03-10", "2026-03-10",
		"2026-03-11", "2026-03-11", "2026-03-11", "2026-03-11",
		"2026-03-12", "2026-03-12", "2026-03-12",
	}
	rows := make([]Row, 10)
	for i := range rows {
		rows[i] = Row{
			ID:   fmt.Sprintf("appt-%d", i),
			Date: dates[i],
			Hour: fmt.Sprintf("%02d:00", 8+i),
			Patient: Patient{
				ID:       fmt.Sprintf("pat-%d", i),
				Name:     fmt.Sprintf("Patient %d", i),
				Age:      20 + i,
				Document: fmt.Sprintf("doc-%d", i),
			},
		}
	}
	return rows
}

func newLoadedEngine() *Engine {
	e := NewEngine()
	e.SetRows(scheduleRows())
	return e
}

func TestEngineFirstPageSortedByHour(t *testing.T) {
	e := newLoadedEngine()
	e.SetSort(FieldHour)

	if got := e.FilteredCount(); got != 10 {
		t.Fatalf("Expected filtered count 10, got %d", got)
	}

	rows := e.VisibleRows()
	if len(rows) != PageSize {
		t.Fatalf("Expected a full page of %d rows, got %d", PageSize, len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].Hour >= rows[i].Hour {
			t.Fatalf("Page not in ascending hour order: %s before %s", rows[i-1].Hour, rows[i].Hour)
		}
	}

	info := e.PageInfo()
	if info.PageIndex != 0 || info.PageCount != 2 {
		t.Errorf("Expected page 0 of 2, got %d of %d", info.PageIndex, info.PageCount)
	}
}

func TestEngineDateFilterShrinksAndClampsPage(t *testing.T) {
	e := newLoadedEngine()
	e.SetPage(+1)
	if info := e.PageInfo(); info.PageIndex != 1 {
		t.Fatalf("Expected to be on page 1, got %d", info.PageIndex)
	}

	e.SetFilter(FieldDate, "2026-03-10")
	if got := e.FilteredCount(); got != 3 {
		t.Fatalf("Expected 3 rows on 2026-03-10, got %d", got)
	}
	info := e.PageInfo()
	if info.PageCount != 1 {
		t.Errorf("Expected a single page, got %d", info.PageCount)
	}
	if info.PageIndex != 0 {
		t.Errorf("Expected page index clamped to 0, got %d", info.PageIndex)
	}
}

func TestEngineClearFilterRestoresDataset(t *testing.T) {
	e := newLoadedEngine()
	before := e.FilteredCount()

	e.SetFilter(FieldDate, "2026-03-10")
	e.ClearFilter(FieldDate)

	if got := e.FilteredCount(); got != before {
		t.Fatalf("Expected count restored to %d after clearing, got %d", before, got)
	}
}

func TestEngineEmptyFilterValueRemovesPredicate(t *testing.T) {
	e := newLoadedEngine()
	e.SetFilter(FieldPatientName, "Patient 3")
	e.SetFilter(FieldPatientName, "")

	if got := e.FilteredCount(); got != 10 {
		t.Fatalf("Expected empty value to remove the predicate, count %d", got)
	}
	if len(e.Filters()) != 0 {
		t.Errorf("Expected no active predicates, got %v", e.Filters())
	}
}

func TestEngineSortToggleAndFieldSwitch(t *testing.T) {
	e := newLoadedEngine()

	e.SetSort(FieldHour)
	if s := e.Sort(); s.Field != FieldHour || s.Direction != Ascending {
		t.Fatalf("Expected ascending hour sort, got %+v", s)
	}

	e.SetSort(FieldHour)
	if s := e.Sort(); s.Direction != Descending {
		t.Fatalf("Expected toggled descending sort, got %+v", s)
	}
	if first := e.VisibleRows()[0]; first.Hour != "17:00" {
		t.Errorf("Expected latest hour first when descending, got %s", first.Hour)
	}

	// Selecting a new field resets direction to ascending.
	e.SetSort(FieldPatientAge)
	if s := e.Sort(); s.Field != FieldPatientAge || s.Direction != Ascending {
		t.Fatalf("Expected ascending sort on new field, got %+v", s)
	}
}

func TestEnginePageNavigationClampsAtBounds(t *testing.T) {
	e := newLoadedEngine()

	e.SetPage(-1)
	if info := e.PageInfo(); info.PageIndex != 0 {
		t.Errorf("Expected prev on first page to stay at 0, got %d", info.PageIndex)
	}

	e.SetPage(+1)
	e.SetPage(+1)
	e.SetPage(+1)
	info := e.PageInfo()
	if info.PageIndex != 1 {
		t.Errorf("Expected next past last page to stay at 1, got %d", info.PageIndex)
	}
	if info.HasNext() {
		t.Error("Expected next reported disabled on last page")
	}
	if !info.HasPrev() {
		t.Error("Expected prev reported enabled on last page")
	}

	if got := len(e.VisibleRows()); got != 2 {
		t.Errorf("Expected 2 rows on the last page, got %d", got)
	}
}

func TestEngineVisibilityDoesNotAffectPipeline(t *testing.T) {
	e := newLoadedEngine()
	e.SetSort(FieldHour)
	before := ids(e.VisibleRows())

	e.SetVisibility(FieldHour, false)
	if e.IsVisible(FieldHour) {
		t.Fatal("Expected hour column hidden")
	}
	after := ids(e.VisibleRows())
	if len(before) != len(after) {
		t.Fatalf("Hiding a column changed the page size: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("Hiding a column changed row order")
		}
	}

	cols := e.VisibleColumns()
	for _, c := range cols {
		if c == FieldHour {
			t.Error("Hidden column still listed as visible")
		}
	}
	if len(cols) != len(Columns)-1 {
		t.Errorf("Expected %d visible columns, got %d", len(Columns)-1, len(cols))
	}
}

func TestEngineSelectionToggle(t *testing.T) {
	e := newLoadedEngine()
	e.ToggleSelection("appt-2")
	e.ToggleSelection("appt-5")
	e.ToggleSelection("appt-2")

	if e.IsSelected("appt-2") {
		t.Error("Expected appt-2 deselected after second toggle")
	}
	if !e.IsSelected("appt-5") {
		t.Error("Expected appt-5 selected")
	}
	if got := e.SelectedIDs(); len(got) != 1 || got[0] != "appt-5" {
		t.Errorf("Expected selection [appt-5], got %v", got)
	}
}

func TestEngineRecomputationIsPure(t *testing.T) {
	e := newLoadedEngine()
	e.SetFilter(FieldDate, "2026-03-11")
	e.SetSort(FieldHour)

	first := ids(e.VisibleRows())
	for i := 0; i < 3; i++ {
		again := ids(e.VisibleRows())
		if len(again) != len(first) {
			t.Fatalf("Recomputation changed row count: %d vs %d", len(again), len(first))
		}
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("Recomputation with unchanged inputs changed output: %v vs %v", first, again)
			}
		}
	}
}

func TestEngineEmptyDatasetDegradesGracefully(t *testing.T) {
	e := NewEngine()
	if got := len(e.VisibleRows()); got != 0 {
		t.Errorf("Expected no visible rows, got %d", got)
	}
	info := e.PageInfo()
	if info.PageCount != 1 || info.PageIndex != 0 {
		t.Errorf("Expected page 0 of 1 for empty dataset, got %d of %d", info.PageIndex, info.PageCount)
	}
	e.SetPage(+1)
	e.SetFilter(FieldPatientName, "ana")
	e.SetSort(FieldHour)
	if got := e.FilteredCount(); got != 0 {
		t.Errorf("Expected filtered count 0, got %d", got)
	}
}
