package tableview

import (
	"testing"
	"time"
)

func TestDateFilterSelectSetsCanonicalPredicate(t *testing.T) {
	e := newLoadedEngine()
	f := NewDateFilter(e)

	f.Select(time.Date(2026, time.March, 10, 15, 42, 7, 0, time.UTC))
	if got := e.Filters()[FieldDate]; got != "2026-03-10" {
		t.Fatalf("Expected canonical date predicate 2026-03-10, got %q", got)
	}
	if got := e.FilteredCount(); got != 3 {
		t.Errorf("Expected 3 rows after date selection, got %d", got)
	}

	day, ok := f.Selected()
	if !ok || day.Format(DateLayout) != "2026-03-10" {
		t.Errorf("Expected selected day 2026-03-10, got %v (%v)", day, ok)
	}
}

func TestDateFilterClearRemovesPredicateEntirely(t *testing.T) {
	rows := append(scheduleRows(), Row{ID: "blank-date", Patient: Patient{Name: "No Date"}})
	e := NewEngine()
	e.SetRows(rows)
	f := NewDateFilter(e)

	f.Select(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))
	f.Clear()

	if _, ok := e.Filters()[FieldDate]; ok {
		t.Fatal("Expected date predicate removed, not emptied")
	}
	// The row with a blank date must reappear: clearing is a removal, not
	// an empty-string predicate.
	if got := e.FilteredCount(); got != len(rows) {
		t.Fatalf("Expected full dataset of %d after clearing, got %d", len(rows), got)
	}
	if _, ok := f.Selected(); ok {
		t.Error("Expected no selected day after clearing")
	}
}
