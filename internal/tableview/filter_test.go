package tableview

import "testing"

func sampleRows() []Row {
	return []Row{
		{ID: "a1", Date: "2026-03-10", Hour: "08:00", Patient: Patient{ID: "p1", Name: "Ana Silva", Age: 34, Document: "111.222.333-44"}},
		{ID: "a2", Date: "2026-03-10", Hour: "09:00", Patient: Patient{ID: "p2", Name: "Carlos Souza", Age: 51, Document: "222.333.444-55"}},
		{ID: "a3", Date: "2026-03-11", Hour: "10:00", Patient: Patient{ID: "p3", Name: "Mariana Costa", Age: 27, Document: "333.444.555-66"}},
		{ID: "a4", Date: "2026-03-11", Hour: "11:00", Patient: Patient{ID: "p4", Name: "Bruno Lima", Age: 45, Document: "444.555.666-77"}},
		{ID: "a5", Date: "2026-03-12", Hour: "12:00", Patient: Patient{ID: "p5", Name: "Ana Clara", Age: 8, Document: "555.666.777-88"}},
	}
}

func ids(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func assertIDs(t *testing.T, got []Row, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d rows %v, got %d: %v", len(want), want, len(got), ids(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Row %d: expected id %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestFilterIdentityPassThrough(t *testing.T) {
	rows := sampleRows()
	if got := Filter(rows, nil); len(got) != len(rows) {
		t.Fatalf("Expected identity pass-through with no predicates, got %d rows", len(got))
	}
	if got := Filter(nil, map[string]string{FieldDate: "2026-03-10"}); len(got) != 0 {
		t.Fatalf("Expected empty output for empty dataset, got %d rows", len(got))
	}
}

func TestFilterDateExactMatch(t *testing.T) {
	got := Filter(sampleRows(), map[string]string{FieldDate: "2026-03-10"})
	assertIDs(t, got, "a1", "a2")

	// Substring of a date must not match; date predicates are exact.
	got = Filter(sampleRows(), map[string]string{FieldDate: "2026-03"})
	if len(got) != 0 {
		t.Errorf("Expected partial date to match nothing, got %v", ids(got))
	}
}

func TestFilterNameSubstringCaseInsensitive(t *testing.T) {
	got := Filter(sampleRows(), map[string]string{FieldPatientName: "ana"})
	// "Ana Silva", "Mariana Costa" and "Ana Clara" contain "ana"; "Carlos"
	// and "Bruno" do not.
	assertIDs(t, got, "a1", "a3", "a5")
}

func TestFilterPredicatesCombineWithAnd(t *testing.T) {
	got := Filter(sampleRows(), map[string]string{
		FieldDate:        "2026-03-10",
		FieldPatientName: "ana",
	})
	assertIDs(t, got, "a1")
}

func TestFilterPreservesRelativeOrder(t *testing.T) {
	got := Filter(sampleRows(), map[string]string{FieldPatientName: "a"})
	for i := 1; i < len(got); i++ {
		if got[i-1].ID >= got[i].ID {
			t.Fatalf("Filter reordered rows: %v", ids(got))
		}
	}
}

func TestFilterMissingFieldNeverMatches(t *testing.T) {
	rows := append(sampleRows(), Row{ID: "a6"})
	got := Filter(rows, map[string]string{FieldPatientName: "ana"})
	for _, r := range got {
		if r.ID == "a6" {
			t.Fatal("Row with missing patient matched a non-empty filter")
		}
	}
	got = Filter(rows, map[string]string{FieldDate: "2026-03-10"})
	for _, r := range got {
		if r.ID == "a6" {
			t.Fatal("Row with missing date matched a date filter")
		}
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	rows := sampleRows()
	Filter(rows, map[string]string{FieldPatientName: "ana"})
	assertIDs(t, rows, "a1", "a2", "a3", "a4", "a5")
}
