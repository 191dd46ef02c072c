package tableview

import (
	"fmt"
	"testing"
)

func manyRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{ID: fmt.Sprintf("r%02d", i)}
	}
	return rows
}

func TestPaginateEmptyDatasetHasOnePage(t *testing.T) {
	page := Paginate(nil, Cursor{PageIndex: 0, PageSize: PageSize})
	if page.PageCount != 1 {
		t.Fatalf("Expected pageCount 1 for empty dataset, got %d", page.PageCount)
	}
	if len(page.Rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(page.Rows))
	}
	if page.HasPrev() || page.HasNext() {
		t.Error("Expected navigation disabled on a single empty page")
	}
}

func TestPaginatePageCount(t *testing.T) {
	tests := []struct {
		rows, size, want int
	}{
		{0, 8, 1},
		{1, 8, 1},
		{8, 8, 1},
		{9, 8, 2},
		{16, 8, 2},
		{17, 8, 3},
	}
	for _, tt := range tests {
		page := Paginate(manyRows(tt.rows), Cursor{PageSize: tt.size})
		if page.PageCount != tt.want {
			t.Errorf("%d rows / size %d: expected %d pages, got %d", tt.rows, tt.size, tt.want, page.PageCount)
		}
	}
}

func TestPaginateConcatenationReconstructsSequence(t *testing.T) {
	rows := manyRows(19)
	var joined []Row
	first := Paginate(rows, Cursor{PageIndex: 0, PageSize: PageSize})
	for i := 0; i < first.PageCount; i++ {
		joined = append(joined, Paginate(rows, Cursor{PageIndex: i, PageSize: PageSize}).Rows...)
	}
	if len(joined) != len(rows) {
		t.Fatalf("Expected %d rows across all pages, got %d", len(rows), len(joined))
	}
	for i := range rows {
		if joined[i].ID != rows[i].ID {
			t.Fatalf("Page concatenation diverges at %d: %s vs %s", i, joined[i].ID, rows[i].ID)
		}
	}
}

func TestPaginateClampsOutOfRangeIndex(t *testing.T) {
	rows := manyRows(10)
	page := Paginate(rows, Cursor{PageIndex: 99, PageSize: PageSize})
	if page.PageIndex != 1 {
		t.Errorf("Expected index clamped to last page 1, got %d", page.PageIndex)
	}
	page = Paginate(rows, Cursor{PageIndex: -3, PageSize: PageSize})
	if page.PageIndex != 0 {
		t.Errorf("Expected negative index clamped to 0, got %d", page.PageIndex)
	}
}

func TestPaginateNavigationFlags(t *testing.T) {
	rows := manyRows(10)
	first := Paginate(rows, Cursor{PageIndex: 0, PageSize: PageSize})
	if first.HasPrev() {
		t.Error("First page must report prev disabled")
	}
	if !first.HasNext() {
		t.Error("First page of two must report next enabled")
	}
	last := Paginate(rows, Cursor{PageIndex: 1, PageSize: PageSize})
	if !last.HasPrev() {
		t.Error("Last page must report prev enabled")
	}
	if last.HasNext() {
		t.Error("Last page must report next disabled")
	}
}
