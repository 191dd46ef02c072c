package tableview

// Page is the pagination stage's result.
type Page struct {
	Rows      []Row
	PageIndex int
	PageCount int
}

func (p Page) HasPrev() bool {
	return p.PageIndex > 0
}

func (p Page) HasNext() bool {
	return p.PageIndex < p.PageCount-1
}

// Paginate slices rows into the cursor's page. PageCount is never below 1,
// even for an empty sequence, and an out-of-range PageIndex is clamped
// rather than rejected.
func Paginate(rows []Row, cursor Cursor) Page {
	size := cursor.PageSize
	if size <= 0 {
		size = PageSize
	}
	count := (len(rows) + size - 1) / size
	if count < 1 {
		count = 1
	}
	index := clamp(cursor.PageIndex, 0, count-1)

	start := index * size
	if start > len(rows) {
		start = len(rows)
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return Page{Rows: rows[start:end], PageIndex: index, PageCount: count}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
