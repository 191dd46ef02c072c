package tableview

// Engine orchestrates the filter, sort and pagination stages over the row
// store, memoizing the intermediate results. Mutating operations only
// invalidate the stages downstream of the changed state, so re-running the
// pipeline with unchanged inputs is free. The engine is not synchronized;
// callers embedding it under a concurrent delivery layer guard it
// themselves.
type Engine struct {
	store *Store
	state *State

	filtered   []Row
	filteredOK bool
	sorted     []Row
	sortedOK   bool
}

func NewEngine() *Engine {
	return &Engine{
		store: NewStore(),
		state: NewState(),
	}
}

// SetRows replaces the dataset snapshot and recomputes everything.
func (e *Engine) SetRows(rows []Row) {
	e.store.Set(rows)
	e.invalidateFilter()
}

// SetFilter sets or replaces the field's predicate; an empty value removes
// it. Downstream stages are recomputed and the page index clamped.
func (e *Engine) SetFilter(field, value string) {
	e.state.SetPredicate(field, value)
	e.invalidateFilter()
}

// ClearFilter removes the field's predicate entirely.
func (e *Engine) ClearFilter(field string) {
	e.state.ClearPredicate(field)
	e.invalidateFilter()
}

// SetSort toggles direction when the field is already active, otherwise
// sorts ascending by the field. Filter output is unaffected.
func (e *Engine) SetSort(field string) {
	e.state.ToggleSort(field)
	e.invalidateSort()
}

// SetVisibility controls which columns the renderer shows. It never affects
// the filter, sort or pagination outputs.
func (e *Engine) SetVisibility(field string, visible bool) {
	e.state.SetVisibility(field, visible)
}

func (e *Engine) IsVisible(field string) bool {
	return e.state.IsVisible(field)
}

// VisibleColumns returns the columns the renderer should show, in display
// order.
func (e *Engine) VisibleColumns() []string {
	out := make([]string, 0, len(Columns))
	for _, field := range Columns {
		if e.state.IsVisible(field) {
			out = append(out, field)
		}
	}
	return out
}

func (e *Engine) ToggleSelection(id string) {
	e.state.ToggleSelection(id)
}

func (e *Engine) IsSelected(id string) bool {
	return e.state.IsSelected(id)
}

// SelectedIDs returns the selected row ids in dataset order.
func (e *Engine) SelectedIDs() []string {
	out := make([]string, 0, len(e.state.Selection))
	for _, row := range e.store.Rows() {
		if e.state.IsSelected(row.ID) {
			out = append(out, row.ID)
		}
	}
	return out
}

// SetPage moves the page index by delta, clamping silently at either end.
// Out-of-range deltas are not an error.
func (e *Engine) SetPage(delta int) {
	page := e.paginate()
	e.state.Cursor.PageIndex = clamp(page.PageIndex+delta, 0, page.PageCount-1)
}

// VisibleRows returns the rows of the current page after filtering and
// sorting.
func (e *Engine) VisibleRows() []Row {
	return e.paginate().Rows
}

// PageInfo reports the clamped page index, total page count and whether
// prev/next navigation is possible.
func (e *Engine) PageInfo() Page {
	page := e.paginate()
	page.Rows = nil
	return page
}

// FilteredCount is the length of the post-filter, pre-pagination sequence.
func (e *Engine) FilteredCount() int {
	return len(e.filter())
}

// Filters returns a copy of the active predicates.
func (e *Engine) Filters() map[string]string {
	out := make(map[string]string, len(e.state.Predicates))
	for field, value := range e.state.Predicates {
		out[field] = value
	}
	return out
}

func (e *Engine) Sort() SortSpec {
	return e.state.Sort
}

func (e *Engine) invalidateFilter() {
	e.filteredOK = false
	e.invalidateSort()
}

func (e *Engine) invalidateSort() {
	e.sortedOK = false
}

func (e *Engine) filter() []Row {
	if !e.filteredOK {
		e.filtered = Filter(e.store.Rows(), e.state.Predicates)
		e.filteredOK = true
	}
	return e.filtered
}

func (e *Engine) sort() []Row {
	if !e.sortedOK {
		e.sorted = Sort(e.filter(), e.state.Sort)
		e.sortedOK = true
	}
	return e.sorted
}

func (e *Engine) paginate() Page {
	page := Paginate(e.sort(), e.state.Cursor)
	// Keep the cursor within bounds after any change that shrank the
	// result set.
	e.state.Cursor.PageIndex = page.PageIndex
	return page
}
