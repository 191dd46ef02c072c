package tableview

// PageSize is the fixed number of rows per page.
const PageSize = 8

type Direction int

const (
	Ascending Direction = iota
	Descending
)

// SortSpec is the single active (field, direction) pair governing row order.
// The zero value means no sort.
type SortSpec struct {
	Field     string
	Direction Direction
}

func (s SortSpec) Active() bool {
	return s.Field != ""
}

// Cursor determines which slice of the sorted/filtered sequence is shown.
type Cursor struct {
	PageIndex int
	PageSize  int
}

// State holds the declarative view state: filter predicates, sort spec,
// column visibility, row selection and the pagination cursor. It never
// touches the dataset itself.
type State struct {
	// Predicates maps a logical field to its filter value. Predicates
	// combine with AND, at most one per field; an empty value removes the
	// predicate.
	Predicates map[string]string
	Sort       SortSpec
	// Visibility defaults to visible; only explicit overrides are stored.
	Visibility map[string]bool
	// Selection is the set of selected row ids. Reserved for future bulk
	// actions, no pipeline behavior depends on it.
	Selection map[string]bool
	Cursor    Cursor
}

func NewState() *State {
	return &State{
		Predicates: make(map[string]string),
		Visibility: make(map[string]bool),
		Selection:  make(map[string]bool),
		Cursor:     Cursor{PageIndex: 0, PageSize: PageSize},
	}
}

// SetPredicate sets or replaces the field's predicate. An empty value
// removes it entirely so it can never match rows with an empty field.
func (s *State) SetPredicate(field, value string) {
	if value == "" {
		delete(s.Predicates, field)
		return
	}
	s.Predicates[field] = value
}

func (s *State) ClearPredicate(field string) {
	delete(s.Predicates, field)
}

// ToggleSort flips the direction when the field is already active and
// otherwise selects the field with ascending default.
func (s *State) ToggleSort(field string) {
	if s.Sort.Field == field {
		if s.Sort.Direction == Ascending {
			s.Sort.Direction = Descending
		} else {
			s.Sort.Direction = Ascending
		}
		return
	}
	s.Sort = SortSpec{Field: field, Direction: Ascending}
}

func (s *State) SetVisibility(field string, visible bool) {
	s.Visibility[field] = visible
}

// IsVisible reports whether a column should be rendered. Fields without an
// explicit override are visible.
func (s *State) IsVisible(field string) bool {
	visible, ok := s.Visibility[field]
	return !ok || visible
}

func (s *State) ToggleSelection(id string) {
	if s.Selection[id] {
		delete(s.Selection, id)
		return
	}
	s.Selection[id] = true
}

func (s *State) IsSelected(id string) bool {
	return s.Selection[id]
}
