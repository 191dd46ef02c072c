package tableview

// Store holds the immutable dataset snapshot for the current session. The
// snapshot is replaced wholesale on every load; no stage ever mutates it.
type Store struct {
	rows []Row
}

func NewStore() *Store {
	return &Store{}
}

// Set replaces the entire dataset.
func (s *Store) Set(rows []Row) {
	s.rows = rows
}

// Rows returns the current snapshot by reference. Callers must not mutate it.
func (s *Store) Rows() []Row {
	return s.rows
}

func (s *Store) Len() int {
	return len(s.rows)
}
