// core/vdjdb/store.go
package vdjdb

// Store is an ordered, immutable in-memory reference table. Filtering never
// mutates a store: it produces a new one, and the original plus any of its
// derivatives stay independently valid.
type Store struct {
	Entries []Entry
	columns []string // header row as loaded, original order
}

// Len returns the row count.
func (s *Store) Len() int { return len(s.Entries) }

// Columns returns the header names of the source table in their original
// order (including columns the loader ignores).
func (s *Store) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

func (s *Store) derive(entries []Entry) *Store {
	return &Store{Entries: entries, columns: s.columns}
}
