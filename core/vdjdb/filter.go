// core/vdjdb/filter.go
package vdjdb

// Filter derives a new store keeping rows that match every supplied
// criterion. Empty species/gene means "no constraint". Row order is
// preserved; an empty result is valid, not an error, and an unrecognized
// species or gene value simply matches nothing.
func (s *Store) Filter(species, gene string, minScore int) *Store {
	entries := make([]Entry, 0, len(s.Entries))
	for i := range s.Entries {
		e := &s.Entries[i]
		if species != "" && !e.MatchesSpecies(species) {
			continue
		}
		if gene != "" && !e.MatchesGene(gene) {
			continue
		}
		if !e.MatchesScore(minScore) {
			continue
		}
		entries = append(entries, *e)
	}
	return s.derive(entries)
}

// Where derives a new store keeping rows for which keep returns true. Row
// order is preserved; header metadata carries over.
func (s *Store) Where(keep func(*Entry) bool) *Store {
	entries := make([]Entry, 0, len(s.Entries))
	for i := range s.Entries {
		if keep(&s.Entries[i]) {
			entries = append(entries, s.Entries[i])
		}
	}
	return s.derive(entries)
}

// FilterByEpitopeSize keeps rows whose antigen epitope is represented by at
// least minSize distinct CDR3 sequences in this store. Epitopes are grouped
// by exact string equality.
func (s *Store) FilterByEpitopeSize(minSize int) *Store {
	distinct := make(map[string]map[string]struct{})
	for i := range s.Entries {
		e := &s.Entries[i]
		set := distinct[e.AntigenEpitope]
		if set == nil {
			set = make(map[string]struct{})
			distinct[e.AntigenEpitope] = set
		}
		set[e.CDR3] = struct{}{}
	}
	entries := make([]Entry, 0, len(s.Entries))
	for i := range s.Entries {
		e := &s.Entries[i]
		if len(distinct[e.AntigenEpitope]) >= minSize {
			entries = append(entries, *e)
		}
	}
	return s.derive(entries)
}
