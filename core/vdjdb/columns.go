// core/vdjdb/columns.go
package vdjdb

// Columns is a column-oriented view of a store: eleven parallel equal-length
// slices, as consumed by tabular front-ends.
type Columns struct {
	Gene           []string
	CDR3           []string
	VSegment       []string
	JSegment       []string
	Species        []string
	AntigenEpitope []string
	AntigenGene    []string
	AntigenSpecies []string
	MHCClass       []string
	ReferenceID    []string
	Score          []int
}

// ToColumns extracts every field into pre-sized parallel slices in a single
// pass: one allocation per column, linear time.
func (s *Store) ToColumns() Columns {
	n := len(s.Entries)
	c := Columns{
		Gene:           make([]string, n),
		CDR3:           make([]string, n),
		VSegment:       make([]string, n),
		JSegment:       make([]string, n),
		Species:        make([]string, n),
		AntigenEpitope: make([]string, n),
		AntigenGene:    make([]string, n),
		AntigenSpecies: make([]string, n),
		MHCClass:       make([]string, n),
		ReferenceID:    make([]string, n),
		Score:          make([]int, n),
	}
	for i := range s.Entries {
		e := &s.Entries[i]
		c.Gene[i] = e.Gene
		c.CDR3[i] = e.CDR3
		c.VSegment[i] = e.VSegment
		c.JSegment[i] = e.JSegment
		c.Species[i] = e.Species
		c.AntigenEpitope[i] = e.AntigenEpitope
		c.AntigenGene[i] = e.AntigenGene
		c.AntigenSpecies[i] = e.AntigenSpecies
		c.MHCClass[i] = e.MHCClass
		c.ReferenceID[i] = e.ReferenceID
		c.Score[i] = e.Score
	}
	return c
}
