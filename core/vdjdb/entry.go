// core/vdjdb/entry.go
package vdjdb

import "strings"

// Entry is one curated reference row. Immutable after load.
type Entry struct {
	Gene           string // TRA | TRB
	CDR3           string
	VSegment       string // allele-qualified, e.g. TRBV9*01
	JSegment       string
	Species        string
	AntigenEpitope string
	AntigenGene    string
	AntigenSpecies string
	MHCClass       string // MHCI | MHCII | ""
	ReferenceID    string
	Method         string
	Meta           string
	CDR3Fix        string
	Score          int // curated 0-3 confidence
}

// MatchesSpecies compares case-insensitively; table editions disagree on
// capitalization of e.g. HomoSapiens.
func (e *Entry) MatchesSpecies(species string) bool {
	return strings.EqualFold(e.Species, species)
}

func (e *Entry) MatchesGene(gene string) bool {
	return strings.EqualFold(e.Gene, gene)
}

func (e *Entry) MatchesScore(minScore int) bool {
	return e.Score >= minScore
}
