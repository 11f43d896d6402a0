// core/match/hit.go
package match

import "vdjmatch-core/vdjdb"

// Hit is one reference entry that survived the segment and scope gates for a
// query, together with the realized edit script and ranking inputs. Hits are
// transient outputs: the entry is copied out of the store, so a hit stays
// valid after the store is discarded.
type Hit struct {
	Entry      vdjdb.Entry
	StoreIndex int // candidate's position in the store; deterministic tie-break

	Substitutions int
	Insertions    int
	Deletions     int
	Distance      int // total realized edit count

	// Annotation scores; these never influence ranking.
	Score     float64
	CDR3Score float64
	VScore    float64
	JScore    float64
	Weight    float64
}
