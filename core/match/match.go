// core/match/match.go
package match

import (
	"sort"

	"vdjmatch-core/alignment"
	"vdjmatch-core/receptor"
	"vdjmatch-core/scope"
	"vdjmatch-core/vdjdb"
)

// Config controls one matching call. The zero value means exact CDR3
// matching with unlimited hits and plain mismatch scoring.
type Config struct {
	Scope scope.Spec
	TopN  int // <= 0 means unlimited

	// Scoring knobs; annotation only, never part of ranking.
	VDJMatchScoring   bool    // 0.5*cdr3 + 0.25*v + 0.25*j aggregate
	UseScoreThreshold bool
	ScoreThreshold    float64

	// Weight hits by -log10 of the chance of hitting the epitope at random.
	WeightByInformativeness bool
}

// One scans every candidate in the store for a single query and returns the
// ranked hit list. Per candidate:
//
//  1. Segment gate: a non-empty query V segment must equal the candidate's
//     V segment exactly; same rule independently for J. Empty means no
//     constraint.
//  2. Scope gate: some edit script within every budget of the scope must
//     transform the query CDR3 into the candidate CDR3.
//
// Survivors are ordered by ascending total edit distance, ties broken by
// store position, then truncated to TopN. Zero hits is a valid result.
func One(store *vdjdb.Store, q receptor.Clonotype, cfg Config) []Hit {
	var hits []Hit
	for i := range store.Entries {
		e := &store.Entries[i]
		if q.VSegment != "" && q.VSegment != e.VSegment {
			continue
		}
		if q.JSegment != "" && q.JSegment != e.JSegment {
			continue
		}
		counts, ok := alignment.Within(q.CDR3, e.CDR3, cfg.Scope)
		if !ok {
			continue
		}

		h := Hit{
			Entry:         *e,
			StoreIndex:    i,
			Substitutions: counts.Substitutions,
			Insertions:    counts.Insertions,
			Deletions:     counts.Deletions,
			Distance:      counts.Total(),
			Weight:        1,
		}
		score(&h, q, cfg)
		if cfg.UseScoreThreshold && h.Score < cfg.ScoreThreshold {
			continue
		}
		hits = append(hits, h)
	}

	// Candidates were visited in store order, so a stable sort on distance
	// alone yields the documented tie-break.
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].Distance < hits[b].Distance })
	if cfg.TopN > 0 && len(hits) > cfg.TopN {
		hits = hits[:cfg.TopN]
	}
	if cfg.WeightByInformativeness {
		weight(hits, store)
	}
	return hits
}
