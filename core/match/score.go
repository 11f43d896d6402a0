// core/match/score.go
package match

import (
	"math"

	"vdjmatch-core/alignment"
	"vdjmatch-core/blosum"
	"vdjmatch-core/receptor"
)

const gapScore = -4

func score(h *Hit, q receptor.Clonotype, cfg Config) {
	aln := alignment.Align(q.CDR3, h.Entry.CDR3)
	h.VScore = SegmentScore(q.VSegment, h.Entry.VSegment)
	h.JScore = SegmentScore(q.JSegment, h.Entry.JSegment)
	if cfg.VDJMatchScoring {
		h.CDR3Score = NormalizedScore(aln)
		h.Score = 0.5*h.CDR3Score + 0.25*h.VScore + 0.25*h.JScore
	} else {
		h.CDR3Score = MismatchScore(aln)
		h.Score = h.CDR3Score
	}
}

// MismatchScore is 1 minus the edit distance as a fraction of the longer
// sequence: 1.0 for identical CDR3s, toward 0 as they diverge.
func MismatchScore(aln alignment.Alignment) float64 {
	n := len(aln.Query)
	if len(aln.Target) > n {
		n = len(aln.Target)
	}
	if n == 0 {
		return 1
	}
	return 1 - float64(aln.Distance)/float64(n)
}

// RawScore sums BLOSUM62 scores over aligned positions with a flat -4 per
// gap.
func RawScore(aln alignment.Alignment) float64 {
	total := 0
	qi, ti := 0, 0
	for _, op := range aln.Ops {
		switch op {
		case alignment.OpMatch, alignment.OpSubstitution:
			total += blosum.Score(aln.Query[qi], aln.Target[ti])
			qi++
			ti++
		case alignment.OpInsertion:
			total += gapScore
			ti++
		case alignment.OpDeletion:
			total += gapScore
			qi++
		}
	}
	return float64(total)
}

// NormalizedScore rescales the raw BLOSUM score against the best self-score
// of either sequence and clamps into [0,1].
func NormalizedScore(aln alignment.Alignment) float64 {
	maxSelf := 0
	for i := 0; i < len(aln.Query); i++ {
		maxSelf += blosum.Score(aln.Query[i], aln.Query[i])
	}
	targetSelf := 0
	for i := 0; i < len(aln.Target); i++ {
		targetSelf += blosum.Score(aln.Target[i], aln.Target[i])
	}
	if targetSelf > maxSelf {
		maxSelf = targetSelf
	}
	if maxSelf == 0 {
		return 0
	}
	norm := (RawScore(aln) - float64(aln.Distance)*gapScore) / float64(maxSelf)
	return math.Min(1, math.Max(0, norm))
}

// SegmentScore is 1.0 when the two segments agree after allele
// normalization, 0 otherwise.
func SegmentScore(query, db string) float64 {
	if receptor.NormalizeSegment(query) == receptor.NormalizeSegment(db) {
		return 1
	}
	return 0
}
