// core/match/score_test.go
package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vdjmatch-core/alignment"
)

func TestMismatchScore(t *testing.T) {
	assert.InDelta(t, 1.0, MismatchScore(alignment.Align("CASSF", "CASSF")), 1e-9)
	assert.InDelta(t, 0.8, MismatchScore(alignment.Align("CASSF", "CASSL")), 1e-9)
	assert.InDelta(t, 1.0, MismatchScore(alignment.Align("", "")), 1e-9)
	assert.InDelta(t, 0.0, MismatchScore(alignment.Align("", "AAA")), 1e-9)
}

func TestRawScoreIdentity(t *testing.T) {
	// Identity alignments sum the diagonal: C=9 A=4 S=4 S=4 F=6 -> 27.
	got := RawScore(alignment.Align("CASSF", "CASSF"))
	assert.InDelta(t, 27.0, got, 1e-9)
}

func TestNormalizedScore(t *testing.T) {
	ident := NormalizedScore(alignment.Align("CASSF", "CASSF"))
	assert.InDelta(t, 1.0, ident, 1e-9)

	diverged := NormalizedScore(alignment.Align("CASSF", "WWWWW"))
	assert.Less(t, diverged, ident)
	assert.GreaterOrEqual(t, diverged, 0.0)
}

func TestSegmentScore(t *testing.T) {
	assert.Equal(t, 1.0, SegmentScore("TRBV12-3*01", "TRBV12-3*02"), "alleles normalize away")
	assert.Equal(t, 1.0, SegmentScore("TRBV12-3", "TRBV12-3"))
	assert.Equal(t, 0.0, SegmentScore("TRBV12-3", "TRBV12-4"))
}
