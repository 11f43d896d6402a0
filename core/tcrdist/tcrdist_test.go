// core/tcrdist/tcrdist_test.go
package tcrdist

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignCost(t *testing.T) {
	assert.Equal(t, 0, alignCost("CASSF", "CASSF", 4))

	// One substitution S->F: max(0, 4 - BLOSUM62[S][F]) = 4-(-2) = 6,
	// cheaper than a gap pair.
	assert.Equal(t, 6, alignCost("CASS", "CASF", 8))

	// Length difference of one costs exactly one gap.
	assert.Equal(t, 8, alignCost("CASS", "CASSF", 8))
	assert.Equal(t, 4, alignCost("CASS", "CASSF", 4))

	// Empty sequences cost one gap per residue.
	assert.Equal(t, 0, alignCost("", "", 4))
	assert.Equal(t, 12, alignCost("", "CAS", 4))
	assert.Equal(t, 24, alignCost("CAS", "", 8))
}

func TestDistanceIdentity(t *testing.T) {
	a := TCR{CDR1A: "TSGFNG", CDR2A: "NVLDGL", CDR3A: "CAVRDSNYQLIW",
		CDR1B: "SGHRS", CDR2B: "YFSETQ", CDR3B: "CASSLGQAYEQYF"}
	assert.Equal(t, 0, Distance(a, a))
	assert.Equal(t, 0.0, Single(a, a))
}

func TestDistanceSymmetry(t *testing.T) {
	a := TCR{CDR1A: "TSGFNG", CDR3A: "CAVRDSNYQLIW", CDR3B: "CASSLGQAYEQYF"}
	b := TCR{CDR1A: "TSGFYG", CDR3A: "CAVRDSNYQLIF", CDR3B: "CASSLGQAYEQYY"}
	assert.Equal(t, Distance(a, b), Distance(b, a))
	assert.Greater(t, Distance(a, b), 0)
}

func TestMissingRegionNeutrality(t *testing.T) {
	// Only CDR3 beta present: distance is 3x the CDR3 alignment cost; the
	// empty regions contribute exactly 0.
	a := TCR{CDR3B: "CASS"}
	b := TCR{CDR3B: "CASF"}
	assert.Equal(t, 3*6, Distance(a, b)) // S->F costs 6, weighted x3

	withCDR1 := TCR{CDR1B: "SGHRS", CDR3B: "CASS"}
	alsoCDR1 := TCR{CDR1B: "SGHRS", CDR3B: "CASF"}
	assert.Equal(t, Distance(a, b), Distance(withCDR1, alsoCDR1),
		"identical CDR1s add nothing")

	// One side missing a region: skipped, never penalized.
	oneSided := TCR{CDR1B: "SGHRS", CDR3B: "CASF"}
	assert.Equal(t, Distance(a, b), Distance(TCR{CDR3B: "CASS"}, oneSided))
}

func TestChainWeights(t *testing.T) {
	// CDR1 distance counts once, CDR3 three times.
	cdr1Only := Distance(TCR{CDR1A: "CASS"}, TCR{CDR1A: "CASF"})
	cdr3Only := Distance(TCR{CDR3A: "CASS"}, TCR{CDR3A: "CASF"})
	assert.Equal(t, 6, cdr1Only)
	assert.Equal(t, 18, cdr3Only)

	// Alpha and beta chains sum.
	both := Distance(
		TCR{CDR3A: "CASS", CDR3B: "CASS"},
		TCR{CDR3A: "CASF", CDR3B: "CASF"},
	)
	assert.Equal(t, 36, both)
}

func TestPairwise(t *testing.T) {
	tcrs := []TCR{
		{CDR3A: "CAVRDSNYQLIW", CDR3B: "CASSLGQAYEQYF"},
		{CDR3A: "CAVRDSNYQLIF", CDR3B: "CASSLGQAYEQYY"},
		{CDR3B: "CASSF"},
	}
	n := len(tcrs)
	pairs := Pairwise(tcrs, 2)
	require.Len(t, pairs, n*n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cell := pairs[i*n+j]
			assert.Equal(t, i, cell.I)
			assert.Equal(t, j, cell.J)
			if i == j {
				assert.Equal(t, 0.0, cell.Distance, "self-pair must be 0")
			}
			assert.Equal(t, pairs[j*n+i].Distance, cell.Distance, "symmetry")
			// Single-pair extraction is bit-identical to the matrix cell.
			assert.Equal(t, Single(tcrs[i], tcrs[j]), cell.Distance)
		}
	}
}

func TestPairwiseWorkerCounts(t *testing.T) {
	tcrs := []TCR{{CDR3B: "CASSF"}, {CDR3B: "CASSL"}, {CDR3B: "CASS"}, {CDR3B: "CAS"}}
	serial := Pairwise(tcrs, 1)
	parallel := Pairwise(tcrs, 8)
	defaulted := Pairwise(tcrs, 0)
	assert.Equal(t, serial, parallel)
	assert.Equal(t, serial, defaulted)
}

func TestPairwiseEmpty(t *testing.T) {
	assert.Empty(t, Pairwise(nil, 4))
}

func TestFromColumns(t *testing.T) {
	tcrs, err := FromColumns(
		[]string{"A", ""}, []string{"B", ""}, []string{"CASS", "CAVR"},
		[]string{"", ""}, []string{"", ""}, []string{"CASSF", "CASSL"},
	)
	require.NoError(t, err)
	require.Len(t, tcrs, 2)
	assert.Equal(t, TCR{CDR1A: "A", CDR2A: "B", CDR3A: "CASS", CDR3B: "CASSF"}, tcrs[0])

	_, err = FromColumns(
		[]string{"A"}, []string{}, []string{"CASS"},
		[]string{""}, []string{""}, []string{"CASSF"},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}
