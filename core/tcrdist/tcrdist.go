// core/tcrdist/tcrdist.go
package tcrdist

import (
	"github.com/cockroachdb/errors"

	"vdjmatch-core/blosum"
)

// ErrLengthMismatch marks parallel CDR column arguments of differing length.
var ErrLengthMismatch = errors.New("CDR columns must have equal length")

// Gap penalties: CDR3 indels are penalized twice as hard as CDR1/CDR2.
const (
	gapCDR12 = 4
	gapCDR3  = 8
)

// cdr3Weight reflects CDR3's dominant role in antigen contact.
const cdr3Weight = 3

// TCR holds up to six CDR amino-acid sequences (CDR1/2/3 x alpha/beta).
// An empty string means the region was not observed; missing regions
// contribute nothing to a distance, they are never treated as mismatches.
type TCR struct {
	CDR1A string
	CDR2A string
	CDR3A string
	CDR1B string
	CDR2B string
	CDR3B string
}

// FromColumns assembles TCRs from six parallel columns, failing before any
// work if the columns disagree on length.
func FromColumns(cdr1a, cdr2a, cdr3a, cdr1b, cdr2b, cdr3b []string) ([]TCR, error) {
	n := len(cdr3a)
	if len(cdr1a) != n || len(cdr2a) != n || len(cdr1b) != n || len(cdr2b) != n || len(cdr3b) != n {
		return nil, errors.WithStack(ErrLengthMismatch)
	}
	tcrs := make([]TCR, n)
	for i := 0; i < n; i++ {
		tcrs[i] = TCR{
			CDR1A: cdr1a[i], CDR2A: cdr2a[i], CDR3A: cdr3a[i],
			CDR1B: cdr1b[i], CDR2B: cdr2b[i], CDR3B: cdr3b[i],
		}
	}
	return tcrs, nil
}

// Distance is the tcrdist dissimilarity between two receptors: the sum of
// the alpha and beta chain distances. Identical receptors are at distance 0.
func Distance(a, b TCR) int {
	alpha := chainDistance(a.CDR1A, a.CDR2A, a.CDR3A, b.CDR1A, b.CDR2A, b.CDR3A)
	beta := chainDistance(a.CDR1B, a.CDR2B, a.CDR3B, b.CDR1B, b.CDR2B, b.CDR3B)
	return alpha + beta
}

// chainDistance sums the per-region alignment costs of one chain:
// cdr1 + cdr2 + 3*cdr3. A region with either sequence missing is skipped.
func chainDistance(cdr1a, cdr2a, cdr3a, cdr1b, cdr2b, cdr3b string) int {
	d := 0
	if cdr1a != "" && cdr1b != "" {
		d += alignCost(cdr1a, cdr1b, gapCDR12)
	}
	if cdr2a != "" && cdr2b != "" {
		d += alignCost(cdr2a, cdr2b, gapCDR12)
	}
	if cdr3a != "" && cdr3b != "" {
		d += cdr3Weight * alignCost(cdr3a, cdr3b, gapCDR3)
	}
	return d
}

// alignCost is a global (Needleman-Wunsch) alignment under the tcrdist cost
// model: substituting a for b costs max(0, 4-BLOSUM62[a][b]), each gap costs
// gap. Returns the minimal total cost over all alignments.
func alignCost(a, b string, gap int) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb * gap
	}
	if lb == 0 {
		return la * gap
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j * gap
	}
	for i := 1; i <= la; i++ {
		curr[0] = i * gap
		for j := 1; j <= lb; j++ {
			best := prev[j-1] + blosum.PositionScore(a[i-1], b[j-1])
			if d := prev[j] + gap; d < best {
				best = d
			}
			if d := curr[j-1] + gap; d < best {
				best = d
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}
