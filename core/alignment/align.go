// core/alignment/align.go
package alignment

// Op is a single step of an edit script.
type Op uint8

const (
	OpMatch Op = iota
	OpSubstitution
	OpInsertion
	OpDeletion
)

// Alignment is a minimal-distance edit script between two sequences,
// recovered by backtracking the Levenshtein table. Insertions add target
// characters, deletions drop query characters.
type Alignment struct {
	Query         string
	Target        string
	Ops           []Op
	Substitutions int
	Insertions    int
	Deletions     int
	Distance      int
}

// Distance computes the plain Levenshtein distance between two sequences
// using a two-row table.
func Distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// Align fills the full Levenshtein table and backtracks one minimal edit
// script, preferring diagonal moves.
func Align(query, target string) Alignment {
	m, n := len(query), len(target)
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
		dp[i][0] = i
	}
	for j := 0; j <= n; j++ {
		dp[0][j] = j
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 1
			if query[i-1] == target[j-1] {
				cost = 0
			}
			dp[i][j] = min3(dp[i-1][j]+1, dp[i][j-1]+1, dp[i-1][j-1]+cost)
		}
	}

	aln := Alignment{Query: query, Target: target, Distance: dp[m][n]}
	ops := make([]Op, 0, m+n)
	i, j := m, n
	for i > 0 || j > 0 {
		if i > 0 && j > 0 {
			cost := 1
			if query[i-1] == target[j-1] {
				cost = 0
			}
			if dp[i][j] == dp[i-1][j-1]+cost {
				if cost == 0 {
					ops = append(ops, OpMatch)
				} else {
					ops = append(ops, OpSubstitution)
					aln.Substitutions++
				}
				i--
				j--
				continue
			}
		}
		if i > 0 && dp[i][j] == dp[i-1][j]+1 {
			ops = append(ops, OpDeletion)
			aln.Deletions++
			i--
		} else {
			ops = append(ops, OpInsertion)
			aln.Insertions++
			j--
		}
	}
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}
	aln.Ops = ops
	return aln
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
