// core/alignment/bounded.go
package alignment

import "vdjmatch-core/scope"

// Counts is a realized edit script broken down by type.
type Counts struct {
	Substitutions int
	Insertions    int
	Deletions     int
}

// Total is the overall edit distance of the script.
func (c Counts) Total() int { return c.Substitutions + c.Insertions + c.Deletions }

func (c Counts) exceeds(sc scope.Spec) bool {
	return c.Substitutions > sc.Substitutions ||
		c.Insertions > sc.Insertions ||
		c.Deletions > sc.Deletions ||
		c.Total() > sc.Total
}

// dominatedBy: every component of d is <= the corresponding component of c,
// so any script reachable from c is also reachable from d.
func (c Counts) dominatedBy(d Counts) bool {
	return d.Substitutions <= c.Substitutions && d.Insertions <= c.Insertions && d.Deletions <= c.Deletions
}

func (c Counts) better(d Counts) bool {
	if ct, dt := c.Total(), d.Total(); ct != dt {
		return ct < dt
	}
	if c.Substitutions != d.Substitutions {
		return c.Substitutions < d.Substitutions
	}
	if c.Insertions != d.Insertions {
		return c.Insertions < d.Insertions
	}
	return c.Deletions < d.Deletions
}

// Within reports whether some edit script transforms query into target while
// staying inside every ceiling of the scope: at most S substitutions, I
// insertions, D deletions, and T edits overall. The three per-type budgets
// are independent ceilings, not components of one scalar distance, so the DP
// tracks a set of Pareto-minimal (sub,ins,del) triples per cell instead of a
// single cost. On success it returns the cheapest qualifying script: minimal
// total, ties resolved toward fewer substitutions, then insertions.
func Within(query, target string, sc scope.Spec) (Counts, bool) {
	m, n := len(query), len(target)

	// A length difference forces at least that many insertions or deletions.
	if n-m > sc.Insertions || m-n > sc.Deletions {
		return Counts{}, false
	}
	if d := n - m; d > sc.Total || -d > sc.Total {
		return Counts{}, false
	}
	if sc.IsExact() {
		if query == target {
			return Counts{}, true
		}
		return Counts{}, false
	}

	// prev[j] / curr[j] hold the Pareto frontier of triples that transform
	// query[:i] into target[:j] without breaching any ceiling.
	prev := make([][]Counts, n+1)
	curr := make([][]Counts, n+1)
	prev[0] = []Counts{{}}
	for j := 1; j <= n; j++ {
		c := Counts{Insertions: j}
		if c.exceeds(sc) {
			break
		}
		prev[j] = []Counts{c}
	}

	for i := 1; i <= m; i++ {
		for j := range curr {
			curr[j] = nil
		}
		if c := (Counts{Deletions: i}); !c.exceeds(sc) {
			curr[0] = []Counts{c}
		}
		qc := query[i-1]
		for j := 1; j <= n; j++ {
			var fr []Counts
			for _, c := range prev[j-1] {
				if qc != target[j-1] {
					c.Substitutions++
				}
				fr = merge(fr, c, sc)
			}
			for _, c := range prev[j] {
				c.Deletions++
				fr = merge(fr, c, sc)
			}
			for _, c := range curr[j-1] {
				c.Insertions++
				fr = merge(fr, c, sc)
			}
			curr[j] = fr
		}
		prev, curr = curr, prev
	}

	fr := prev[n]
	if len(fr) == 0 {
		return Counts{}, false
	}
	best := fr[0]
	for _, c := range fr[1:] {
		if c.better(best) {
			best = c
		}
	}
	return best, true
}

// merge inserts c into the frontier unless it breaches the scope or is
// dominated by an existing triple; triples c dominates are evicted.
func merge(fr []Counts, c Counts, sc scope.Spec) []Counts {
	if c.exceeds(sc) {
		return fr
	}
	for i := 0; i < len(fr); {
		if c.dominatedBy(fr[i]) {
			return fr
		}
		if fr[i].dominatedBy(c) {
			fr[i] = fr[len(fr)-1]
			fr = fr[:len(fr)-1]
			continue
		}
		i++
	}
	return append(fr, c)
}
