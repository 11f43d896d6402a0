// core/tcrdist/pairwise.go
package tcrdist

import (
	"runtime"
	"sync"
)

// PairDistance is one cell of the dense pairwise matrix.
type PairDistance struct {
	I        int
	J        int
	Distance float64
}

// Pairwise computes all n*n distances, self-pairs included, in row-major
// order. Rows are independent and computed in parallel: every worker reads
// the shared immutable TCR slice and writes to disjoint output slots, so no
// locking is needed. workers <= 0 uses all CPUs.
func Pairwise(tcrs []TCR, workers int) []PairDistance {
	n := len(tcrs)
	out := make([]PairDistance, n*n)
	if n == 0 {
		return out
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	rows := make(chan int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range rows {
				row := out[i*n : (i+1)*n]
				for j := 0; j < n; j++ {
					row[j] = PairDistance{I: i, J: j, Distance: float64(Distance(tcrs[i], tcrs[j]))}
				}
			}
		}()
	}
	for i := 0; i < n; i++ {
		rows <- i
	}
	close(rows)
	wg.Wait()
	return out
}

// Single computes one pair without materializing a matrix. The result is
// bit-identical to the corresponding Pairwise cell over a population
// containing both receptors; both paths go through Distance.
func Single(a, b TCR) float64 {
	return float64(Distance(a, b))
}
