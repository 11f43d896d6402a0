// internal/batch/batch.go
package batch

import (
	"runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"vdjmatch-core/match"
	"vdjmatch-core/receptor"
	"vdjmatch-core/vdjdb"
)

// ErrLengthMismatch marks batch calls whose parallel query columns disagree
// on length. Validation happens before any work is dispatched.
var ErrLengthMismatch = errors.New("cdr3, v_segment and j_segment must have equal length")

// Result is one hit tagged with its originating query. QueryIndex is
// 1-based.
type Result struct {
	QueryIndex int
	Query      receptor.Clonotype
	match.Hit
}

// Match runs the matcher over many queries concurrently. Queries are
// mutually independent: each worker reads the immutable store and writes
// into its query's pre-assigned output slot, so final output order is
// determined by query index, never by completion order. workers <= 0 uses
// all CPUs.
func Match(store *vdjdb.Store, cdr3, vSegment, jSegment []string, cfg match.Config, workers int) ([]Result, error) {
	if len(vSegment) != len(cdr3) || len(jSegment) != len(cdr3) {
		return nil, errors.WithStack(ErrLengthMismatch)
	}
	queries := make([]receptor.Clonotype, len(cdr3))
	for i := range cdr3 {
		queries[i] = receptor.New(cdr3[i], vSegment[i], jSegment[i])
	}
	return MatchClonotypes(store, queries, cfg, workers)
}

// MatchClonotypes is Match for callers that already hold clonotypes (e.g.
// loaded from a sample table).
func MatchClonotypes(store *vdjdb.Store, queries []receptor.Clonotype, cfg match.Config, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	perQuery := make([][]match.Hit, len(queries))
	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i := range queries {
		i := i
		g.Go(func() error {
			perQuery[i] = match.One(store, queries[i], cfg)
			return nil
		})
	}
	// Matching is pure, but a worker failure must surface as the call's
	// failure rather than be dropped.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return flatten(queries, perQuery, 0), nil
}

func flatten(queries []receptor.Clonotype, perQuery [][]match.Hit, offset int) []Result {
	total := 0
	for _, hs := range perQuery {
		total += len(hs)
	}
	out := make([]Result, 0, total)
	for i, hs := range perQuery {
		for _, h := range hs {
			out = append(out, Result{QueryIndex: offset + i + 1, Query: queries[i], Hit: h})
		}
	}
	return out
}
