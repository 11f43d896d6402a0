// internal/batch/chunked.go
package batch

import (
	"vdjmatch-core/match"
	"vdjmatch-core/receptor"
	"vdjmatch-core/vdjdb"
)

// MatchChunked splits a query list into sequential fixed-size calls, purely
// so callers can surface progress between chunks. It is result-transparent:
// query indices are offset per chunk, so the concatenated output equals one
// Match call over the whole list. progress may be nil.
func MatchChunked(store *vdjdb.Store, queries []receptor.Clonotype, cfg match.Config, workers, chunkSize int, progress func(done, total int)) ([]Result, error) {
	if chunkSize <= 0 || chunkSize >= len(queries) {
		out, err := MatchClonotypes(store, queries, cfg, workers)
		if err == nil && progress != nil {
			progress(len(queries), len(queries))
		}
		return out, err
	}

	var out []Result
	for start := 0; start < len(queries); start += chunkSize {
		end := start + chunkSize
		if end > len(queries) {
			end = len(queries)
		}
		chunk, err := MatchClonotypes(store, queries[start:end], cfg, workers)
		if err != nil {
			return nil, err
		}
		for i := range chunk {
			chunk[i].QueryIndex += start
		}
		out = append(out, chunk...)
		if progress != nil {
			progress(end, len(queries))
		}
	}
	return out, nil
}
