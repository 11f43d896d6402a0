// internal/writers/registry.go
package writers

import (
	"io"

	"github.com/cockroachdb/errors"

	"vdjmatch/internal/batch"
	"vdjmatch/pkg/api"
)

// Writer registries (format -> handler). Formats register in init() blocks
// from the hit/distance writer files.
var (
	HitWriters      = map[string]func(w io.Writer, hits []batch.Result, header bool) error{}
	DistanceWriters = map[string]func(w io.Writer, cells []api.PairDistanceV1, header bool) error{}
)

// RegisterHits installs a hit writer (idempotent, last wins).
func RegisterHits(format string, fn func(io.Writer, []batch.Result, bool) error) {
	HitWriters[format] = fn
}

// RegisterDistances installs a distance writer.
func RegisterDistances(format string, fn func(io.Writer, []api.PairDistanceV1, bool) error) {
	DistanceWriters[format] = fn
}

// WriteHits dispatches to the registered writer for format.
func WriteHits(format string, w io.Writer, hits []batch.Result, header bool) error {
	fn, ok := HitWriters[format]
	if !ok {
		return errors.Newf("unknown hit format %q (no writer registered)", format)
	}
	return fn(w, hits, header)
}

// WriteDistances dispatches to the registered writer for format.
func WriteDistances(format string, w io.Writer, cells []api.PairDistanceV1, header bool) error {
	fn, ok := DistanceWriters[format]
	if !ok {
		return errors.Newf("unknown distance format %q (no writer registered)", format)
	}
	return fn(w, cells, header)
}
