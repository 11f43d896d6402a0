// internal/cli/common.go
package cli

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"vdjmatch-core/vdjdb"

	"vdjmatch/internal/fetch"
	"vdjmatch/internal/filters"
)

// storeFlags are the reference-table options shared by commands that load
// the database.
type storeFlags struct {
	database string // explicit path; empty means fetch/cache
	dbDir    string
	fat      bool

	species        string
	gene           string
	minScore       int
	minEpitopeSize int
	exprs          []string
}

func defaultDBDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return dir + "/vdjmatch"
	}
	return ".vdjmatch"
}

// loadStore resolves the database path (downloading on first use when none
// is given), loads it, and applies every requested filter in order.
func loadStore(f *storeFlags, log *zap.SugaredLogger) (*vdjdb.Store, error) {
	path := f.database
	if path == "" {
		m := fetch.New(f.dbDir, fetch.WithLogger(log))
		p, err := m.Ensure(f.fat)
		if err != nil {
			return nil, err
		}
		path = p
	}

	log.Debugw("loading reference table", "path", path)
	store, err := vdjdb.Open(path)
	if err != nil {
		return nil, err
	}
	log.Debugw("loaded reference table", "rows", store.Len())

	if f.species != "" || f.gene != "" || f.minScore > 0 {
		store = store.Filter(f.species, f.gene, f.minScore)
	}
	if len(f.exprs) > 0 {
		fs := make([]filters.Filter, len(f.exprs))
		for i, expr := range f.exprs {
			flt, err := filters.Parse(expr)
			if err != nil {
				return nil, err
			}
			fs[i] = flt
		}
		store = filters.Apply(store, fs...)
	}
	if f.minEpitopeSize > 0 {
		store = store.FilterByEpitopeSize(f.minEpitopeSize)
	}
	log.Debugw("filtered reference table", "rows", store.Len())

	if store.Len() == 0 {
		log.Warnw("reference table is empty after filtering")
	}
	return store, nil
}

// openOutput returns stdout for "" or "-", else creates the file.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	w, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create output %q", path)
	}
	return w, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
