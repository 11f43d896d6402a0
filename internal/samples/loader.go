// internal/samples/loader.go
package samples

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"

	"vdjmatch-core/receptor"
	"vdjmatch-core/vdjdb"
)

// VDJtools clonotype tables are positional:
// count freq cdr3nt cdr3aa v d j [...]
const (
	colCount = iota
	colFreq
	colCDR3NT
	colCDR3AA
	colV
	colD
	colJ
)

// ErrFormat marks sample files without a parseable header row.
var ErrFormat = errors.New("invalid sample table")

// Load reads clonotypes from a VDJtools-format table at path (TSV,
// optionally gzip-compressed). Rows missing a CDR3 amino-acid sequence or
// either segment are skipped rather than failing the load; repertoire
// exports routinely carry incomplete rows.
func Load(path string) ([]receptor.Clonotype, error) {
	rc, err := vdjdb.OpenReader(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = rc.Close() }()
	cs, err := Read(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return cs, nil
}

// Read parses a VDJtools-format table from r, skipping the header row.
func Read(r io.Reader) ([]receptor.Clonotype, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(ErrFormat, "empty table")
		}
		return nil, err
	}

	field := func(rec []string, i int) string {
		if i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var out []receptor.Clonotype
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < colV+1 {
			continue
		}
		cdr3aa := field(rec, colCDR3AA)
		vSeg := field(rec, colV)
		jSeg := field(rec, colJ)
		if cdr3aa == "" || vSeg == "" || jSeg == "" {
			continue
		}
		c := receptor.New(cdr3aa, vSeg, jSeg)
		c.Count, _ = strconv.Atoi(field(rec, colCount))
		c.Frequency, _ = strconv.ParseFloat(field(rec, colFreq), 64)
		c.CDR3NT = field(rec, colCDR3NT)
		c.DSegment = field(rec, colD)
		out = append(out, c)
	}
	return out, nil
}
