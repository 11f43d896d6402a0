// core/vdjdb/load.go
package vdjdb

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrSchema marks tables whose header row lacks a required column.
var ErrSchema = errors.New("missing required column")

// Canonical VDJdb column names. Fields are located by header name, never by
// position: curation editions have historically reordered columns, and a
// fixed-offset parser breaks on them.
const (
	colGene           = "gene"
	colCDR3           = "cdr3"
	colVSegment       = "v.segm"
	colJSegment       = "j.segm"
	colSpecies        = "species"
	colAntigenEpitope = "antigen.epitope"
	colAntigenGene    = "antigen.gene"
	colAntigenSpecies = "antigen.species"
	colMHCClass       = "mhc.class"
	colReferenceID    = "reference.id"
	colMethod         = "method"
	colMeta           = "meta"
	colCDR3Fix        = "cdr3fix"
	colScore          = "vdjdb.score"
)

var requiredColumns = []string{
	colGene, colCDR3, colVSegment, colJSegment, colSpecies, colAntigenEpitope,
}

// Open loads a reference table from path (TSV, optionally gzip-compressed).
func Open(path string) (*Store, error) {
	rc, err := OpenReader(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = rc.Close() }()
	st, err := Load(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return st, nil
}

// Load parses a header-delimited TSV table from r. Unknown columns are
// ignored; absent optional fields default to the empty string (score 0).
func Load(r io.Reader) (*Store, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(ErrSchema, "empty table")
		}
		return nil, err
	}

	// Schema resolution: one name->index lookup built per load.
	idx := make(map[string]int, len(header))
	columns := make([]string, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		columns[i] = name
		idx[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, errors.Wrapf(ErrSchema, "%s", name)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var entries []Entry
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		score, _ := strconv.Atoi(field(rec, colScore))
		entries = append(entries, Entry{
			Gene:           field(rec, colGene),
			CDR3:           field(rec, colCDR3),
			VSegment:       field(rec, colVSegment),
			JSegment:       field(rec, colJSegment),
			Species:        field(rec, colSpecies),
			AntigenEpitope: field(rec, colAntigenEpitope),
			AntigenGene:    field(rec, colAntigenGene),
			AntigenSpecies: field(rec, colAntigenSpecies),
			MHCClass:       field(rec, colMHCClass),
			ReferenceID:    field(rec, colReferenceID),
			Method:         field(rec, colMethod),
			Meta:           field(rec, colMeta),
			CDR3Fix:        field(rec, colCDR3Fix),
			Score:          score,
		})
	}
	return &Store{Entries: entries, columns: columns}, nil
}
