// internal/filters/filters.go
package filters

import (
	"regexp"

	"github.com/cockroachdb/errors"

	"vdjmatch-core/vdjdb"
)

// ErrExpression marks filter expressions that do not parse.
var ErrExpression = errors.New("invalid filter expression")

// Filter decides whether a reference entry passes a column predicate.
type Filter interface {
	Matches(e *vdjdb.Entry) bool
}

// column returns the addressed field of an entry; the second return is
// false for column names no text filter supports.
func column(e *vdjdb.Entry, name string) (string, bool) {
	switch name {
	case "species":
		return e.Species, true
	case "gene":
		return e.Gene, true
	case "mhc.class":
		return e.MHCClass, true
	case "antigen.epitope":
		return e.AntigenEpitope, true
	case "antigen.gene":
		return e.AntigenGene, true
	case "antigen.species":
		return e.AntigenSpecies, true
	case "reference.id":
		return e.ReferenceID, true
	}
	return "", false
}

// Exact passes entries whose column equals Value.
type Exact struct {
	Column string
	Value  string
}

func (f Exact) Matches(e *vdjdb.Entry) bool {
	v, ok := column(e, f.Column)
	return ok && v == f.Value
}

// Regex passes entries whose column matches Pattern.
type Regex struct {
	Column  string
	Pattern *regexp.Regexp
}

func (f Regex) Matches(e *vdjdb.Entry) bool {
	v, ok := column(e, f.Column)
	return ok && f.Pattern.MatchString(v)
}

var (
	exactExpr = regexp.MustCompile(`^__([^_]+)__=='([^']*)'$`)
	regexExpr = regexp.MustCompile(`^__([^_]+)__=~'([^']*)'$`)
)

// Parse reads one filter expression: __column__=='value' for exact
// equality or __column__=~'pattern' for a regex match.
func Parse(expr string) (Filter, error) {
	if m := regexExpr.FindStringSubmatch(expr); m != nil {
		re, err := regexp.Compile(m[2])
		if err != nil {
			return nil, errors.Wrapf(ErrExpression, "%q: bad pattern", expr)
		}
		return Regex{Column: m[1], Pattern: re}, nil
	}
	if m := exactExpr.FindStringSubmatch(expr); m != nil {
		return Exact{Column: m[1], Value: m[2]}, nil
	}
	return nil, errors.Wrapf(ErrExpression, "%q", expr)
}

// Apply derives a store keeping rows that pass every filter. Row order is
// preserved.
func Apply(s *vdjdb.Store, fs ...Filter) *vdjdb.Store {
	return s.Where(func(e *vdjdb.Entry) bool {
		for _, f := range fs {
			if !f.Matches(e) {
				return false
			}
		}
		return true
	})
}
