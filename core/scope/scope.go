// core/scope/scope.go
package scope

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrSyntax marks malformed search-scope strings (wrong arity, non-numeric
// or negative tokens).
var ErrSyntax = errors.New("invalid search scope")

// Spec is the fuzzy-matching tolerance budget for CDR3 comparison. Each
// field is an independent ceiling; Total additionally bounds the sum of
// realized edits.
type Spec struct {
	Substitutions int
	Insertions    int
	Deletions     int
	Total         int
}

// Exact allows no edits at all ("0,0,0,0").
var Exact = Spec{}

// Parse accepts "S,I,D,T" or the "S,ID,T" alias, where ID is a shared
// budget applied to both insertions and deletions. The four-field form is
// canonical.
func Parse(s string) (Spec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Spec{}, errors.Wrapf(ErrSyntax, "%q: want 3 or 4 comma-separated fields, got %d", s, len(parts))
	}
	vals := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Spec{}, errors.Wrapf(ErrSyntax, "%q: field %d is not an integer", s, i+1)
		}
		if n < 0 {
			return Spec{}, errors.Wrapf(ErrSyntax, "%q: field %d is negative", s, i+1)
		}
		vals[i] = n
	}
	if len(vals) == 3 {
		return Spec{Substitutions: vals[0], Insertions: vals[1], Deletions: vals[1], Total: vals[2]}, nil
	}
	return Spec{Substitutions: vals[0], Insertions: vals[1], Deletions: vals[2], Total: vals[3]}, nil
}

// IsExact reports whether the scope admits no edits: either the total budget
// is zero, or every per-type budget is.
func (s Spec) IsExact() bool {
	if s.Total == 0 {
		return true
	}
	return s.Substitutions == 0 && s.Insertions == 0 && s.Deletions == 0
}

func (s Spec) String() string {
	return strconv.Itoa(s.Substitutions) + "," + strconv.Itoa(s.Insertions) + "," +
		strconv.Itoa(s.Deletions) + "," + strconv.Itoa(s.Total)
}
