// core/receptor/clonotype.go
package receptor

import "strings"

// Clonotype is one query receptor: a CDR3 amino-acid sequence plus V/J gene
// usage. An empty VSegment or JSegment means "do not constrain on this
// field"; the two are evaluated independently, so a single batch can mix
// fully specified and CDR3-only queries.
type Clonotype struct {
	CDR3     string
	VSegment string
	JSegment string

	// Repertoire bookkeeping carried through from sample tables; the
	// matcher ignores these.
	Count     int
	Frequency float64
	CDR3NT    string
	DSegment  string
	SampleID  string
}

// New uppercases the CDR3 so comparisons against the reference table are
// case-insensitive at load time rather than per candidate.
func New(cdr3, vSegment, jSegment string) Clonotype {
	return Clonotype{CDR3: strings.ToUpper(cdr3), VSegment: vSegment, JSegment: jSegment}
}

// NormalizeSegment strips the allele qualifier ("TRBV12-3*01" -> "TRBV12-3").
func NormalizeSegment(segment string) string {
	if i := strings.IndexByte(segment, '*'); i >= 0 {
		return segment[:i]
	}
	return segment
}

// VNormalized returns the V segment without its allele qualifier.
func (c Clonotype) VNormalized() string { return NormalizeSegment(c.VSegment) }

// JNormalized returns the J segment without its allele qualifier.
func (c Clonotype) JNormalized() string { return NormalizeSegment(c.JSegment) }
