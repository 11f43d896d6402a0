// pkg/api/hits_v1.go
package api

// HitV1 is the stable JSON/JSONL schema for match hits.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type HitV1 struct {
	QueryIndex int    `json:"query_index"` // 1-based
	QueryCDR3  string `json:"query_cdr3"`
	QueryV     string `json:"query_v,omitempty"`
	QueryJ     string `json:"query_j,omitempty"`

	CDR3           string `json:"cdr3_db"`
	VSegment       string `json:"v_db"`
	JSegment       string `json:"j_db"`
	Gene           string `json:"gene"`
	Species        string `json:"species"`
	AntigenEpitope string `json:"antigen_epitope"`
	AntigenGene    string `json:"antigen_gene,omitempty"`
	AntigenSpecies string `json:"antigen_species,omitempty"`
	MHCClass       string `json:"mhc_class,omitempty"`
	ReferenceID    string `json:"reference_id,omitempty"`
	VDJdbScore     int    `json:"vdjdb_score"`

	Substitutions int `json:"substitutions"`
	Insertions    int `json:"insertions"`
	Deletions     int `json:"deletions"`
	EditDistance  int `json:"edit_distance"`

	Score     float64 `json:"score"`
	CDR3Score float64 `json:"cdr3_score"`
	VScore    float64 `json:"v_score"`
	JScore    float64 `json:"j_score"`
	Weight    float64 `json:"weight,omitempty"`
}
