// pkg/api/distances_v1.go
package api

// PairDistanceV1 is the stable schema for one pairwise tcrdist cell.
type PairDistanceV1 struct {
	I        int     `json:"i"`
	J        int     `json:"j"`
	Distance float64 `json:"distance"`
}
