// core/match/weight.go
package match

import (
	"math"

	"vdjmatch-core/vdjdb"
)

// weight assigns each hit an informativeness weight: -log10 of the
// add-one-smoothed probability of landing on its epitope by picking a store
// row at random. Hits on rare epitopes weigh more.
func weight(hits []Hit, store *vdjdb.Store) {
	epitopeRows := make(map[string]int)
	for i := range store.Entries {
		epitopeRows[store.Entries[i].AntigenEpitope]++
	}
	total := float64(store.Len())
	for i := range hits {
		count := epitopeRows[hits[i].Entry.AntigenEpitope]
		if count == 0 {
			count = 1
		}
		prob := (float64(count) + 1) / (total + 1)
		hits[i].Weight = -math.Log10(prob)
	}
}
