// internal/writers/hits.go
package writers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"vdjmatch/internal/batch"
	"vdjmatch/pkg/api"
)

// HitV1 converts one batch result to the stable wire schema.
func HitV1(r batch.Result) api.HitV1 {
	e := r.Entry
	return api.HitV1{
		QueryIndex: r.QueryIndex,
		QueryCDR3:  r.Query.CDR3,
		QueryV:     r.Query.VSegment,
		QueryJ:     r.Query.JSegment,

		CDR3:           e.CDR3,
		VSegment:       e.VSegment,
		JSegment:       e.JSegment,
		Gene:           e.Gene,
		Species:        e.Species,
		AntigenEpitope: e.AntigenEpitope,
		AntigenGene:    e.AntigenGene,
		AntigenSpecies: e.AntigenSpecies,
		MHCClass:       e.MHCClass,
		ReferenceID:    e.ReferenceID,
		VDJdbScore:     e.Score,

		Substitutions: r.Substitutions,
		Insertions:    r.Insertions,
		Deletions:     r.Deletions,
		EditDistance:  r.Distance,

		Score:     r.Score,
		CDR3Score: r.CDR3Score,
		VScore:    r.VScore,
		JScore:    r.JScore,
		Weight:    r.Weight,
	}
}

var hitColumns = []string{
	"query_index", "query_cdr3", "query_v", "query_j",
	"cdr3_db", "v_db", "j_db", "gene", "species",
	"antigen_epitope", "antigen_gene", "antigen_species", "mhc_class",
	"reference_id", "vdjdb_score",
	"substitutions", "insertions", "deletions", "edit_distance", "score",
}

func writeHitsTSV(w io.Writer, hits []batch.Result, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		for i, c := range hitColumns {
			if i > 0 {
				if err := bw.WriteByte('\t'); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(c); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	for _, r := range hits {
		h := HitV1(r)
		row := []string{
			strconv.Itoa(h.QueryIndex), h.QueryCDR3, h.QueryV, h.QueryJ,
			h.CDR3, h.VSegment, h.JSegment, h.Gene, h.Species,
			h.AntigenEpitope, h.AntigenGene, h.AntigenSpecies, h.MHCClass,
			h.ReferenceID, strconv.Itoa(h.VDJdbScore),
			strconv.Itoa(h.Substitutions), strconv.Itoa(h.Insertions),
			strconv.Itoa(h.Deletions), strconv.Itoa(h.EditDistance),
			strconv.FormatFloat(h.Score, 'g', -1, 64),
		}
		for i, f := range row {
			if i > 0 {
				if err := bw.WriteByte('\t'); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(f); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeHitsJSON(w io.Writer, hits []batch.Result, _ bool) error {
	out := make([]api.HitV1, len(hits))
	for i, r := range hits {
		out[i] = HitV1(r)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeHitsJSONL(w io.Writer, hits []batch.Result, _ bool) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, r := range hits {
		if err := enc.Encode(HitV1(r)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writeHitsText is the human-oriented default: TSV plus a trailing summary
// line on stderr-less streams is avoided; the summary lives in the CLI.
func writeHitsText(w io.Writer, hits []batch.Result, header bool) error {
	if err := writeHitsTSV(w, hits, header); err != nil {
		return err
	}
	if len(hits) == 0 {
		_, err := fmt.Fprintln(w, "# no hits")
		return err
	}
	return nil
}

func init() {
	RegisterHits("tsv", writeHitsTSV)
	RegisterHits("text", writeHitsText)
	RegisterHits("json", writeHitsJSON)
	RegisterHits("jsonl", writeHitsJSONL)
}
