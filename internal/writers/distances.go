// internal/writers/distances.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"

	"vdjmatch/pkg/api"
)

func writeDistancesTSV(w io.Writer, cells []api.PairDistanceV1, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		if _, err := bw.WriteString("i\tj\tdistance\n"); err != nil {
			return err
		}
	}
	for _, c := range cells {
		if _, err := bw.WriteString(strconv.Itoa(c.I)); err != nil {
			return err
		}
		if err := bw.WriteByte('\t'); err != nil {
			return err
		}
		if _, err := bw.WriteString(strconv.Itoa(c.J)); err != nil {
			return err
		}
		if err := bw.WriteByte('\t'); err != nil {
			return err
		}
		if _, err := bw.WriteString(strconv.FormatFloat(c.Distance, 'g', -1, 64)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeDistancesJSON(w io.Writer, cells []api.PairDistanceV1, _ bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cells)
}

func writeDistancesJSONL(w io.Writer, cells []api.PairDistanceV1, _ bool) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, c := range cells {
		if err := enc.Encode(c); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func init() {
	RegisterDistances("tsv", writeDistancesTSV)
	RegisterDistances("text", writeDistancesTSV)
	RegisterDistances("json", writeDistancesJSON)
	RegisterDistances("jsonl", writeDistancesJSONL)
}
