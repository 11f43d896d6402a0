// internal/cli/dist.go
package cli

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"vdjmatch-core/tcrdist"
	"vdjmatch-core/vdjdb"

	"vdjmatch/internal/writers"
	"vdjmatch/pkg/api"
)

// tcrColumns are the recognized headers of a paired-chain CDR table. Any
// column may be absent; a missing region contributes nothing to the
// distance.
var tcrColumns = []string{
	"cdr1.alpha", "cdr2.alpha", "cdr3.alpha",
	"cdr1.beta", "cdr2.beta", "cdr3.beta",
}

// DistCmd returns the dist command: BLOSUM62-weighted tcrdist over a table
// of paired-chain receptors.
func DistCmd() *cobra.Command {
	var (
		pair    []int
		threads int
		format  string
		output  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "dist <table.tsv>",
		Short: "Compute pairwise tcrdist distances for paired-chain receptors",
		Long: `Dist reads a tab-separated table with columns cdr1.alpha, cdr2.alpha,
cdr3.alpha, cdr1.beta, cdr2.beta and cdr3.beta (any may be omitted) and
emits the full n-by-n distance matrix in long form. Row indices are
0-based and follow input order.

With --pair i,j only that single cell is computed and printed.`,
		Example: `  vdjmatch dist receptors.tsv -t 8 -f jsonl
  vdjmatch dist receptors.tsv --pair 0,3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := Logger(verbose)
			defer log.Sync() //nolint:errcheck

			r, err := vdjdb.OpenReader(args[0])
			if err != nil {
				return err
			}
			tcrs, err := readTCRTable(r)
			r.Close() //nolint:errcheck
			if err != nil {
				return err
			}
			log.Debugw("loaded receptor table", "rows", len(tcrs))

			if len(pair) > 0 {
				if len(pair) != 2 {
					return errors.New("--pair wants exactly two row indices")
				}
				i, j := pair[0], pair[1]
				if i < 0 || i >= len(tcrs) || j < 0 || j >= len(tcrs) {
					return errors.Newf("--pair indices out of range [0,%d)", len(tcrs))
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), tcrdist.Single(tcrs[i], tcrs[j]))
				return err
			}

			cells := tcrdist.Pairwise(tcrs, threads)
			out := make([]api.PairDistanceV1, len(cells))
			for i, c := range cells {
				out[i] = api.PairDistanceV1{I: c.I, J: c.J, Distance: c.Distance}
			}

			w, err := openOutput(output)
			if err != nil {
				return err
			}
			defer w.Close()

			if err := writers.WriteDistances(format, w, out, true); err != nil {
				if writers.IsBrokenPipe(err) {
					return nil
				}
				return err
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntSliceVar(&pair, "pair", nil, "compute one cell only: two 0-based row indices i,j")
	fl.IntVarP(&threads, "threads", "t", 0, "worker goroutines (0 = all CPUs)")
	fl.StringVarP(&format, "format", "f", "tsv", "output format: tsv, json, jsonl")
	fl.StringVarP(&output, "output", "o", "", "output file (default stdout)")
	fl.BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	return cmd
}

// readTCRTable parses a tab-separated CDR table into receptors. Header names
// are matched against tcrColumns; unknown columns are ignored and absent
// ones read as empty.
func readTCRTable(r io.Reader) ([]tcrdist.TCR, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	known := false
	for _, c := range tcrColumns {
		if _, ok := idx[c]; ok {
			known = true
			break
		}
	}
	if !known {
		return nil, errors.Newf("no recognized CDR columns in header (want any of %v)", tcrColumns)
	}

	field := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var tcrs []tcrdist.TCR
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read row")
		}
		tcrs = append(tcrs, tcrdist.TCR{
			CDR1A: field(row, "cdr1.alpha"),
			CDR2A: field(row, "cdr2.alpha"),
			CDR3A: field(row, "cdr3.alpha"),
			CDR1B: field(row, "cdr1.beta"),
			CDR2B: field(row, "cdr2.beta"),
			CDR3B: field(row, "cdr3.beta"),
		})
	}
	return tcrs, nil
}
