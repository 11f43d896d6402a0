// internal/cli/match.go
package cli

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"vdjmatch-core/match"
	"vdjmatch-core/receptor"
	"vdjmatch-core/scope"

	"vdjmatch/internal/batch"
	"vdjmatch/internal/samples"
	"vdjmatch/internal/writers"
)

// MatchCmd returns the match command: annotate query clonotypes against the
// reference table.
func MatchCmd() *cobra.Command {
	var (
		store storeFlags

		cdr3s     []string
		vSegments []string
		jSegments []string
		sample    string

		scopeExpr string
		topN      int
		threads   int
		chunkSize int

		vdjmatchScoring bool
		scoreThreshold  float64
		weightByInfo    bool

		format   string
		output   string
		noHeader bool
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match query clonotypes against the reference table",
		Long: `Match looks up each query CDR3 (optionally gated on exact V and J
segment identity) in the reference table, allowing mismatches within the
search scope, and reports every surviving database record ranked by edit
distance.

Queries come either from repeated --cdr3/--v-segment/--j-segment flags or
from a VDJtools sample table (--sample). Query indices in the output are
1-based.`,
		Example: `  vdjmatch match --cdr3 CASSLAPGATNEKLFF --scope 2,1,1,2
  vdjmatch match --sample sample.txt --species HomoSapiens --gene TRB -f jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := Logger(verbose)
			defer log.Sync() //nolint:errcheck

			sc, err := scope.Parse(scopeExpr)
			if err != nil {
				return err
			}

			queries, err := collectQueries(cdr3s, vSegments, jSegments, sample)
			if err != nil {
				return err
			}
			if len(queries) == 0 {
				return errors.New("no queries: pass --cdr3 or --sample")
			}

			db, err := loadStore(&store, log)
			if err != nil {
				return err
			}

			cfg := match.Config{
				Scope:                   sc,
				TopN:                    topN,
				VDJMatchScoring:         vdjmatchScoring,
				WeightByInformativeness: weightByInfo,
			}
			if cmd.Flags().Changed("score-threshold") {
				cfg.UseScoreThreshold = true
				cfg.ScoreThreshold = scoreThreshold
			}

			var hits []batch.Result
			if chunkSize > 0 {
				bar, _ := pterm.DefaultProgressbar.
					WithTotal(len(queries)).
					WithWriter(os.Stderr).
					WithTitle("matching").
					Start()
				done := 0
				hits, err = batch.MatchChunked(db, queries, cfg, threads, chunkSize,
					func(d, _ int) {
						bar.Add(d - done)
						done = d
					})
				bar.Stop() //nolint:errcheck
			} else {
				hits, err = batch.MatchClonotypes(db, queries, cfg, threads)
			}
			if err != nil {
				return err
			}
			log.Debugw("matching done", "queries", len(queries), "hits", len(hits))

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()

			if err := writers.WriteHits(format, out, hits, !noHeader); err != nil {
				if writers.IsBrokenPipe(err) {
					return nil
				}
				return err
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&store.database, "database", "d", "", "reference table path (TSV, optionally gzip); default: cached download")
	fl.StringVar(&store.dbDir, "db-dir", defaultDBDir(), "directory for cached database downloads")
	fl.BoolVar(&store.fat, "fat", false, "use the full-metadata database edition")
	fl.StringVar(&store.species, "species", "", "keep only records for this species (case-insensitive)")
	fl.StringVar(&store.gene, "gene", "", "keep only records for this gene, e.g. TRA or TRB")
	fl.IntVar(&store.minScore, "min-score", 0, "keep only records with at least this confidence score")
	fl.IntVar(&store.minEpitopeSize, "min-epitope-size", 0, "drop epitopes with fewer distinct CDR3s than this")
	fl.StringArrayVar(&store.exprs, "filter", nil, "extra column filter, __column__=='value' or __column__=~'regex' (repeatable)")

	fl.StringArrayVar(&cdr3s, "cdr3", nil, "query CDR3 amino acid sequence (repeatable)")
	fl.StringArrayVar(&vSegments, "v-segment", nil, "query V segment, parallel to --cdr3 (repeatable)")
	fl.StringArrayVar(&jSegments, "j-segment", nil, "query J segment, parallel to --cdr3 (repeatable)")
	fl.StringVar(&sample, "sample", "", "VDJtools sample table with query clonotypes")

	fl.StringVarP(&scopeExpr, "scope", "s", "0,0,0", "search scope: subs,indels,total or subs,ins,dels,total")
	fl.IntVarP(&topN, "top-n", "n", 0, "keep at most N best hits per query (0 = all)")
	fl.IntVarP(&threads, "threads", "t", 0, "worker goroutines (0 = all CPUs)")
	fl.IntVar(&chunkSize, "chunk-size", 0, "process queries in chunks of this size with a progress bar (0 = off)")

	fl.BoolVar(&vdjmatchScoring, "vdjmatch-scoring", false, "aggregate CDR3/V/J scores VDJmatch-style instead of CDR3-only")
	fl.Float64Var(&scoreThreshold, "score-threshold", 0, "drop hits scoring below this value")
	fl.BoolVar(&weightByInfo, "weights", false, "weight hits by epitope informativeness")

	fl.StringVarP(&format, "format", "f", "tsv", "output format: tsv, text, json, jsonl")
	fl.StringVarP(&output, "output", "o", "", "output file (default stdout)")
	fl.BoolVar(&noHeader, "no-header", false, "omit the header row in tabular output")
	fl.BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	return cmd
}

// collectQueries assembles the query list from flags or a sample file.
// Missing V/J columns mean "no constraint"; partially given ones must be
// parallel to --cdr3.
func collectQueries(cdr3s, vs, js []string, sample string) ([]receptor.Clonotype, error) {
	if sample != "" {
		if len(cdr3s) > 0 {
			return nil, errors.New("--sample and --cdr3 are mutually exclusive")
		}
		return samples.Load(sample)
	}
	if len(vs) == 0 {
		vs = make([]string, len(cdr3s))
	}
	if len(js) == 0 {
		js = make([]string, len(cdr3s))
	}
	if len(vs) != len(cdr3s) || len(js) != len(cdr3s) {
		return nil, errors.WithStack(batch.ErrLengthMismatch)
	}
	queries := make([]receptor.Clonotype, len(cdr3s))
	for i, c := range cdr3s {
		queries[i] = receptor.New(c, vs[i], js[i])
	}
	return queries, nil
}
