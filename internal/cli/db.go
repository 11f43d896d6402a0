// internal/cli/db.go
package cli

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"vdjmatch-core/vdjdb"

	"vdjmatch/internal/fetch"
)

// DBCmd returns the db command group: fetch, update and inspect the cached
// reference table.
func DBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the local VDJdb reference table",
	}
	cmd.AddCommand(dbFetchCmd(), dbUpdateCmd(), dbInfoCmd())
	return cmd
}

func dbFetchCmd() *cobra.Command {
	var (
		dir     string
		fat     bool
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the reference table if not already cached",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := Logger(verbose)
			defer log.Sync() //nolint:errcheck

			m := fetch.New(dir, fetch.WithLogger(log))
			path, err := m.Ensure(fat)
			if err != nil {
				return err
			}
			pterm.Success.Printfln("reference table ready: %s", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", defaultDBDir(), "cache directory")
	cmd.Flags().BoolVar(&fat, "fat", false, "download the full-metadata edition")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	return cmd
}

func dbUpdateCmd() *cobra.Command {
	var (
		dir     string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Re-download both editions of the reference table",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := Logger(verbose)
			defer log.Sync() //nolint:errcheck

			m := fetch.New(dir, fetch.WithLogger(log))
			if err := m.Update(); err != nil {
				return err
			}
			pterm.Success.Println("reference tables updated")
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", defaultDBDir(), "cache directory")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	return cmd
}

func dbInfoCmd() *cobra.Command {
	var (
		species string
		gene    string
	)
	cmd := &cobra.Command{
		Use:   "info <table.tsv>",
		Short: "Summarize a reference table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := vdjdb.Open(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "records\t%d\n", store.Len())
			fmt.Fprintf(out, "columns\t%s\n", strings.Join(store.Columns(), ","))

			if species != "" || gene != "" {
				sub := store.Filter(species, gene, 0)
				fmt.Fprintf(out, "selected\t%d\n", sub.Len())
			}

			epitopes := map[string]int{}
			for i := range store.Entries {
				epitopes[store.Entries[i].AntigenEpitope]++
			}
			fmt.Fprintf(out, "epitopes\t%d\n", len(epitopes))
			return nil
		},
	}
	cmd.Flags().StringVar(&species, "species", "", "count records for this species only")
	cmd.Flags().StringVar(&gene, "gene", "", "count records for this gene only")
	return cmd
}
