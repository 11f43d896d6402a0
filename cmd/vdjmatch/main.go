// cmd/vdjmatch/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vdjmatch/internal/cli"
)

// version is stamped by the release build (-ldflags "-X main.version=...").
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "vdjmatch",
		Short:   "vdjmatch - immune receptor matching against VDJdb",
		Version: version,
		Long: `vdjmatch annotates T-cell receptor clonotypes against the VDJdb
reference table using scope-bounded fuzzy CDR3 matching, and computes
BLOSUM62-weighted tcrdist distances between paired-chain receptors.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.MatchCmd())
	rootCmd.AddCommand(cli.DistCmd())
	rootCmd.AddCommand(cli.DBCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
