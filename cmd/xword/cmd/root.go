package cmd

import (
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var verbosity int

var rootCmd = &cobra.Command{
	Use:   "xword",
	Short: "Crossword grid SAT solver CLI",
	Long: `xword encodes a crossword grid and a word list as a boolean
satisfiability problem and solves it with a pluggable SAT backend.

It can enumerate distinct fillings of a grid, honor prefilled cells as
constraints, and serve the same solver over HTTP.`,
	Version: version,
}

// Execute adds all child commands to the root command and runs it. It
// is called by main.main() once.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "verbosity level (0=errors only, 1=info)")
}
