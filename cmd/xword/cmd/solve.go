package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/crossplay/xwordsat/internal/backend"
	"github.com/crossplay/xwordsat/internal/cache"
	"github.com/crossplay/xwordsat/internal/config"
	"github.com/crossplay/xwordsat/pkg/crossword"
	"github.com/crossplay/xwordsat/pkg/output"
	"github.com/crossplay/xwordsat/pkg/wordlist"
)

var (
	solveWordlist string
	solveBackend  string
	solveCount    int
	solveFormat   string
)

var solveCmd = &cobra.Command{
	Use:   "solve <grid-file>",
	Short: "Solve a crossword grid against a word list",
	Long: `Solve reads a grid from <grid-file> (one row per line, '.' for an
empty cell, '#' for a block, and any other letter as a prefilled cell),
encodes it as a boolean satisfiability problem, and prints up to
--count distinct solutions.

Examples:
  # Find a single filling of a grid using the default backend
  xword solve grid.txt --words broda.txt

  # Enumerate 5 distinct fillings as JSON
  xword solve grid.txt --words broda.txt --count 5 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveWordlist, "words", "w", "", "path to wordlist file (Peter Broda format)")
	solveCmd.Flags().StringVarP(&solveBackend, "backend", "b", "gophersat", "SAT solver backend")
	solveCmd.Flags().IntVarP(&solveCount, "count", "n", 1, "number of distinct solutions to find")
	solveCmd.Flags().StringVarP(&solveFormat, "format", "f", "text", "output format (text, json)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	gridPath := args[0]

	builder, err := backend.New(solveBackend)
	if err != nil {
		return err
	}

	gridBytes, err := os.ReadFile(gridPath)
	if err != nil {
		return fmt.Errorf("reading grid file: %w", err)
	}

	var words []string
	if solveWordlist != "" {
		if verbosity > 0 {
			fmt.Fprintf(os.Stderr, "loading wordlist from %s\n", solveWordlist)
		}
		wl, err := wordlist.LoadBroda(solveWordlist)
		if err != nil {
			return fmt.Errorf("loading wordlist: %w", err)
		}
		words = wl.Words()
		if verbosity > 0 {
			fmt.Fprintf(os.Stderr, "loaded %d words\n", wl.Size())
		}
	}

	pattern := string(gridBytes)

	var solveCache *cache.SQLite
	cfg := config.Load()
	if c, err := cache.OpenSQLite(cfg.SQLitePath); err != nil {
		log.Printf("sqlite cache unavailable, running without memoization: %v", err)
	} else {
		solveCache = c
		defer solveCache.Close()
	}

	key := cache.Key(pattern, words, solveCount)
	if solveCache != nil {
		if cached, ok := solveCache.Get(key); ok {
			return printSolutions(pattern, cached, solveFormat)
		}
	}

	cw, err := crossword.New(pattern, words)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	solutions, err := cw.SolveWith(builder)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	decoded := make([]string, 0, solveCount)
	for i := 0; i < solveCount; i++ {
		solution, ok := solutions.Next()
		if !ok {
			break
		}
		decoded = append(decoded, solution)
	}

	if solveCache != nil {
		if err := solveCache.Set(key, decoded); err != nil {
			log.Printf("failed to cache solve result: %v", err)
		}
	}

	return printSolutions(pattern, decoded, solveFormat)
}

func printSolutions(pattern string, decoded []string, format string) error {
	switch format {
	case "json":
		data, err := output.ToJSON(pattern, decoded)
		if err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
		fmt.Println(string(data))
	case "text":
		if len(decoded) == 0 {
			fmt.Println("no solution found")
			return nil
		}
		for i, solution := range decoded {
			fmt.Printf("solution %d:\n%s\n", i+1, solution)
			if i < len(decoded)-1 {
				fmt.Println()
			}
		}
	default:
		return fmt.Errorf("invalid format: %s (must be text or json)", format)
	}
	return nil
}
