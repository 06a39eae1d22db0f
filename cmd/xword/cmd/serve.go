package cmd

import (
	"github.com/spf13/cobra"

	"github.com/crossplay/xwordsat/internal/api"
	"github.com/crossplay/xwordsat/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the crossword solver as an HTTP service",
	Long: `Serve boots the HTTP API exposing POST /api/solve and GET /health.
Configuration is read from the environment (PORT, SOLVER_BACKEND,
REDIS_URL, DATABASE_URL), with a .env file loaded first if present.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	return api.Run(cfg)
}
