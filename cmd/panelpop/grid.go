package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/panelpop/internal/export"
	"github.com/vovakirdan/panelpop/internal/platform/web"
)

var (
	flagFormat   string
	flagHTTPAddr string
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print a seeded grid or serve grids over HTTP",
	Long: `Generate the starting grid for a seed and print it with sprite
indices and pixel positions, or serve grids over HTTP.

HTTP endpoints:
  GET /grid?seed=N   - Grid for seed N as JSON (random seed if omitted)
  GET /grid/{seed}   - Same, seed in the path
  GET /healthz       - Health check

Examples:
  panelpop grid --seed 42
  panelpop grid --seed 42 --format json
  panelpop grid --http :8080`,
	RunE: runGrid,
}

func init() {
	gridCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, yaml, json")
	gridCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Serve grids over HTTP on this address instead of printing")
}

func runGrid(_ *cobra.Command, _ []string) error {
	cfg, err := applyConfig()
	if err != nil {
		return err
	}

	if flagHTTPAddr != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return web.ListenAndServe(ctx, flagHTTPAddr, web.NewHandler(cfg, logger))
	}

	format, err := export.ParseFormat(flagFormat)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return export.Write(os.Stdout, export.Build(seed, cfg), format)
}
