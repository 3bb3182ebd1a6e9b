// panelpop is a terminal panel puzzle: a seeded grid of panels and a cursor
// that moves one panel per press.
//
// Usage:
//
//	panelpop list              - List available modes
//	panelpop play [mode]       - Play a mode (default: panels)
//	panelpop menu              - Pick a mode interactively
//	panelpop grid              - Print or serve a seeded grid
//	panelpop history           - Show recorded sessions
//	panelpop serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for a reproducible grid
//	--db <path>          - Set database path (default: ~/.panelpop/history.db)
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/panelpop/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/panelpop/internal/games/panels"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "panelpop",
	Short: "Panelpop - a panel puzzle for your terminal",
	Long: `Panelpop fills a board with random panels and hands you a cursor
that moves one panel per key press.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  grid     - Print a seeded grid or serve it over HTTP
  history  - View recorded sessions
  serve    - Start SSH server for remote play

Examples:
  panelpop play
  panelpop play panels_gated --seed 42
  panelpop grid --seed 42 --format yaml
  panelpop serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if err := validateFPS(flagFPS); err != nil {
			return err
		}
		var err error
		logger, err = newLogger(flagLogLevel)
		return err
	},
}

var errBadFPS = errors.New("must be a positive number of ticks per second")

// validateFPS rejects tick rates the tick loop cannot run at.
func validateFPS(fps int) error {
	if fps <= 0 {
		return fmt.Errorf("invalid --fps %d: %w", fps, errBadFPS)
	}
	return nil
}

// newLogger builds the CLI logger at the given level.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "panelpop",
		Level:           lvl,
	})
	log.SetDefault(l)
	return l, nil
}

// openStore opens the history database, logging instead of failing so
// play works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.panelpop/history.db", "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
