package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/panelpop/internal/platform/tui"
	"github.com/vovakirdan/panelpop/internal/registry"
	"github.com/vovakirdan/panelpop/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryPlain bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [mode]",
	Short: "Show recorded play sessions",
	Long: `Display recorded sessions, newest first.

In a terminal this opens an interactive table; with --plain (or when
output is not a terminal) it prints a list.

Examples:
  panelpop history
  panelpop history panels_gated --plain
  panelpop history panels --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to print in plain mode")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a plain list instead of the table view")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the recorded sessions of the given mode")
}

func runHistory(_ *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown mode %q (run 'panelpop list' to see available modes)", gameID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagHistoryClear {
		if gameID == "" {
			return fmt.Errorf("--clear needs a mode")
		}
		if err := store.ClearSessions(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared sessions for %s.\n", gameID)
		return nil
	}

	if !flagHistoryPlain && gameID == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		cfg := runtimeConfig()
		_, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	return printHistory(store, gameID)
}

// printHistory prints sessions as a plain table.
func printHistory(store *storage.Store, gameID string) error {
	var (
		sessions []storage.Session
		err      error
	)
	if gameID == "" {
		sessions, err = store.RecentSessions(flagHistoryLimit)
	} else {
		sessions, err = store.SessionsForGame(gameID, flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'panelpop play' to record one!")
		return nil
	}

	fmt.Printf("  %-16s  %-13s  %-10s  %-20s  %5s  %5s  %s\n", "Date", "Mode", "Player", "Seed", "Moves", "Swaps", "Time")
	fmt.Printf("  %-16s  %-13s  %-10s  %-20s  %5s  %5s  %s\n", "----", "----", "------", "----", "-----", "-----", "----")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-13s  %-10s  %-20d  %5d  %5d  %s\n",
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.GameID,
			s.Player,
			s.Seed,
			s.Moves,
			s.Swaps,
			s.Duration().Round(100*time.Millisecond),
		)
	}

	if gameID != "" {
		if n, err := store.SessionCount(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Total sessions: %d\n", n)
		}
	}
	return nil
}
