package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/panelpop/internal/platform/tui"
	"github.com/vovakirdan/panelpop/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from an interactive menu",
	Long: `Start panelpop in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, Tab for the
session history. Quitting a game returns to the menu.

Examples:
  panelpop menu
  panelpop menu --fps 30
  panelpop menu --db ./history.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if _, err := applyConfig(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsHistory {
			goBack, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", result.GameID, "error", err)
			continue
		}

		// A fixed --seed replays the same grid every round
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg, logger); err != nil {
			logger.Error("game failed", "game", result.GameID, "error", err)
		}
	}
}
