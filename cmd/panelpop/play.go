package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/panelpop/internal/config"
	"github.com/vovakirdan/panelpop/internal/core"
	"github.com/vovakirdan/panelpop/internal/games/panels"
	"github.com/vovakirdan/panelpop/internal/platform/tui"
	"github.com/vovakirdan/panelpop/internal/registry"
)

var (
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: panels).

Controls:
  Arrows/WASD  - Move the cursor one panel
  Space        - Swap the two panels under the cursor
  P            - Pause
  R            - New grid (new seed)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Presets:
  classic  - Every press moves the cursor
  strict   - Presses wait for the move cooldown

Examples:
  panelpop play
  panelpop play panels_gated
  panelpop play --preset strict --seed 42
  panelpop play --config ./my-panels.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd, gridCmd, serveCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom panels config YAML")
		cmd.Flags().StringVar(&flagPreset, "preset", "", "Preset: classic, strict")
	}
}

// applyConfig loads the panels config, applies the preset and hands the
// result to games created afterwards.
func applyConfig() (config.PanelsConfig, error) {
	cfg, err := config.LoadPanels(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := panels.SetConfig(cfg); err != nil {
		return cfg, err
	}
	logger.Debug("panels config",
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"interval", cfg.Cursor.TimeBetweenMoves,
		"gated", cfg.Cursor.GateMoves,
	)
	return cfg, nil
}

// runtimeConfig builds the runtime config from the terminal and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "panels"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'panelpop list' to see available modes)", gameID)
	}

	if _, err := applyConfig(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
