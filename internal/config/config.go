// Package config provides YAML-based configuration loading and preset
// handling for the panel game.
package config

import (
	"errors"
	"fmt"
)

// PanelsConfig contains all configuration for the panel game.
type PanelsConfig struct {
	Screen ScreenConfig `yaml:"screen"`
	Grid   GridConfig   `yaml:"grid"`
	Cursor CursorConfig `yaml:"cursor"`
}

// ScreenConfig is the pixel resolution panel sizes are derived from.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CursorConfig defines the controlled cursor.
type CursorConfig struct {
	TimeBetweenMoves float64 `yaml:"time_between_moves"` // Cooldown in seconds
	GateMoves        bool    `yaml:"gate_moves"`         // Ignore presses during cooldown
	StartX           int     `yaml:"start_x"`
	StartY           int     `yaml:"start_y"`
}

// Validate checks that the configuration can build a playable grid.
func (c PanelsConfig) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height))
	}
	if c.Grid.Width < 2 || c.Grid.Height < 1 {
		errs = append(errs, fmt.Errorf("grid size %dx%d too small (min 2x1)", c.Grid.Width, c.Grid.Height))
	}
	if c.Cursor.TimeBetweenMoves <= 0 {
		errs = append(errs, fmt.Errorf("time_between_moves %v must be positive", c.Cursor.TimeBetweenMoves))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid panels config: %w", err)
	}
	return nil
}

// Preset represents a named cursor behavior.
type Preset string

const (
	PresetClassic Preset = "classic" // Every press moves
	PresetStrict  Preset = "strict"  // Presses wait for the cooldown
)

// ParsePreset validates a preset name. Empty means no preset.
func ParsePreset(name string) (Preset, error) {
	switch Preset(name) {
	case "", PresetClassic, PresetStrict:
		return Preset(name), nil
	default:
		return "", fmt.Errorf("config: unknown preset %q (use classic or strict)", name)
	}
}

// ApplyPreset modifies the config based on a preset.
func ApplyPreset(cfg *PanelsConfig, preset Preset) {
	switch preset {
	case PresetClassic:
		cfg.Cursor.GateMoves = false
	case PresetStrict:
		cfg.Cursor.GateMoves = true
	}
}
