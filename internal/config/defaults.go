package config

import (
	_ "embed"
)

//go:embed defaults/panels.yaml
var defaultPanelsYAML []byte

// DefaultPanelsConfig returns the default panel game configuration.
func DefaultPanelsConfig() PanelsConfig {
	return PanelsConfig{
		Screen: ScreenConfig{
			Width:  640,
			Height: 480,
		},
		Grid: GridConfig{
			Width:  8,
			Height: 12,
		},
		Cursor: CursorConfig{
			TimeBetweenMoves: 0.3,
			GateMoves:        false,
			StartX:           3,
			StartY:           5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPanelsYAML
}
