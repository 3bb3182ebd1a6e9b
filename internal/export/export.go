// Package export renders a seeded panel grid for other programs: plain text
// for people, YAML and JSON for presentation layers that draw the sprites.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/panelpop/internal/config"
	"github.com/vovakirdan/panelpop/internal/panel"
)

// Format is an output encoding for a grid document.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name. Empty means text.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("export: unknown format %q (expected text, yaml or json)", name)
	}
}

// PanelDoc is one exported cell.
type PanelDoc struct {
	X      int     `json:"x" yaml:"x"`
	Y      int     `json:"y" yaml:"y"`
	Kind   string  `json:"kind" yaml:"kind"`
	Sprite int     `json:"sprite" yaml:"sprite"`
	PX     float64 `json:"px" yaml:"px"`
	PY     float64 `json:"py" yaml:"py"`
}

// Document is a complete exported grid. Panels are row-major with row 0
// at the bottom, matching pixel space where y grows upward.
type Document struct {
	Seed        int64      `json:"seed" yaml:"seed"`
	Width       int        `json:"width" yaml:"width"`
	Height      int        `json:"height" yaml:"height"`
	PanelWidth  float64    `json:"panel_width" yaml:"panel_width"`
	PanelHeight float64    `json:"panel_height" yaml:"panel_height"`
	Panels      []PanelDoc `json:"panels" yaml:"panels"`
}

// Build generates the grid for seed using the configured size and layout.
// The same seed and config always yield the same document.
func Build(seed int64, cfg config.PanelsConfig) Document {
	grid := panel.BuildRandomGridSize(cfg.Grid.Width, cfg.Grid.Height, rand.New(rand.NewSource(seed)))
	return FromGrid(seed, grid, panel.Layout{ScreenW: cfg.Screen.Width, ScreenH: cfg.Screen.Height})
}

// FromGrid exports an existing grid.
func FromGrid(seed int64, grid *panel.Grid, layout panel.Layout) Document {
	doc := Document{
		Seed:        seed,
		Width:       grid.W,
		Height:      grid.H,
		PanelWidth:  layout.PanelWidth(),
		PanelHeight: layout.PanelHeight(),
		Panels:      make([]PanelDoc, 0, len(grid.Cells)),
	}

	grid.Each(func(p panel.Panel) {
		px, py := layout.PixelPosition(p)
		doc.Panels = append(doc.Panels, PanelDoc{
			X:      p.X,
			Y:      p.Y,
			Kind:   p.Kind.String(),
			Sprite: panel.SpriteIndex(p.Kind),
			PX:     px,
			PY:     py,
		})
	})

	return doc
}

// Write encodes doc to w in the given format.
func Write(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatText, "":
		return writeText(w, doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("export: yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("export: json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("export: unknown format %q", format)
	}
}

// writeText draws the grid top row first, one glyph per panel.
func writeText(w io.Writer, doc Document) error {
	kinds := make([]panel.PanelType, len(doc.Panels))
	for i, p := range doc.Panels {
		kinds[i] = kindByName(p.Kind)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "seed %d, %dx%d\n", doc.Seed, doc.Width, doc.Height)
	for y := doc.Height - 1; y >= 0; y-- {
		for x := 0; x < doc.Width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(panel.Glyph(kinds[y*doc.Width+x]))
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func kindByName(name string) panel.PanelType {
	for _, k := range panel.Kinds() {
		if k.String() == name {
			return k
		}
	}
	return panel.PanelNone
}
