// Package panels implements the panel puzzle playfield: a randomly filled grid
// and a two-cell cursor steered by the move resolver.
package panels

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/panelpop/internal/config"
	"github.com/vovakirdan/panelpop/internal/core"
	"github.com/vovakirdan/panelpop/internal/panel"
	"github.com/vovakirdan/panelpop/internal/registry"
)

// Mode represents how the cursor reacts to repeated presses.
type Mode string

const (
	ModeClassic Mode = "classic" // Every press moves the cursor
	ModeGated   Mode = "gated"   // Presses wait for the cooldown
)

// Game implements the panel playfield.
type Game struct {
	mode Mode
	cfg  config.PanelsConfig
	rng  *rand.Rand
	tick uint64

	grid     *panel.Grid
	layout   panel.Layout
	resolver *panel.Resolver
	cursor   Cursor
	dt       float64

	moves int
	swaps int

	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// Package-level config set by the CLI before games are created.
var selectedConfig *config.PanelsConfig

// SetConfig sets the configuration used by games created afterwards.
// An invalid configuration is rejected and the previous one kept.
func SetConfig(cfg config.PanelsConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("panels: %w", err)
	}
	selectedConfig = &cfg
	return nil
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewGated creates a game whose cursor honors the move cooldown.
func NewGated() *Game {
	return &Game{mode: ModeGated}
}

// NewWithConfig creates a game with an explicit configuration.
// The configuration must pass Validate; a grid narrower than two cells
// cannot hold the cursor.
func NewWithConfig(mode Mode, cfg config.PanelsConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("panels: %w", err)
	}
	return &Game{mode: mode, cfg: cfg}, nil
}

func init() {
	registry.Register("panels", func() registry.Game {
		return New()
	})
	registry.Register("panels_gated", func() registry.Game {
		return NewGated()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeGated {
		return "panels_gated"
	}
	return "panels"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeGated {
		return "Panels (Gated Cursor)"
	}
	return "Panels"
}

// Reset builds a fresh grid from the runtime seed and recenters the cursor.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.cfg == (config.PanelsConfig{}) {
		if selectedConfig != nil {
			g.cfg = *selectedConfig
		} else {
			g.cfg = config.DefaultPanelsConfig()
		}
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.moves = 0
	g.swaps = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.dt = cfg.TickSeconds()

	g.layout = panel.Layout{ScreenW: g.cfg.Screen.Width, ScreenH: g.cfg.Screen.Height}
	g.grid = panel.BuildRandomGridSize(g.cfg.Grid.Width, g.cfg.Grid.Height, g.rng)
	g.resolver = panel.NewResolver(g.layout,
		panel.WithInterval(g.cfg.Cursor.TimeBetweenMoves),
		panel.WithGate(g.mode == ModeGated || g.cfg.Cursor.GateMoves),
	)

	x, y := g.clampCell(g.cfg.Cursor.StartX, g.cfg.Cursor.StartY)
	px, py := g.layout.CellPosition(x, y)
	g.cursor = Cursor{PX: px, PY: py, Skin: panel.PanelHeart}

	g.checkScreenSize()
}

// checkScreenSize checks if the terminal can show the whole board.
func (g *Game) checkScreenSize() {
	minW := g.grid.W*cellWidth + 2
	minH := g.grid.H + 2 + hudHeight + 1
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize adapts to a new terminal size and keeps the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dir := panel.ResolveDirection(
		in.Has(core.ActionLeft),
		in.Has(core.ActionRight),
		in.Has(core.ActionUp),
		in.Has(core.ActionDown),
	)
	res := g.resolver.Advance(g.dt, dir)

	moved := false
	if res.Moved() {
		moved = g.moveCursor(res.DX, res.DY)
		if moved {
			g.moves++
		}
	}
	if res.HasVariant() {
		g.cursor.Skin = res.Variant
	}

	if in.Has(core.ActionSwap) {
		x, y := g.CursorCell()
		if err := g.grid.Swap(x, y, x+1, y); err == nil {
			g.swaps++
		}
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// moveCursor accumulates a pixel offset and keeps the cursor on the board.
// Returns true if the cursor ended up on a different cell.
func (g *Game) moveCursor(dx, dy float64) bool {
	oldX, oldY := g.CursorCell()

	g.cursor.PX += dx
	g.cursor.PY += dy

	x, y := g.layout.CellAt(g.cursor.PX, g.cursor.PY)
	cx, cy := g.clampCell(x, y)
	if cx != x || cy != y {
		g.cursor.PX, g.cursor.PY = g.layout.CellPosition(cx, cy)
	}

	return cx != oldX || cy != oldY
}

// clampCell restricts a cursor cell to the board. The cursor covers (x, y)
// and (x+1, y), so x stops one short of the right edge.
func (g *Game) clampCell(x, y int) (int, int) {
	return core.Clamp(x, 0, g.grid.W-2), core.Clamp(y, 0, g.grid.H-1)
}

// CursorCell returns the cell under the left half of the cursor.
func (g *Game) CursorCell() (int, int) {
	return g.cursor.Cell(g.layout)
}

// Grid returns the playfield.
func (g *Game) Grid() *panel.Grid {
	return g.grid
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:  g.moves,
		Swaps:  g.swaps,
		Paused: g.paused || g.tooSmall,
	}
}

// Cursor is the player-controlled panel. Its position lives in pixel space
// and only changes by the offsets the resolver hands out.
type Cursor struct {
	PX   float64
	PY   float64
	Skin panel.PanelType
}

// Cell returns the cell the cursor's pixel position falls in.
func (c Cursor) Cell(layout panel.Layout) (int, int) {
	return layout.CellAt(c.PX, c.PY)
}
