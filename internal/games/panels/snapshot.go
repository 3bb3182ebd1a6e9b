package panels

import "github.com/vovakirdan/panelpop/internal/panel"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string
	GridW      int
	GridH      int
	Kinds      []panel.PanelType // Row-major, row 0 at the bottom
	CursorX    int
	CursorY    int
	CursorSkin panel.PanelType
	Timer      float64
	Moves      int
	Swaps      int
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	kinds := make([]panel.PanelType, len(g.grid.Cells))
	for i, p := range g.grid.Cells {
		kinds[i] = p.Kind
	}

	x, y := g.CursorCell()
	return Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		GridW:      g.grid.W,
		GridH:      g.grid.H,
		Kinds:      kinds,
		CursorX:    x,
		CursorY:    y,
		CursorSkin: g.cursor.Skin,
		Timer:      g.resolver.Timer(),
		Moves:      g.moves,
		Swaps:      g.swaps,
		State:      state,
	}
}
