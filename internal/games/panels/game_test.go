package panels

import (
	"strings"
	"testing"

	"github.com/vovakirdan/panelpop/internal/config"
	"github.com/vovakirdan/panelpop/internal/core"
	"github.com/vovakirdan/panelpop/internal/panel"
	"github.com/vovakirdan/panelpop/internal/registry"
)

func newTestGame(t *testing.T, mode Mode, seed int64) *Game {
	t.Helper()
	g := mustNewWithConfig(t, mode, config.DefaultPanelsConfig())
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func mustNewWithConfig(t *testing.T, mode Mode, cfg config.PanelsConfig) *Game {
	t.Helper()
	g, err := NewWithConfig(mode, cfg)
	if err != nil {
		t.Fatalf("NewWithConfig() failed: %v", err)
	}
	return g
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, ModeClassic, 12345)
	g2 := newTestGame(t, ModeClassic, 12345)

	inputs := []core.Action{core.ActionLeft, core.ActionSwap, core.ActionUp, core.ActionNone, core.ActionRight, core.ActionSwap}
	for _, a := range inputs {
		g1.Step(press(a))
		g2.Step(press(a))
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Tick != s2.Tick || s1.Moves != s2.Moves || s1.Swaps != s2.Swaps {
		t.Errorf("counters mismatch: %+v vs %+v", s1, s2)
	}
	if s1.CursorX != s2.CursorX || s1.CursorY != s2.CursorY {
		t.Errorf("cursor mismatch: (%d,%d) vs (%d,%d)", s1.CursorX, s1.CursorY, s2.CursorX, s2.CursorY)
	}
	for i := range s1.Kinds {
		if s1.Kinds[i] != s2.Kinds[i] {
			t.Fatalf("cell %d mismatch: %v vs %v", i, s1.Kinds[i], s2.Kinds[i])
		}
	}
}

func TestResetBuildsFullGrid(t *testing.T) {
	g := newTestGame(t, ModeClassic, 7)
	snap := g.Snapshot()

	if snap.GridW != 8 || snap.GridH != 12 {
		t.Errorf("grid = %dx%d, expected 8x12", snap.GridW, snap.GridH)
	}
	if len(snap.Kinds) != 96 {
		t.Errorf("expected 96 cells, got %d", len(snap.Kinds))
	}
	for i, k := range snap.Kinds {
		if !k.Concrete() {
			t.Errorf("cell %d is %v", i, k)
		}
	}
	if snap.CursorX != 3 || snap.CursorY != 5 {
		t.Errorf("cursor starts at (%d,%d), expected (3,5)", snap.CursorX, snap.CursorY)
	}
	if snap.State != StatePlaying {
		t.Errorf("state = %s, expected playing", snap.State)
	}
}

func TestCursorMovesAndReskins(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		x, y   int
		skin   panel.PanelType
	}{
		{"left", core.ActionLeft, 2, 5, panel.PanelHeart},
		{"right", core.ActionRight, 4, 5, panel.PanelTriangle},
		{"up", core.ActionUp, 3, 6, panel.PanelStar},
		{"down", core.ActionDown, 3, 4, panel.PanelInvertedTriangle},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, ModeClassic, 1)
			res := g.Step(press(tc.action))

			if !res.Moved {
				t.Error("step should report a move")
			}
			snap := g.Snapshot()
			if snap.CursorX != tc.x || snap.CursorY != tc.y {
				t.Errorf("cursor at (%d,%d), expected (%d,%d)", snap.CursorX, snap.CursorY, tc.x, tc.y)
			}
			if snap.CursorSkin != tc.skin {
				t.Errorf("skin = %v, expected %v", snap.CursorSkin, tc.skin)
			}
			if snap.Moves != 1 {
				t.Errorf("moves = %d, expected 1", snap.Moves)
			}
			if snap.Timer != panel.TimeBetweenMoves {
				t.Errorf("timer = %v, expected reset to %v", snap.Timer, panel.TimeBetweenMoves)
			}
		})
	}
}

func TestCursorPriorityLeftWins(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionLeft)
	in.Set(core.ActionUp)
	g.Step(in)

	x, y := g.CursorCell()
	if x != 2 || y != 5 {
		t.Errorf("cursor at (%d,%d), expected only the Left move to (2,5)", x, y)
	}
}

func TestCursorClampedToBoard(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)

	for range 10 {
		g.Step(press(core.ActionLeft))
	}
	if x, _ := g.CursorCell(); x != 0 {
		t.Errorf("cursor x = %d, expected clamp at 0", x)
	}
	if g.State().Moves != 3 {
		t.Errorf("moves = %d, expected 3 (blocked moves do not count)", g.State().Moves)
	}

	for range 20 {
		g.Step(press(core.ActionRight))
	}
	if x, _ := g.CursorCell(); x != 6 {
		t.Errorf("cursor x = %d, expected clamp at W-2 = 6", x)
	}

	for range 20 {
		g.Step(press(core.ActionUp))
	}
	if _, y := g.CursorCell(); y != 11 {
		t.Errorf("cursor y = %d, expected clamp at 11", y)
	}

	for range 20 {
		g.Step(press(core.ActionDown))
	}
	if _, y := g.CursorCell(); y != 0 {
		t.Errorf("cursor y = %d, expected clamp at 0", y)
	}
}

func TestClassicMovesEveryPress(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)

	g.Step(press(core.ActionRight))
	g.Step(press(core.ActionRight))

	if g.State().Moves != 2 {
		t.Errorf("moves = %d, expected 2 for back-to-back presses", g.State().Moves)
	}
}

func TestGatedWaitsForCooldown(t *testing.T) {
	g := newTestGame(t, ModeGated, 1)

	// 30 ticks at 60fps is 0.5s: room for exactly one move after the
	// initial 0.3s cooldown.
	for range 30 {
		g.Step(press(core.ActionLeft))
	}

	if g.State().Moves != 1 {
		t.Errorf("moves = %d, expected 1 in gated mode", g.State().Moves)
	}
}

func TestConfigGateMoves(t *testing.T) {
	cfg := config.DefaultPanelsConfig()
	cfg.Cursor.GateMoves = true

	g := mustNewWithConfig(t, ModeClassic, cfg)
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60})
	g.Step(press(core.ActionLeft))

	if g.State().Moves != 0 {
		t.Error("gate_moves config should hold back the first press")
	}
}

func TestSwap(t *testing.T) {
	g := newTestGame(t, ModeClassic, 99)

	before := g.Snapshot()
	g.Step(press(core.ActionSwap))
	after := g.Snapshot()

	left := 5*8 + 3
	right := 5*8 + 4
	if after.Kinds[left] != before.Kinds[right] || after.Kinds[right] != before.Kinds[left] {
		t.Errorf("cells (3,5),(4,5) not swapped: before %v,%v after %v,%v",
			before.Kinds[left], before.Kinds[right], after.Kinds[left], after.Kinds[right])
	}
	if after.Swaps != 1 {
		t.Errorf("swaps = %d, expected 1", after.Swaps)
	}

	p, err := g.Grid().At(3, 5)
	if err != nil || p.X != 3 || p.Y != 5 {
		t.Errorf("swapped panel coordinates = %+v, %v", p, err)
	}
}

func TestPausedOverlayCentered(t *testing.T) {
	g := newTestGame(t, ModeClassic, 2)
	g.Step(press(core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	boardW := 8*cellWidth + 2
	board := core.NewRect((80-boardW)/2, hudHeight, boardW, 12+2)
	cx, cy := board.Center()

	// The first line sits one row inside the box, centered on the board
	row := screen.Row(cy - 1)
	if !strings.Contains(row, "PAUSED") {
		t.Fatalf("row %d = %q, expected the PAUSED line", cy-1, row)
	}
	start := len([]rune(row[:strings.Index(row, "PAUSED")]))
	if start != cx-len("PAUSED")/2 {
		t.Errorf("PAUSED starts at column %d, expected %d", start, cx-len("PAUSED")/2)
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	g.Step(press(core.ActionLeft))
	if g.State().Moves != 0 {
		t.Error("paused game should ignore moves")
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("state = %s, expected paused", g.Snapshot().State)
	}

	g.Step(press(core.ActionPause))
	g.Step(press(core.ActionLeft))
	if g.State().Moves != 1 {
		t.Error("unpaused game should move again")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := mustNewWithConfig(t, ModeClassic, config.DefaultPanelsConfig())
	g.Reset(core.RuntimeConfig{Seed: 333, ScreenW: 10, ScreenH: 5, TickRate: 60})

	if !g.tooSmall {
		t.Error("Game should detect window is too small")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State should be paused_small_window, got %s", g.Snapshot().State)
	}

	screen := core.NewScreen(40, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("render should explain the window is too small")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, ModeClassic, 444)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	content := screen.String()

	for _, want := range []string{"Panels", "Moves: 0", "Cursor:", "[", "]"} {
		if !strings.Contains(content, want) {
			t.Errorf("rendered screen should contain %q", want)
		}
	}

	// Every panel glyph of the bottom row is drawn in its color.
	boardX := (80 - (8*cellWidth + 2)) / 2
	bottom := hudHeight + 12
	for x := range 8 {
		p, _ := g.Grid().At(x, 0)
		cell := screen.GetCell(boardX+1+x*cellWidth+1, bottom)
		if cell.Rune != panel.Glyph(p.Kind) || cell.Color != colors[p.Kind] {
			t.Errorf("bottom row x=%d: got %q, expected %q", x, cell.Rune, panel.Glyph(p.Kind))
		}
	}
}

func TestGameIDs(t *testing.T) {
	if New().ID() != "panels" || New().Title() != "Panels" {
		t.Error("classic game ID/title mismatch")
	}
	if NewGated().ID() != "panels_gated" {
		t.Errorf("gated ID = %q", NewGated().ID())
	}
}

func TestSetConfigUsedByNew(t *testing.T) {
	cfg := config.DefaultPanelsConfig()
	cfg.Grid.Width = 4
	cfg.Grid.Height = 6
	if err := SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig() failed: %v", err)
	}
	t.Cleanup(func() { selectedConfig = nil })

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 5, ScreenW: 80, ScreenH: 24, TickRate: 60})

	if g.Grid().W != 4 || g.Grid().H != 6 {
		t.Errorf("grid = %dx%d, expected 4x6 from SetConfig", g.Grid().W, g.Grid().H)
	}
	// Start cell (3,5) is clamped into the narrower board
	if x, y := g.CursorCell(); x != 2 || y != 5 {
		t.Errorf("cursor at (%d,%d), expected (2,5)", x, y)
	}
}

func TestRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.PanelsConfig)
	}{
		{"one column", func(c *config.PanelsConfig) { c.Grid.Width = 1 }},
		{"no rows", func(c *config.PanelsConfig) { c.Grid.Height = 0 }},
		{"zero interval", func(c *config.PanelsConfig) { c.Cursor.TimeBetweenMoves = 0 }},
		{"zero screen", func(c *config.PanelsConfig) { c.Screen.Width = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultPanelsConfig()
			tt.mutate(&cfg)

			if g, err := NewWithConfig(ModeClassic, cfg); err == nil || g != nil {
				t.Errorf("NewWithConfig() = %v, %v, expected an error", g, err)
			}

			t.Cleanup(func() { selectedConfig = nil })
			if err := SetConfig(cfg); err == nil {
				t.Error("SetConfig() should reject the config")
			}
			if selectedConfig != nil {
				t.Error("rejected config must not be used by new games")
			}
		})
	}
}

func TestNarrowestGridKeepsCursorInside(t *testing.T) {
	cfg := config.DefaultPanelsConfig()
	cfg.Grid.Width = 2
	g := mustNewWithConfig(t, ModeClassic, cfg)
	g.Reset(core.RuntimeConfig{Seed: 8, ScreenW: 80, ScreenH: 24, TickRate: 60})

	x, y := g.CursorCell()
	if x != 0 || y != 5 {
		t.Errorf("cursor at (%d,%d), expected (0,5)", x, y)
	}
	if _, err := g.Grid().At(x+1, y); err != nil {
		t.Errorf("right cursor cell out of bounds: %v", err)
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newTestGame(t, ModeClassic, 21)
	g.Step(press(core.ActionLeft))
	before := g.Snapshot()

	g.Resize(10, 5)
	if g.Snapshot().State != StatePausedSmall {
		t.Error("shrinking below the board should pause the game")
	}

	g.Resize(80, 24)
	after := g.Snapshot()
	if after.State != StatePlaying {
		t.Errorf("state = %s after growing back, expected playing", after.State)
	}
	if after.Moves != before.Moves || after.CursorX != before.CursorX {
		t.Error("resize should keep cursor and counters")
	}
	for i := range before.Kinds {
		if before.Kinds[i] != after.Kinds[i] {
			t.Fatal("resize should keep the grid")
		}
	}
}

var _ registry.Resizer = (*Game)(nil)
