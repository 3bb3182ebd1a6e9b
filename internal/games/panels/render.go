package panels

import (
	"fmt"

	"github.com/vovakirdan/panelpop/internal/core"
	"github.com/vovakirdan/panelpop/internal/panel"
)

const (
	cellWidth = 3 // Bracket slot, glyph, bracket slot
	hudHeight = 3
)

// colors maps each panel type to the color its glyph is drawn in.
var colors = map[panel.PanelType]core.Color{
	panel.PanelNone:             core.ColorGray,
	panel.PanelHeart:            core.ColorRed,
	panel.PanelDiamond:          core.ColorCyan,
	panel.PanelSquare:           core.ColorGreen,
	panel.PanelStar:             core.ColorYellow,
	panel.PanelTriangle:         core.ColorMagenta,
	panel.PanelInvertedTriangle: core.ColorBlue,
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.grid.W*cellWidth + 2
	boardH := g.grid.H + 2
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)

	board := core.NewRect(boardX, boardY, boardW, boardH)
	dst.DrawBox(board)
	g.renderPanels(dst, boardX+1, boardY+1)
	g.renderCursor(dst, boardX+1, boardY+1)

	controls := "Arrows/WASD: Move | Space: Swap | P: Pause | R: New grid | Q: Quit"
	dst.DrawTextCentered(boardY+boardH, controls)

	if g.paused {
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, counters and cursor skin.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	stats := fmt.Sprintf("Moves: %d  Swaps: %d", g.moves, g.swaps)
	dst.DrawText(boardX, 1, stats)

	skin := g.cursor.Skin
	label := "Cursor: "
	labelX := boardX + boardW - len(label) - 1
	if labelX < boardX+len(stats)+1 {
		labelX = boardX + len(stats) + 1
	}
	dst.DrawText(labelX, 1, label)
	dst.SetColored(labelX+len(label), 1, panel.Glyph(skin), colors[skin])
}

// renderPanels draws every cell. Row 0 is the bottom of the board.
func (g *Game) renderPanels(dst *core.Screen, originX, originY int) {
	g.grid.Each(func(p panel.Panel) {
		sx := originX + p.X*cellWidth + 1
		sy := originY + (g.grid.H - 1 - p.Y)
		dst.SetColored(sx, sy, panel.Glyph(p.Kind), colors[p.Kind])
	})
}

// renderCursor brackets the two cells under the cursor.
func (g *Game) renderCursor(dst *core.Screen, originX, originY int) {
	x, y := g.CursorCell()
	sy := originY + (g.grid.H - 1 - y)
	dst.SetColored(originX+x*cellWidth, sy, '[', core.ColorBrightWhite)
	dst.SetColored(originX+(x+1)*cellWidth+cellWidth-1, sy, ']', core.ColorBrightWhite)
}

// drawOverlay draws a text box centered on area.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	centerX, centerY := area.Center()
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.ClearRect(box)
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
