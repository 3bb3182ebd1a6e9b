package panel

import "math"

// panelsPerScreen is how many panel widths (or heights) span the screen.
const panelsPerScreen = 16

// Layout maps cell coordinates to pixel space for a configured resolution.
// Pixel space is y-up: row 0 sits at pixel y 0.
type Layout struct {
	ScreenW int
	ScreenH int
}

// PanelWidth returns the width of one panel in pixels.
func (l Layout) PanelWidth() float64 {
	return float64(l.ScreenW) / panelsPerScreen
}

// PanelHeight returns the height of one panel in pixels.
func (l Layout) PanelHeight() float64 {
	return float64(l.ScreenH) / panelsPerScreen
}

// PixelPosition returns the pixel position of a panel's cell.
func (l Layout) PixelPosition(p Panel) (float64, float64) {
	return l.CellPosition(p.X, p.Y)
}

// CellPosition returns the pixel position of cell (x, y).
func (l Layout) CellPosition(x, y int) (float64, float64) {
	return float64(x) * l.PanelWidth(), float64(y) * l.PanelHeight()
}

// CellAt returns the cell containing the pixel position (px, py).
// Returns (0, 0) for a layout with zero-sized panels.
func (l Layout) CellAt(px, py float64) (int, int) {
	pw, ph := l.PanelWidth(), l.PanelHeight()
	if pw == 0 || ph == 0 {
		return 0, 0
	}
	// Bias absorbs float error from accumulated offsets.
	return int(math.Floor(px/pw + 1e-9)), int(math.Floor(py/ph + 1e-9))
}
