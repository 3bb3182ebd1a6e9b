package panel

import (
	"errors"
	"fmt"
	"math/rand"
)

// Default playfield dimensions in cells.
const (
	GridWidth  = 8
	GridHeight = 12
)

// ErrOutOfBounds is returned when a cell coordinate falls outside the grid.
var ErrOutOfBounds = errors.New("panel: cell out of bounds")

// Source supplies uniformly distributed integers in [0, n).
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// globalSource draws from the process-wide math/rand generator.
type globalSource struct{}

func (globalSource) Intn(n int) int {
	return rand.Intn(n)
}

// Grid is the playfield as a rectangular arrangement of panels.
// Cells are stored in row-major order: index = y*W + x.
// Row y=0 is the bottom row.
type Grid struct {
	W     int
	H     int
	Cells []Panel
}

// BuildRandomGrid creates a GridWidth x GridHeight grid with every cell
// filled by an independently drawn concrete panel type.
// A nil rng uses the process-wide random source.
func BuildRandomGrid(rng Source) *Grid {
	return BuildRandomGridSize(GridWidth, GridHeight, rng)
}

// BuildRandomGridSize is BuildRandomGrid for arbitrary dimensions.
// It panics if w or h is not positive.
func BuildRandomGridSize(w, h int, rng Source) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("panel: invalid grid size %dx%d", w, h))
	}
	if rng == nil {
		rng = globalSource{}
	}

	g := &Grid{
		W:     w,
		H:     h,
		Cells: make([]Panel, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Cells[y*w+x] = Panel{
				Kind: kindForDraw(rng.Intn(KindCount)),
				Flip: DirNone,
				X:    x,
				Y:    y,
			}
		}
	}
	return g
}

// CellIndex returns the flat index of (x, y) in a default-sized grid.
func CellIndex(x, y int) (int, error) {
	return cellIndex(GridWidth, GridHeight, x, y)
}

func cellIndex(w, h, x, y int) (int, error) {
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0, fmt.Errorf("(%d,%d) in %dx%d grid: %w", x, y, w, h, ErrOutOfBounds)
	}
	return y*w + x, nil
}

// Index returns the flat index of (x, y) in this grid.
func (g *Grid) Index(x, y int) (int, error) {
	return cellIndex(g.W, g.H, x, y)
}

// InBounds returns true if (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the panel at (x, y).
func (g *Grid) At(x, y int) (Panel, error) {
	i, err := g.Index(x, y)
	if err != nil {
		return Panel{}, err
	}
	return g.Cells[i], nil
}

// Set replaces the type of the panel at (x, y).
func (g *Grid) Set(x, y int, kind PanelType) error {
	i, err := g.Index(x, y)
	if err != nil {
		return err
	}
	g.Cells[i].Kind = kind
	return nil
}

// Swap exchanges the contents of two cells.
// Both panels keep the coordinates of the cell they end up in.
func (g *Grid) Swap(x1, y1, x2, y2 int) error {
	a, err := g.Index(x1, y1)
	if err != nil {
		return err
	}
	b, err := g.Index(x2, y2)
	if err != nil {
		return err
	}

	pa, pb := g.Cells[a], g.Cells[b]
	g.Cells[a] = Panel{Kind: pb.Kind, Flip: pb.Flip, X: x1, Y: y1}
	g.Cells[b] = Panel{Kind: pa.Kind, Flip: pa.Flip, X: x2, Y: y2}
	return nil
}

// Each calls fn for every panel in row-major order.
func (g *Grid) Each(fn func(p Panel)) {
	for _, p := range g.Cells {
		fn(p)
	}
}

// Count returns the number of panels of the given type.
func (g *Grid) Count(kind PanelType) int {
	n := 0
	for _, p := range g.Cells {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Panel, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, p := range g.Cells {
		if p != other.Cells[i] {
			return false
		}
	}
	return true
}
