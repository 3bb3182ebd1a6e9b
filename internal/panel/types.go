// Package panel provides the panel grid model and the cursor move resolver.
// This package is UI-agnostic and deterministic given a seeded random source.
package panel

// PanelType is the skin of a single panel.
// The zero value PanelNone marks an empty or invalid cell.
type PanelType uint8

const (
	PanelNone PanelType = iota
	PanelHeart
	PanelDiamond
	PanelSquare
	PanelStar
	PanelTriangle
	PanelInvertedTriangle
)

// String returns the display name of the panel type.
func (t PanelType) String() string {
	switch t {
	case PanelNone:
		return "None"
	case PanelHeart:
		return "Heart"
	case PanelDiamond:
		return "Diamond"
	case PanelSquare:
		return "Square"
	case PanelStar:
		return "Star"
	case PanelTriangle:
		return "Triangle"
	case PanelInvertedTriangle:
		return "InvertedTriangle"
	default:
		return "Unknown"
	}
}

// Concrete reports whether t is one of the six drawable panel types.
func (t PanelType) Concrete() bool {
	return t >= PanelHeart && t <= PanelInvertedTriangle
}

// drawOrder is the fixed mapping from a random draw in [0, 6) to a panel type.
var drawOrder = [...]PanelType{
	PanelHeart,
	PanelDiamond,
	PanelSquare,
	PanelStar,
	PanelTriangle,
	PanelInvertedTriangle,
}

// KindCount is the number of concrete panel types a random draw chooses from.
const KindCount = len(drawOrder)

// Kinds returns the concrete panel types in draw order.
func Kinds() []PanelType {
	kinds := make([]PanelType, KindCount)
	copy(kinds, drawOrder[:])
	return kinds
}

// kindForDraw maps a draw to its panel type.
// A draw outside [0, KindCount) means the random source is broken.
func kindForDraw(n int) PanelType {
	if n < 0 || n >= KindCount {
		panic("panel: random draw out of range")
	}
	return drawOrder[n]
}

// Direction is a movement command or a panel's flip attribute.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Panel is the content of a single grid cell.
// X and Y are cell coordinates, not pixels.
type Panel struct {
	Kind PanelType
	Flip Direction
	X    int
	Y    int
}

// Empty reports whether the panel holds no concrete type.
func (p Panel) Empty() bool {
	return p.Kind == PanelNone
}
