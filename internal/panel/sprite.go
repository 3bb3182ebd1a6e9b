package panel

// Sprite sheet frame indices.
const (
	SpriteHeart            = 0
	SpriteDiamond          = 1
	SpriteStar             = 2
	SpriteSquare           = 3
	SpriteTriangle         = 4
	SpriteInvertedTriangle = 5
	SpriteCursor           = 6
	SpriteCursorRight      = 7
)

// SpriteIndex returns the sheet frame for a panel type, or -1 for PanelNone.
func SpriteIndex(kind PanelType) int {
	switch kind {
	case PanelHeart:
		return SpriteHeart
	case PanelDiamond:
		return SpriteDiamond
	case PanelStar:
		return SpriteStar
	case PanelSquare:
		return SpriteSquare
	case PanelTriangle:
		return SpriteTriangle
	case PanelInvertedTriangle:
		return SpriteInvertedTriangle
	default:
		return -1
	}
}

// Glyph returns the terminal rune for a panel type, or '?' for an unknown one.
func Glyph(kind PanelType) rune {
	switch kind {
	case PanelNone:
		return '·'
	case PanelHeart:
		return '♥'
	case PanelDiamond:
		return '♦'
	case PanelStar:
		return '★'
	case PanelSquare:
		return '■'
	case PanelTriangle:
		return '▲'
	case PanelInvertedTriangle:
		return '▼'
	default:
		return '?'
	}
}
