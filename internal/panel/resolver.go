package panel

// TimeBetweenMoves is the cooldown, in seconds, set after every accepted move.
const TimeBetweenMoves = 0.3

// MoveResult is the outcome of one resolver tick.
// The caller adds (DX, DY) to the tracked panel's pixel position and
// re-skins it when Variant is not PanelNone.
type MoveResult struct {
	DX      float64
	DY      float64
	Variant PanelType
}

// Moved reports whether the result carries a non-zero offset.
func (r MoveResult) Moved() bool {
	return r.DX != 0 || r.DY != 0
}

// HasVariant reports whether the tracked panel should change skin.
func (r MoveResult) HasVariant() bool {
	return r.Variant != PanelNone
}

// Resolver turns one directional press per tick into a pixel offset for a
// single controlled panel, keeping a cooldown timer between moves.
type Resolver struct {
	layout   Layout
	interval float64
	gated    bool
	timer    float64
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithInterval overrides the cooldown set after each accepted move.
func WithInterval(seconds float64) ResolverOption {
	return func(r *Resolver) {
		r.interval = seconds
	}
}

// WithGate makes the resolver ignore presses while the cooldown is running.
// Without it every press moves, and the timer is bookkeeping only.
func WithGate(gated bool) ResolverOption {
	return func(r *Resolver) {
		r.gated = gated
	}
}

// NewResolver creates a resolver for the given layout.
// The timer starts at the full interval.
func NewResolver(layout Layout, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		layout:   layout,
		interval: TimeBetweenMoves,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.timer = r.interval
	return r
}

// Advance runs one tick: dt seconds elapsed and in was freshly pressed.
func (r *Resolver) Advance(dt float64, in Direction) MoveResult {
	r.timer -= dt

	if in == DirNone {
		return MoveResult{}
	}
	if r.gated && r.timer > 0 {
		return MoveResult{}
	}

	var res MoveResult
	switch in {
	case DirLeft:
		res = MoveResult{DX: -r.layout.PanelWidth(), Variant: PanelHeart}
	case DirRight:
		res = MoveResult{DX: r.layout.PanelWidth(), Variant: PanelTriangle}
	case DirUp:
		res = MoveResult{DY: r.layout.PanelHeight(), Variant: PanelStar}
	case DirDown:
		res = MoveResult{DY: -r.layout.PanelHeight(), Variant: PanelInvertedTriangle}
	default:
		return MoveResult{}
	}

	r.timer = r.interval
	return res
}

// Timer returns the current cooldown value. It may be negative.
func (r *Resolver) Timer() float64 {
	return r.timer
}

// Gated reports whether presses are ignored during the cooldown.
func (r *Resolver) Gated() bool {
	return r.gated
}

// Reset restores the timer to the full interval.
func (r *Resolver) Reset() {
	r.timer = r.interval
}

// ResolveDirection picks one direction from simultaneously pressed keys.
// Priority is Left, then Right, then Up, then Down.
func ResolveDirection(left, right, up, down bool) Direction {
	switch {
	case left:
		return DirLeft
	case right:
		return DirRight
	case up:
		return DirUp
	case down:
		return DirDown
	default:
		return DirNone
	}
}
