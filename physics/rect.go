// Package physics implements AABB collision detection and resolution for
// platformer movement: walking, falling, landing, jumping and wall stops.
// It is pure data-in/data-out, with no rendering, input polling or clock access.
// Coordinates follow screen convention: +Y points down.
package physics

// Vec is a 2D vector.
type Vec struct {
	X, Y float64
}

// Rect is an axis-aligned box stored as a center point plus half extents.
// Edge accessors derive the four sides; a Rect is valid only when both half
// extents are positive.
type Rect struct {
	X, Y         float64 // center
	HalfW, HalfH float64
}

// NewRect builds a Rect from a center point and full width/height.
func NewRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx, Y: cy, HalfW: w / 2, HalfH: h / 2}
}

func (r Rect) Top() float64    { return r.Y - r.HalfH }
func (r Rect) Bottom() float64 { return r.Y + r.HalfH }
func (r Rect) Left() float64   { return r.X - r.HalfW }
func (r Rect) Right() float64  { return r.X + r.HalfW }

// Valid reports whether the rect has positive area.
func (r Rect) Valid() bool {
	return r.HalfW > 0 && r.HalfH > 0
}

// Intersects reports whether two rects overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Left() < other.Right() &&
		r.Right() > other.Left() &&
		r.Top() < other.Bottom() &&
		r.Bottom() > other.Top()
}

// at returns a copy of the rect re-centered on pos.
func (r Rect) at(pos Vec) Rect {
	return Rect{X: pos.X, Y: pos.Y, HalfW: r.HalfW, HalfH: r.HalfH}
}
