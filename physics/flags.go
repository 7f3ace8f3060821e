package physics

import "strings"

// Flags is a bitset naming which of the actor's edges are in contact with an
// obstacle. Meaningful values are None, a single edge, or a corner (one
// vertical edge plus one horizontal edge). Opposing edges set together mean
// the classifier could not pick a direction; see Ambiguous.
type Flags uint8

const (
	// HitTop: contact on the actor's top edge (obstacle above).
	HitTop Flags = 1 << iota
	// HitBottom: contact on the actor's bottom edge (obstacle below).
	HitBottom
	// HitLeft: contact on the actor's left edge.
	HitLeft
	// HitRight: contact on the actor's right edge.
	HitRight
)

// None is the empty flag set: no collision.
const None Flags = 0

// Has reports whether all bits of f2 are set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// Ambiguous reports whether f contains opposing edges on the same axis,
// which no correction can satisfy.
func (f Flags) Ambiguous() bool {
	return f.Has(HitTop|HitBottom) || f.Has(HitLeft|HitRight)
}

func (f Flags) String() string {
	if f == None {
		return "none"
	}
	var parts []string
	if f.Has(HitTop) {
		parts = append(parts, "top")
	}
	if f.Has(HitBottom) {
		parts = append(parts, "bottom")
	}
	if f.Has(HitLeft) {
		parts = append(parts, "left")
	}
	if f.Has(HitRight) {
		parts = append(parts, "right")
	}
	return strings.Join(parts, "|")
}
