package physics

import (
	"fmt"
	"log"
)

// Input is one frame's movement intent, a plain snapshot supplied by the
// caller. The core never polls a device.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	JumpHeld  bool
}

// Tuning holds the movement constants an Actor integrates with.
type Tuning struct {
	MoveSpeed    float64 // horizontal speed while grounded, units/sec
	JumpSpeed    float64 // initial upward speed of a jump, units/sec
	Gravity      float64 // added to vertical speed each airborne frame
	MaxFallSpeed float64 // terminal fall speed, units/sec
}

// Actor is a movable box with platformer movement state. It is created once
// and mutated every Step; obstacles it collides with stay untouched.
type Actor struct {
	Rect     Rect
	Velocity Vec
	OnGround bool
	Tuning   Tuning

	// jumpLatched remembers that the jump input was already consumed, so a
	// held key triggers exactly one jump until it passes through a released
	// frame.
	jumpLatched bool

	logger *log.Logger
}

// NewActor creates an actor centered on pos with the given full size.
func NewActor(pos Vec, w, h float64, tun Tuning) (*Actor, error) {
	r := NewRect(pos.X, pos.Y, w, h)
	if !r.Valid() {
		return nil, fmt.Errorf("physics: actor size %gx%g is degenerate", w, h)
	}
	return &Actor{Rect: r, Tuning: tun}, nil
}

// SetLogger redirects the actor's diagnostics. Passing nil restores the
// default logger.
func (a *Actor) SetLogger(l *log.Logger) {
	a.logger = l
}

func (a *Actor) logf(format string, args ...any) {
	if a.logger != nil {
		a.logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// Pos returns the actor's center position.
func (a *Actor) Pos() Vec {
	return Vec{X: a.Rect.X, Y: a.Rect.Y}
}

// SetPos teleports the actor, clearing its velocity and ground contact.
// Used by respawn logic; it does not resolve collisions.
func (a *Actor) SetPos(pos Vec) {
	a.Rect.X = pos.X
	a.Rect.Y = pos.Y
	a.Velocity = Vec{}
	a.OnGround = false
}
