package physics

import "math"

// StepStatus reports how a Step call went. A rejected step leaves the actor
// untouched; a partial step completed but ignored some of its input.
type StepStatus int

const (
	// StepOK: the frame integrated normally.
	StepOK StepStatus = iota
	// StepRejected: dt was non-finite or negative; previous state kept.
	StepRejected
	// StepPartial: the frame integrated, but at least one obstacle was
	// skipped (degenerate geometry) or an ambiguous overlap was ignored.
	StepPartial
)

func (s StepStatus) String() string {
	switch s {
	case StepOK:
		return "ok"
	case StepRejected:
		return "rejected"
	case StepPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// Step advances the actor by one frame: apply input and gravity, compute a
// tentative position, resolve it against every obstacle in the order given,
// then commit position, velocity and the on-ground flag.
//
// Obstacle order matters: when several obstacles correct the same axis in
// one frame, the last one visited wins. Callers must present obstacles in a
// stable order every frame to keep the simulation deterministic.
func (a *Actor) Step(dt float64, in Input, obstacles []Rect) StepStatus {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		a.logf("physics: rejected step, invalid dt %v", dt)
		return StepRejected
	}
	if !a.Rect.Valid() {
		a.logf("physics: rejected step, degenerate actor rect %+v", a.Rect)
		return StepRejected
	}

	if a.OnGround {
		// Grounded velocity is driven directly by intent each frame.
		a.Velocity = Vec{}

		if in.JumpHeld && !a.jumpLatched {
			a.Velocity.Y = -a.Tuning.JumpSpeed
			a.OnGround = false
			a.jumpLatched = true
		}

		switch {
		case in.MoveLeft:
			a.Velocity.X = -a.Tuning.MoveSpeed
		case in.MoveRight:
			a.Velocity.X = a.Tuning.MoveSpeed
		}
	} else {
		a.Velocity.Y += a.Tuning.Gravity
		if a.Velocity.Y > a.Tuning.MaxFallSpeed {
			a.Velocity.Y = a.Tuning.MaxFallSpeed
		}
	}

	// The latch clears only on a released frame, never on state changes.
	if !in.JumpHeld {
		a.jumpLatched = false
	}

	prev := a.Rect
	pos := Vec{X: prev.X + a.Velocity.X*dt, Y: prev.Y + a.Velocity.Y*dt}

	status := StepOK
	a.OnGround = false

	for _, obstacle := range obstacles {
		if !obstacle.Valid() {
			a.logf("physics: skipping degenerate obstacle %+v", obstacle)
			status = StepPartial
			continue
		}

		cur := prev.at(pos)
		flags := Classify(cur, obstacle)
		if flags == None {
			flags = DetectTunneling(prev, cur, obstacle)
		}
		if flags == None {
			continue
		}
		if flags.Ambiguous() {
			a.logf("physics: ambiguous overlap (%v) with obstacle %+v, no correction applied", flags, obstacle)
			status = StepPartial
			continue
		}

		a.resolve(flags, prev, &pos, obstacle)
	}

	a.Rect.X = pos.X
	a.Rect.Y = pos.Y
	return status
}
