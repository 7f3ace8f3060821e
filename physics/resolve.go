package physics

// resolve applies the position/velocity correction for one obstacle to the
// tentative position. Each axis is corrected only when the actor's velocity
// is moving toward the obstacle on that axis, so an actor already moving
// away (for instance right after a bounce) is never pulled back.
//
// Corner hits (one vertical flag plus one horizontal flag) gate each axis on
// the previous frame's rect not yet overlapping the obstacle along that
// axis's own interval. That distinguishes falling onto a corner from already
// resting flush beside it: an actor sliding down a wall it was already
// touching gets no fresh horizontal push, and an actor standing on a block
// gets no sideways nudge from the block's corner.
func (a *Actor) resolve(flags Flags, prev Rect, pos *Vec, obstacle Rect) {
	corner := (flags&(HitTop|HitBottom) != 0) && (flags&(HitLeft|HitRight) != 0)

	cameFromAbove := prev.Bottom() <= obstacle.Top()
	cameFromBelow := prev.Top() >= obstacle.Bottom()
	cameFromRight := prev.Left() >= obstacle.Right()
	cameFromLeft := prev.Right() <= obstacle.Left()

	if flags.Has(HitBottom) {
		if a.Velocity.Y > 0 && (!corner || cameFromAbove) {
			a.Velocity.Y = 0
			pos.Y = obstacle.Top() - a.Rect.HalfH
		}
		// A true landing requires having been above the obstacle last frame;
		// sliding laterally into an already-contacted block is not one.
		if cameFromAbove {
			a.OnGround = true
		}
	}

	if flags.Has(HitTop) {
		if a.Velocity.Y < 0 && (!corner || cameFromBelow) {
			a.Velocity.Y = 0
			pos.Y = obstacle.Bottom() + a.Rect.HalfH
		}
	}

	if flags.Has(HitLeft) {
		if a.Velocity.X < 0 && (!corner || cameFromRight) {
			a.Velocity.X = 0
			pos.X = obstacle.Right() + a.Rect.HalfW
		}
	}

	if flags.Has(HitRight) {
		if a.Velocity.X > 0 && (!corner || cameFromLeft) {
			a.Velocity.X = 0
			pos.X = obstacle.Left() - a.Rect.HalfW
		}
	}
}
