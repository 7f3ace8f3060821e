package physics

// axisOverlap holds the raw half-open interval tests between an actor rect
// and an obstacle rect. The half-open bounds keep a shared edge from being
// claimed by both neighbouring obstacles.
type axisOverlap struct {
	top, bottom, left, right bool
}

func overlaps(actor, obstacle Rect) axisOverlap {
	return axisOverlap{
		top:    obstacle.Top() < actor.Top() && actor.Top() <= obstacle.Bottom(),
		bottom: obstacle.Top() <= actor.Bottom() && actor.Bottom() < obstacle.Bottom(),
		left:   obstacle.Left() < actor.Left() && actor.Left() <= obstacle.Right(),
		right:  obstacle.Left() <= actor.Right() && actor.Right() < obstacle.Right(),
	}
}

// Classify returns the contact edges between the actor's tentative box and an
// obstacle. An edge contributes only when the box also overlaps on the
// perpendicular axis; an edge touch with no perpendicular overlap is not a
// collision. An actor box entirely inside the obstacle has no contact
// direction and classifies as ambiguous (all four flags).
func Classify(actor, obstacle Rect) Flags {
	ov := overlaps(actor, obstacle)

	if !(ov.left || ov.right) || !(ov.top || ov.bottom) {
		return None
	}

	// Both interval tests passing on an axis means the actor box sits inside
	// the obstacle's span there, so that axis carries no contact direction.
	if ov.top && ov.bottom && ov.left && ov.right {
		return HitTop | HitBottom | HitLeft | HitRight
	}

	var f Flags
	if ov.bottom && !ov.top {
		f |= HitBottom
	}
	if ov.top && !ov.bottom {
		f |= HitTop
	}
	if ov.left && !ov.right {
		f |= HitLeft
	}
	if ov.right && !ov.left {
		f |= HitRight
	}
	return f
}

// DetectTunneling catches obstacles the actor's motion crossed entirely
// between two frames, which Classify never sees. For each axis it checks
// whether the actor's leading edge passed the obstacle's facing edge since
// the previous frame; the perpendicular flags are synthesized from the
// current frame's overlap on the other axis, as if contact had been seen
// mid-frame. Only meaningful when Classify(cur, obstacle) returned None.
func DetectTunneling(prev, cur, obstacle Rect) Flags {
	ov := overlaps(cur, obstacle)

	// Passed downward through the obstacle's top edge.
	if prev.Bottom() <= obstacle.Top() && cur.Bottom() > obstacle.Top() {
		switch {
		case ov.left && ov.right:
			return HitBottom
		case ov.left:
			return HitBottom | HitLeft
		case ov.right:
			return HitBottom | HitRight
		}
	}

	// Passed upward through the obstacle's bottom edge.
	if prev.Top() >= obstacle.Bottom() && cur.Top() < obstacle.Bottom() {
		switch {
		case ov.left && ov.right:
			return HitTop
		case ov.left:
			return HitTop | HitLeft
		case ov.right:
			return HitTop | HitRight
		}
	}

	// Passed leftward through the obstacle's right edge.
	if prev.Left() >= obstacle.Right() && cur.Left() < obstacle.Right() {
		switch {
		case ov.top && ov.bottom:
			return HitLeft
		case ov.top:
			return HitTop | HitLeft
		case ov.bottom:
			return HitBottom | HitLeft
		}
	}

	// Passed rightward through the obstacle's left edge.
	if prev.Right() <= obstacle.Left() && cur.Right() > obstacle.Left() {
		switch {
		case ov.top && ov.bottom:
			return HitRight
		case ov.top:
			return HitTop | HitRight
		case ov.bottom:
			return HitBottom | HitRight
		}
	}

	return None
}
