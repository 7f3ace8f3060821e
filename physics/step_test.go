package physics

import (
	"io"
	"log"
	"math"
	"testing"
)

// testTuning mirrors the demo defaults: 40x40 actor, per-frame gravity 20,
// terminal fall speed 650.
var testTuning = Tuning{
	MoveSpeed:    200,
	JumpSpeed:    650,
	Gravity:      20,
	MaxFallSpeed: 650,
}

func newTestActor(t *testing.T, x, y float64) *Actor {
	t.Helper()
	a, err := NewActor(Vec{X: x, Y: y}, 40, 40, testTuning)
	if err != nil {
		t.Fatalf("NewActor: %v", err)
	}
	a.SetLogger(log.New(io.Discard, "", 0))
	return a
}

// floor spanning x 0..200 with its top surface at y=140.
func testFloor() Rect {
	return NewRect(100, 160, 200, 40)
}

func TestStepRestingContactIsIdempotent(t *testing.T) {
	a := newTestActor(t, 100, 120) // bottom exactly on the floor top
	a.OnGround = true
	obstacles := []Rect{testFloor()}

	for i := 0; i < 10; i++ {
		if st := a.Step(1.0/60, Input{}, obstacles); st != StepOK {
			t.Fatalf("step %d: status %v", i, st)
		}
		if a.Rect.X != 100 || a.Rect.Y != 120 {
			t.Fatalf("step %d: position drifted to (%v, %v)", i, a.Rect.X, a.Rect.Y)
		}
		if a.Velocity != (Vec{}) {
			t.Fatalf("step %d: velocity drifted to %+v", i, a.Velocity)
		}
		if !a.OnGround {
			t.Fatalf("step %d: lost ground contact at rest", i)
		}
	}
}

func TestStepLanding(t *testing.T) {
	// Actor at (100,100), gravity adds 20, dt=1.0. The
	// tentative bottom edge reaches the floor top at 140 and the actor must
	// come to rest with its center at 120.
	a := newTestActor(t, 100, 100)
	obstacles := []Rect{testFloor()}

	if a.OnGround {
		t.Fatal("actor should start airborne")
	}
	if st := a.Step(1.0, Input{}, obstacles); st != StepOK {
		t.Fatalf("status %v", st)
	}
	if !a.OnGround {
		t.Fatal("actor should have landed")
	}
	if a.Velocity.Y != 0 {
		t.Fatalf("vertical velocity not zeroed: %v", a.Velocity.Y)
	}
	if a.Rect.Y != 120 {
		t.Fatalf("resting center y = %v, want 120", a.Rect.Y)
	}
}

func TestStepSideWall(t *testing.T) {
	// Wall occupying x 40..60, tall enough to contain the actor vertically.
	wall := NewRect(50, 100, 20, 400)
	a := newTestActor(t, 90, 100) // right of the wall, airborne
	a.Velocity = Vec{X: -200, Y: 35}

	if st := a.Step(0.1, Input{}, []Rect{wall}); st != StepOK {
		t.Fatalf("status %v", st)
	}
	if a.Velocity.X != 0 {
		t.Fatalf("horizontal velocity not zeroed: %v", a.Velocity.X)
	}
	if want := wall.Right() + 20; a.Rect.X != want {
		t.Fatalf("x = %v, want clamped to %v", a.Rect.X, want)
	}
	// Vertical motion is unaffected by the side hit.
	if a.Velocity.Y <= 0 {
		t.Fatalf("vertical velocity should keep falling, got %v", a.Velocity.Y)
	}
}

func TestStepTunnelingThroughThinPlatform(t *testing.T) {
	// 40 units of displacement in one step against a platform 10 thick.
	tun := Tuning{MoveSpeed: 200, JumpSpeed: 650, Gravity: 0, MaxFallSpeed: 4000}
	a, err := NewActor(Vec{X: 100, Y: 80}, 40, 40, tun)
	if err != nil {
		t.Fatalf("NewActor: %v", err)
	}
	a.Velocity = Vec{Y: 2000}

	platform := NewRect(100, 115, 200, 10) // top=110, bottom=120

	if st := a.Step(0.02, Input{}, []Rect{platform}); st != StepOK {
		t.Fatalf("status %v", st)
	}
	if !a.OnGround {
		t.Fatal("tunneling actor was not caught by the platform")
	}
	if want := platform.Top() - 20; a.Rect.Y != want {
		t.Fatalf("y = %v, want resting position %v", a.Rect.Y, want)
	}
	if a.Velocity.Y != 0 {
		t.Fatalf("vertical velocity not zeroed: %v", a.Velocity.Y)
	}
}

func TestStepCornerDoesNotStick(t *testing.T) {
	// Actor flush against the right side of a wall, falling past it onto a
	// floor below. It must receive only the vertical landing correction,
	// with no horizontal nudge from either obstacle.
	wall := NewRect(80, 60, 40, 120) // right edge at x=100, bottom y=120
	floor := testFloor()             // top at y=140
	a := newTestActor(t, 120, 100)   // left edge exactly at 100

	obstacles := []Rect{wall, floor}
	for i := 0; i < 30 && !a.OnGround; i++ {
		if st := a.Step(1.0/60, Input{}, obstacles); st != StepOK {
			t.Fatalf("step %d: status %v", i, st)
		}
		if a.Rect.X != 120 {
			t.Fatalf("step %d: horizontal nudge, x = %v", i, a.Rect.X)
		}
		if a.Velocity.X != 0 {
			t.Fatalf("step %d: horizontal velocity appeared: %v", i, a.Velocity.X)
		}
	}
	if !a.OnGround {
		t.Fatal("actor never landed")
	}
	if a.Rect.Y != 120 {
		t.Fatalf("resting y = %v, want 120", a.Rect.Y)
	}
}

func TestStepJumpEdgeTrigger(t *testing.T) {
	a := newTestActor(t, 100, 120)
	a.OnGround = true
	obstacles := []Rect{testFloor()}
	held := Input{JumpHeld: true}

	// First held frame launches.
	a.Step(1.0/60, held, obstacles)
	if a.OnGround {
		t.Fatal("first held frame should have launched the jump")
	}

	// Fly until landing, jump key still held the whole time.
	for i := 0; i < 600 && !a.OnGround; i++ {
		a.Step(1.0/60, held, obstacles)
	}
	if !a.OnGround {
		t.Fatal("actor never landed after jump")
	}

	// Still held: the latch must block a re-trigger on grounded frames.
	for i := 0; i < 3; i++ {
		a.Step(1.0/60, held, obstacles)
		if !a.OnGround {
			t.Fatalf("held jump re-triggered on grounded frame %d", i)
		}
	}

	// One released frame clears the latch, the next press jumps again.
	a.Step(1.0/60, Input{}, obstacles)
	a.Step(1.0/60, held, obstacles)
	if a.OnGround {
		t.Fatal("jump did not re-trigger after a released frame")
	}
}

func TestStepGroundedMovement(t *testing.T) {
	obstacles := []Rect{testFloor()}

	cases := []struct {
		name  string
		in    Input
		wantX float64
	}{
		{"idle", Input{}, 100},
		{"left", Input{MoveLeft: true}, 100 - 200*0.05},
		{"right", Input{MoveRight: true}, 100 + 200*0.05},
		{"left wins over right", Input{MoveLeft: true, MoveRight: true}, 100 - 200*0.05},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := newTestActor(t, 100, 120)
			a.OnGround = true
			if st := a.Step(0.05, c.in, obstacles); st != StepOK {
				t.Fatalf("status %v", st)
			}
			if a.Rect.X != c.wantX {
				t.Fatalf("x = %v, want %v", a.Rect.X, c.wantX)
			}
			if !a.OnGround {
				t.Fatal("walking should keep ground contact")
			}
		})
	}
}

func TestStepRejectsInvalidTimestep(t *testing.T) {
	for _, dt := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -0.016} {
		a := newTestActor(t, 100, 100)
		a.Velocity = Vec{X: 5, Y: 7}
		before := *a

		if st := a.Step(dt, Input{MoveLeft: true}, []Rect{testFloor()}); st != StepRejected {
			t.Fatalf("dt=%v: status %v, want %v", dt, st, StepRejected)
		}
		if a.Rect != before.Rect || a.Velocity != before.Velocity || a.OnGround != before.OnGround {
			t.Fatalf("dt=%v: state mutated after rejected step", dt)
		}
	}
}

func TestStepSkipsDegenerateObstacle(t *testing.T) {
	a := newTestActor(t, 100, 100)
	obstacles := []Rect{
		{X: 100, Y: 140, HalfW: 0, HalfH: 20}, // zero width, must be skipped
		testFloor(),
	}

	if st := a.Step(1.0, Input{}, obstacles); st != StepPartial {
		t.Fatalf("status %v, want %v", st, StepPartial)
	}
	// The healthy floor still resolves normally.
	if !a.OnGround || a.Rect.Y != 120 {
		t.Fatalf("landing failed: on_ground=%v y=%v", a.OnGround, a.Rect.Y)
	}
}

func TestStepIgnoresAmbiguousOverlap(t *testing.T) {
	// Obstacle large enough to contain the whole actor box: no contact
	// direction exists, so no correction may be applied.
	huge := NewRect(100, 100, 1000, 1000)
	a := newTestActor(t, 100, 100)
	a.Velocity = Vec{Y: 100}

	if st := a.Step(0.1, Input{}, []Rect{huge}); st != StepPartial {
		t.Fatalf("status %v, want %v", st, StepPartial)
	}
	// Gravity still integrates (vy 100+20) and the actor moves freely.
	if a.Velocity.Y != 120 {
		t.Fatalf("vy = %v, want gravity-integrated 120", a.Velocity.Y)
	}
	if a.Rect.Y != 112 {
		t.Fatalf("y = %v, want free motion to 112", a.Rect.Y)
	}
}

// TestStepDeterminism replays the same input script twice and requires
// bit-identical trajectories: obstacle order and evaluation order are fixed,
// so nothing in a step may vary between runs.
func TestStepDeterminism(t *testing.T) {
	obstacles := []Rect{
		testFloor(),
		NewRect(50, 60, 20, 400),  // left wall
		NewRect(250, 60, 20, 400), // right wall
		NewRect(150, 90, 60, 10),  // ledge
	}

	script := func(frame int) Input {
		return Input{
			MoveRight: frame%7 < 4,
			MoveLeft:  frame%11 == 0,
			JumpHeld:  frame%13 < 3,
		}
	}

	run := func() []Vec {
		a := newTestActor(t, 100, 100)
		track := make([]Vec, 0, 240)
		for frame := 0; frame < 240; frame++ {
			a.Step(1.0/60, script(frame), obstacles)
			track = append(track, a.Pos())
		}
		return track
	}

	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("frame %d diverged: %+v vs %+v", i, first[i], second[i])
		}
	}
}
