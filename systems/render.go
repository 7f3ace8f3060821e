package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/blockhop/components"
	cfg "github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/physics"
	"github.com/automoto/blockhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel renders every solid box relative to the camera.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(e)

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		drawRect(screen, obj.Rect, camX, camY, cfg.White)
	})
}

// DrawPlayer renders physics actors as filled boxes.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(e)

	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		phys := components.Physics.Get(entry)
		if phys.Actor == nil {
			return
		}
		drawRect(screen, phys.Actor.Rect, camX, camY, cfg.Green)
	})
}

// DrawDebug prints position, velocity and ground state for the player when
// the overlay is enabled.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowOverlay {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	phys := components.Physics.Get(playerEntry)
	if phys.Actor == nil {
		return
	}

	a := phys.Actor
	msg := fmt.Sprintf("pos=(%.0f,%.0f) v=(%.0f,%.0f) on_ground=%v",
		a.Rect.X, a.Rect.Y, a.Velocity.X, a.Velocity.Y, a.OnGround)
	ebitenutil.DebugPrintAt(screen, msg, 5, 5)
}

// cameraOffset returns the translation that puts the camera center on the
// middle of the screen.
func cameraOffset(e *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.X - float64(cfg.C.Width)/2, camera.Y - float64(cfg.C.Height)/2
}

func drawRect(screen *ebiten.Image, r physics.Rect, camX, camY float64, clr color.Color) {
	vector.DrawFilledRect(screen,
		float32(r.Left()-camX), float32(r.Top()-camY),
		float32(2*r.HalfW), float32(2*r.HalfH),
		clr, false)
}
