package systems

import (
	"github.com/automoto/blockhop/components"
	cfg "github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/physics"
	"github.com/automoto/blockhop/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the camera on the player, clamped to the level bounds.
// After a respawn it glides to the spawn point on an eased tween instead of
// cutting.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if camera.Snapping() {
		advanceSnap(camera)
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

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	target := clampToLevel(phys.Actor.Pos(), level)
	camera.X = target.X
	camera.Y = target.Y
}

// TriggerCameraSnap starts an eased glide toward pos.
func TriggerCameraSnap(e *ecs.ECS, pos physics.Vec) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(e.World)
	if ok {
		pos = clampToLevel(pos, components.Level.Get(levelEntry))
	}

	dur := cfg.World.CameraEase
	camera.SnapX = gween.New(float32(camera.X), float32(pos.X), dur, ease.OutQuad)
	camera.SnapY = gween.New(float32(camera.Y), float32(pos.Y), dur, ease.OutQuad)
}

func advanceSnap(camera *components.CameraData) {
	if camera.SnapX != nil {
		x, done := camera.SnapX.Update(frameDT)
		camera.X = float64(x)
		if done {
			camera.SnapX = nil
		}
	}
	if camera.SnapY != nil {
		y, done := camera.SnapY.Update(frameDT)
		camera.Y = float64(y)
		if done {
			camera.SnapY = nil
		}
	}
}

// clampToLevel constrains a camera center so the view never leaves the
// level, unless the level is smaller than the screen.
func clampToLevel(pos physics.Vec, level *components.LevelData) physics.Vec {
	halfW := float64(cfg.C.Width) / 2
	halfH := float64(cfg.C.Height) / 2

	pos.X = clamp(pos.X, halfW, level.Width-halfW)
	pos.Y = clamp(pos.Y, halfH, level.Height-halfH)
	return pos
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
