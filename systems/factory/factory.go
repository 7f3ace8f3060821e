package factory

import (
	"fmt"
	"io/fs"

	"github.com/automoto/blockhop/archetypes"
	"github.com/automoto/blockhop/components"
	cfg "github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/physics"
	"github.com/automoto/blockhop/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads a TMX level and spawns its entities: one Level entity
// holding the obstacle list, plus one Object entity per solid so renderers
// can iterate them.
func CreateLevel(e *ecs.ECS, fsys fs.FS, tmxPath string) (*donburi.Entry, error) {
	level, err := leveldata.Load(fsys, tmxPath)
	if err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}

	entry := archetypes.Level.Spawn(e)
	components.Level.SetValue(entry, components.LevelData{
		Name:      tmxPath,
		Obstacles: level.Solids,
		Spawn:     level.Spawn,
		Width:     level.Width,
		Height:    level.Height,
	})

	for _, solid := range level.Solids {
		obj := archetypes.Platform.Spawn(e)
		components.Object.SetValue(obj, components.ObjectData{Rect: solid})
	}

	return entry, nil
}

// CreatePlayer spawns the player actor at the given position.
func CreatePlayer(e *ecs.ECS, pos physics.Vec) (*donburi.Entry, error) {
	actor, err := physics.NewActor(pos, cfg.Player.Width, cfg.Player.Height, cfg.Tuning())
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	player := archetypes.Player.Spawn(e)
	components.Physics.SetValue(player, components.PhysicsData{
		Actor:    actor,
		SpawnPos: pos,
	})
	return player, nil
}

// CreateCamera spawns the camera centered on pos.
func CreateCamera(e *ecs.ECS, pos physics.Vec) *donburi.Entry {
	camera := archetypes.Camera.Spawn(e)
	components.Camera.SetValue(camera, components.CameraData{
		X: pos.X,
		Y: pos.Y,
	})
	return camera
}

// CreateInput spawns the singleton input snapshot entity.
func CreateInput(e *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(e)
}
