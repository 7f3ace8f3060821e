package systems

import (
	"log"

	"github.com/automoto/blockhop/components"
	cfg "github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameDT is the fixed timestep matching ebiten's 60 ticks per second.
const frameDT = 1.0 / 60.0

// UpdatePhysics steps every physics actor against the level's obstacles and
// respawns actors that fell into the dead zone below the level.
func UpdatePhysics(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	inputEntry, hasInput := components.Input.First(e.World)

	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		phys := components.Physics.Get(entry)
		if phys.Actor == nil {
			return
		}

		var in physics.Input
		if hasInput {
			input := components.Input.Get(inputEntry)
			in.MoveLeft, in.MoveRight, in.JumpHeld = Snapshot(input)
		}

		if st := phys.Actor.Step(frameDT, in, level.Obstacles); st == physics.StepRejected {
			log.Printf("systems: physics step rejected for entity %v", entry.Entity())
			return
		}

		if phys.Actor.Rect.Top() > level.Height+cfg.World.DeadZoneMargin {
			respawn(e, phys)
		}
	})
}

func respawn(e *ecs.ECS, phys *components.PhysicsData) {
	phys.Actor.SetPos(phys.SpawnPos)
	TriggerCameraSnap(e, phys.SpawnPos)
}
