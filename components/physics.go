package components

import (
	"github.com/automoto/blockhop/physics"
	"github.com/yohamta/donburi"
)

// PhysicsData carries an entity's movement state. The actor owns its box and
// velocity; the physics system steps it against the level's obstacles.
type PhysicsData struct {
	Actor *physics.Actor

	// Where the entity returns after falling into the dead zone.
	SpawnPos physics.Vec
}

var Physics = donburi.NewComponentType[PhysicsData]()
