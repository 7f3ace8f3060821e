package systems

import (
	"github.com/automoto/blockhop/components"
	cfg "github.com/automoto/blockhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard and updates the Input component. The
// physics core only ever sees the resulting snapshot, never the device.
// Must run before UpdatePhysics in the system order.
func UpdateInput(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	// Swap buffers: current becomes previous, then re-poll.
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				break
			}
		}
	}
}

// Snapshot converts the polled action state into the physics core's input
// form.
func Snapshot(input *components.InputData) (left, right, jump bool) {
	return input.Current[cfg.ActionMoveLeft],
		input.Current[cfg.ActionMoveRight],
		input.Current[cfg.ActionJump]
}
