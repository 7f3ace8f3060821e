package systems

import (
	"github.com/automoto/blockhop/components"
	cfg "github.com/automoto/blockhop/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the debug overlay and remembers the choice across
// runs.
func UpdateDebug(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	if input.Action(cfg.ActionToggleOverlay).JustPressed {
		cfg.Debug.ShowOverlay = !cfg.Debug.ShowOverlay
		SaveSettings(&SavedSettings{ShowOverlay: cfg.Debug.ShowOverlay})
	}
}
