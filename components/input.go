package components

import (
	cfg "github.com/automoto/blockhop/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions. JustPressed/JustReleased are computed on demand by comparing
// frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Action returns the temporal state for one action.
func (d *InputData) Action(id cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      d.Current[id],
		JustPressed:  d.Current[id] && !d.Previous[id],
		JustReleased: !d.Current[id] && d.Previous[id],
	}
}

var Input = donburi.NewComponentType[InputData]()
