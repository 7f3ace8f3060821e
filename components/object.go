package components

import (
	"github.com/automoto/blockhop/physics"
	"github.com/yohamta/donburi"
)

// ObjectData is a static collision box in the level.
type ObjectData struct {
	Rect physics.Rect
}

var Object = donburi.NewComponentType[ObjectData]()
