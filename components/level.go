package components

import (
	"github.com/automoto/blockhop/physics"
	"github.com/yohamta/donburi"
)

// LevelData is the loaded level: its obstacle boxes in a stable order plus
// spawn point and pixel bounds. Obstacles are read-only for the whole frame;
// their order decides which correction wins when several obstacles touch the
// actor at once.
type LevelData struct {
	Name      string
	Obstacles []physics.Rect
	Spawn     physics.Vec
	Width     float64
	Height    float64
}

var Level = donburi.NewComponentType[LevelData]()
