// Package leveldata parses TMX level files into collision data for the
// physics core. It depends only on go-tiled and the physics package, not on
// ebitengine or donburi, so headless tools can load levels too.
package leveldata

import "github.com/automoto/blockhop/physics"

// Level holds the collision-relevant contents of one TMX map.
type Level struct {
	Name string

	// Pixel dimensions of the map.
	Width  float64
	Height float64

	// Solid boxes in document order. The order is part of the level's
	// contract: collision resolution visits obstacles in this order every
	// frame.
	Solids []physics.Rect

	// Player spawn point (box center).
	Spawn physics.Vec
}
