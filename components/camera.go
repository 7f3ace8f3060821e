package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CameraData follows the player. After a respawn the camera glides to the
// spawn point with a tween instead of cutting.
type CameraData struct {
	X, Y float64

	SnapX *gween.Tween
	SnapY *gween.Tween
}

// Snapping reports whether a respawn glide is in progress.
func (c *CameraData) Snapping() bool {
	return c.SnapX != nil || c.SnapY != nil
}

var Camera = donburi.NewComponentType[CameraData]()
