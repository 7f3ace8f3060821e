// Package assets embeds the game's data files.
package assets

import "embed"

//go:embed levels
var FS embed.FS

// StageOrder lists the playable levels in progression order.
var StageOrder = []string{
	"levels/stage1.tmx",
}
