package leveldata

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/automoto/blockhop/physics"
	"github.com/lafriks/go-tiled"
)

// Object group names recognized in a level TMX.
const (
	groupSolids = "solids"
	groupSpawn  = "spawn"
)

// Load parses a TMX file into a Level. It takes an fs.FS so callers can pass
// embed.FS (game binary) or os.DirFS (tools, tests).
//
// Solid boxes come from rectangle objects in the "solids" object group, in
// document order. The player spawn is the first object in the "spawn" group.
// Degenerate (zero-area) solids are dropped with a warning rather than
// handed to the physics core.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   tmxPath,
		Width:  float64(m.Width * m.TileWidth),
		Height: float64(m.Height * m.TileHeight),
	}

	var spawnFound bool
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case groupSolids:
			for _, obj := range og.Objects {
				r := physics.NewRect(
					obj.X+obj.Width/2,
					obj.Y+obj.Height/2,
					obj.Width,
					obj.Height,
				)
				if !r.Valid() {
					log.Printf("leveldata: %s: dropping degenerate solid %q (%gx%g)",
						tmxPath, obj.Name, obj.Width, obj.Height)
					continue
				}
				level.Solids = append(level.Solids, r)
			}
		case groupSpawn:
			if len(og.Objects) == 0 {
				continue
			}
			obj := og.Objects[0]
			level.Spawn = physics.Vec{X: obj.X, Y: obj.Y}
			spawnFound = true
		}
	}

	if len(level.Solids) == 0 {
		return nil, fmt.Errorf("level %s: no usable solids", tmxPath)
	}
	if !spawnFound {
		return nil, fmt.Errorf("level %s: missing spawn point", tmxPath)
	}
	return level, nil
}
