package leveldata

import (
	"os"
	"testing"

	"github.com/automoto/blockhop/physics"
)

func TestLoad(t *testing.T) {
	level, err := Load(os.DirFS("testdata"), "basic.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if level.Width != 320 || level.Height != 240 {
		t.Fatalf("dimensions = %gx%g, want 320x240", level.Width, level.Height)
	}

	// The zero-width "broken" solid is dropped; the two healthy ones stay
	// in document order.
	if len(level.Solids) != 2 {
		t.Fatalf("got %d solids, want 2", len(level.Solids))
	}
	wantFloor := physics.NewRect(160, 230, 320, 20)
	if level.Solids[0] != wantFloor {
		t.Fatalf("solid[0] = %+v, want %+v", level.Solids[0], wantFloor)
	}
	wantLedge := physics.NewRect(140, 145, 80, 10)
	if level.Solids[1] != wantLedge {
		t.Fatalf("solid[1] = %+v, want %+v", level.Solids[1], wantLedge)
	}

	if (level.Spawn != physics.Vec{X: 160, Y: 200}) {
		t.Fatalf("spawn = %+v, want (160, 200)", level.Spawn)
	}
}

func TestLoadMissingSpawn(t *testing.T) {
	if _, err := Load(os.DirFS("testdata"), "nospawn.tmx"); err == nil {
		t.Fatal("expected error for level without spawn point")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(os.DirFS("testdata"), "absent.tmx"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
