package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTuningOverrides(t *testing.T) {
	defer resetDefaults()

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	body := `
player:
  move_speed: 240
  gravity: 25
world:
  tick_rate: 120
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := LoadTuning(path); err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}

	if Player.MoveSpeed != 240 {
		t.Fatalf("MoveSpeed = %v, want 240", Player.MoveSpeed)
	}
	if Player.Gravity != 25 {
		t.Fatalf("Gravity = %v, want 25", Player.Gravity)
	}
	if World.TickRate != 120 {
		t.Fatalf("TickRate = %v, want 120", World.TickRate)
	}
	// Untouched fields keep their defaults.
	if Player.JumpSpeed != 650 {
		t.Fatalf("JumpSpeed = %v, want default 650", Player.JumpSpeed)
	}
}

func TestLoadTuningMissingFileIsFine(t *testing.T) {
	if err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
}

func TestLoadTuningMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("player: ["), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := LoadTuning(path); err == nil {
		t.Fatal("malformed tuning file should error")
	}
}

func resetDefaults() {
	Player.MoveSpeed = 200
	Player.JumpSpeed = 650
	Player.Gravity = 20
	Player.MaxFallSpeed = 650
	World.TickRate = 60
}
