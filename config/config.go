package config

import (
	"image/color"

	"github.com/automoto/blockhop/physics"
)

// Config contains the window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed    float64
	JumpSpeed    float64
	Gravity      float64 // added to fall speed each airborne frame
	MaxFallSpeed float64

	// Dimensions
	Width  float64
	Height float64
}

// WorldConfig contains level/world configuration values
type WorldConfig struct {
	// Actors falling this far past the level bottom respawn at the spawn
	// point.
	DeadZoneMargin float64

	// Fixed tick rate used by the headless runner.
	TickRate int

	// Camera follow smoothing time in seconds.
	CameraEase float32
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	ShowOverlay bool // Draw position/velocity/ground state overlay
}

var C *Config
var Player PlayerConfig
var World WorldConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Green       = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	SlateGray   = color.RGBA{R: 112, G: 128, B: 144, A: 255}
	DebugYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
		Title:  "blockhop",
	}

	Player = PlayerConfig{
		MoveSpeed:    200,
		JumpSpeed:    650,
		Gravity:      20,
		MaxFallSpeed: 650,

		Width:  40,
		Height: 40,
	}

	World = WorldConfig{
		DeadZoneMargin: 200,
		TickRate:       60,
		CameraEase:     0.35,
	}

	Debug = DebugConfig{
		ShowOverlay: false,
	}
}

// Tuning bridges the player config to the physics core's tunables.
func Tuning() physics.Tuning {
	return physics.Tuning{
		MoveSpeed:    Player.MoveSpeed,
		JumpSpeed:    Player.JumpSpeed,
		Gravity:      Player.Gravity,
		MaxFallSpeed: Player.MaxFallSpeed,
	}
}
