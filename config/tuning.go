package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tuningFile is the YAML shape of an override file. Every field is optional;
// nil fields keep the built-in default.
type tuningFile struct {
	Player struct {
		MoveSpeed    *float64 `yaml:"move_speed"`
		JumpSpeed    *float64 `yaml:"jump_speed"`
		Gravity      *float64 `yaml:"gravity"`
		MaxFallSpeed *float64 `yaml:"max_fall_speed"`
		Width        *float64 `yaml:"width"`
		Height       *float64 `yaml:"height"`
	} `yaml:"player"`
	World struct {
		DeadZoneMargin *float64 `yaml:"dead_zone_margin"`
		TickRate       *int     `yaml:"tick_rate"`
	} `yaml:"world"`
}

// LoadTuning applies overrides from a YAML file on top of the defaults.
// A missing file is not an error; a malformed one is.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read tuning %s: %w", path, err)
	}

	var f tuningFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse tuning %s: %w", path, err)
	}

	applyFloat(&Player.MoveSpeed, f.Player.MoveSpeed)
	applyFloat(&Player.JumpSpeed, f.Player.JumpSpeed)
	applyFloat(&Player.Gravity, f.Player.Gravity)
	applyFloat(&Player.MaxFallSpeed, f.Player.MaxFallSpeed)
	applyFloat(&Player.Width, f.Player.Width)
	applyFloat(&Player.Height, f.Player.Height)
	applyFloat(&World.DeadZoneMargin, f.World.DeadZoneMargin)
	if f.World.TickRate != nil && *f.World.TickRate > 0 {
		World.TickRate = *f.World.TickRate
	}
	return nil
}

func applyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
