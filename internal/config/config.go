// Package config provides YAML-based game configuration loading and
// difficulty presets for the dodge engine.
package config

import "fmt"

// GameConfig contains all tunable parameters of the dodge game.
type GameConfig struct {
	Playfield  PlayfieldConfig `yaml:"playfield"`
	Gameplay   GameplayConfig  `yaml:"gameplay"`
	Input      InputConfig     `yaml:"input"`
	Difficulty DifficultyTable `yaml:"difficulty"`
}

// PlayfieldConfig defines the playfield geometry.
type PlayfieldConfig struct {
	Lanes int `yaml:"lanes"` // Horizontal lanes the avatar and obstacles occupy
	Rows  int `yaml:"rows"`  // Vertical rows obstacles fall through; avatar sits on the last row
}

// GameplayConfig defines session bookkeeping parameters.
type GameplayConfig struct {
	Lives        int `yaml:"lives"`         // Lives per session
	MaxObstacles int `yaml:"max_obstacles"` // Active-obstacle ceiling (backpressure bound)
	DodgePoints  int `yaml:"dodge_points"`  // Score awarded per obstacle that falls past the avatar
}

// InputConfig defines input normalization thresholds.
type InputConfig struct {
	TiltDeadZone float64 `yaml:"tilt_dead_zone"` // Tilt magnitude below which input is neutral
	TiltRange    float64 `yaml:"tilt_range"`     // Full-scale tilt reading (keyboard emulation uses this)
}

// DifficultyParams holds the per-difficulty obstacle tuning.
// FallSpeed is in milli-rows per tick so speeds stay integral and
// deterministic; 1000 would be one full row per tick.
type DifficultyParams struct {
	FallSpeed       int `yaml:"fall_speed"`
	SpawnEveryTicks int `yaml:"spawn_every_ticks"`
}

// DifficultyTable maps the three menu difficulties to their parameters.
type DifficultyTable struct {
	Easy   DifficultyParams `yaml:"easy"`
	Medium DifficultyParams `yaml:"medium"`
	Hard   DifficultyParams `yaml:"hard"`
}

// milliRow is the fixed-point scale for obstacle positions and speeds.
const milliRow = 1000

// Validate checks geometry bounds and the difficulty monotonicity the
// engine relies on: harder settings strictly increase fall speed and never
// increase the spawn interval.
func (c GameConfig) Validate() error {
	if c.Playfield.Lanes < 2 {
		return fmt.Errorf("config: playfield.lanes must be at least 2, got %d", c.Playfield.Lanes)
	}
	if c.Playfield.Rows < 2 {
		return fmt.Errorf("config: playfield.rows must be at least 2, got %d", c.Playfield.Rows)
	}
	if c.Gameplay.Lives < 1 {
		return fmt.Errorf("config: gameplay.lives must be positive, got %d", c.Gameplay.Lives)
	}
	if c.Gameplay.MaxObstacles < 1 {
		return fmt.Errorf("config: gameplay.max_obstacles must be positive, got %d", c.Gameplay.MaxObstacles)
	}
	if c.Gameplay.DodgePoints < 0 {
		return fmt.Errorf("config: gameplay.dodge_points must not be negative, got %d", c.Gameplay.DodgePoints)
	}
	if c.Input.TiltDeadZone < 0 {
		return fmt.Errorf("config: input.tilt_dead_zone must not be negative, got %v", c.Input.TiltDeadZone)
	}
	if c.Input.TiltRange <= c.Input.TiltDeadZone {
		return fmt.Errorf("config: input.tilt_range (%v) must exceed the dead-zone (%v)",
			c.Input.TiltRange, c.Input.TiltDeadZone)
	}

	table := []struct {
		name   string
		params DifficultyParams
	}{
		{"easy", c.Difficulty.Easy},
		{"medium", c.Difficulty.Medium},
		{"hard", c.Difficulty.Hard},
	}
	for _, d := range table {
		if d.params.FallSpeed < 1 {
			return fmt.Errorf("config: difficulty.%s.fall_speed must be positive, got %d", d.name, d.params.FallSpeed)
		}
		// Faster than one row per tick could skip the contact row entirely
		if d.params.FallSpeed >= milliRow {
			return fmt.Errorf("config: difficulty.%s.fall_speed must stay below %d (one row per tick), got %d",
				d.name, milliRow, d.params.FallSpeed)
		}
		if d.params.SpawnEveryTicks < 1 {
			return fmt.Errorf("config: difficulty.%s.spawn_every_ticks must be positive, got %d",
				d.name, d.params.SpawnEveryTicks)
		}
	}

	if !(c.Difficulty.Easy.FallSpeed < c.Difficulty.Medium.FallSpeed &&
		c.Difficulty.Medium.FallSpeed < c.Difficulty.Hard.FallSpeed) {
		return fmt.Errorf("config: difficulty fall speeds must strictly increase easy < medium < hard")
	}
	if c.Difficulty.Easy.SpawnEveryTicks < c.Difficulty.Medium.SpawnEveryTicks ||
		c.Difficulty.Medium.SpawnEveryTicks < c.Difficulty.Hard.SpawnEveryTicks {
		return fmt.Errorf("config: difficulty spawn intervals must not increase easy >= medium >= hard")
	}

	return nil
}

// DifficultyPreset names a difficulty selectable from the CLI.
// It preselects the in-game menu cursor; the menu remains the authority.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// CursorForPreset returns the menu cursor index for a preset name.
// Unknown names fall back to the first entry.
func CursorForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	default:
		return 0
	}
}
