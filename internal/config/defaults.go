package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultGameConfig returns the built-in dodge configuration.
// Values are derived from the original handheld tuning: three lives, a
// dead-zone wide enough to swallow accelerometer jitter, and fall speeds
// that keep even the hard setting below one row per tick.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Playfield: PlayfieldConfig{
			Lanes: 9,
			Rows:  18,
		},
		Gameplay: GameplayConfig{
			Lives:        3,
			MaxObstacles: 8,
			DodgePoints:  1,
		},
		Input: InputConfig{
			TiltDeadZone: 1.5,
			TiltRange:    9.0,
		},
		Difficulty: DifficultyTable{
			Easy:   DifficultyParams{FallSpeed: 250, SpawnEveryTicks: 36},
			Medium: DifficultyParams{FallSpeed: 330, SpawnEveryTicks: 28},
			Hard:   DifficultyParams{FallSpeed: 420, SpawnEveryTicks: 22},
		},
	}
}
