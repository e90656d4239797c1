package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultGameConfig() {
		t.Errorf("embedded default %+v differs from hardcoded default %+v", cfg, DefaultGameConfig())
	}
}

func TestValidateMonotonicDifficulty(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{
			name: "fall speeds not strictly increasing",
			mutate: func(c *GameConfig) {
				c.Difficulty.Medium.FallSpeed = c.Difficulty.Easy.FallSpeed
			},
		},
		{
			name: "spawn interval increases with difficulty",
			mutate: func(c *GameConfig) {
				c.Difficulty.Hard.SpawnEveryTicks = c.Difficulty.Easy.SpawnEveryTicks + 1
			},
		},
		{
			name: "fall speed one full row per tick",
			mutate: func(c *GameConfig) {
				c.Difficulty.Hard.FallSpeed = 1000
			},
		},
		{
			name: "zero spawn interval",
			mutate: func(c *GameConfig) {
				c.Difficulty.Easy.SpawnEveryTicks = 0
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestValidateGeometry(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Playfield.Lanes = 1
	if err := cfg.Validate(); err == nil {
		t.Error("single-lane playfield should be rejected")
	}

	cfg = DefaultGameConfig()
	cfg.Gameplay.Lives = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero lives should be rejected")
	}

	cfg = DefaultGameConfig()
	cfg.Input.TiltRange = cfg.Input.TiltDeadZone
	if err := cfg.Validate(); err == nil {
		t.Error("tilt range inside the dead-zone should be rejected")
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	yaml := `
playfield:
  lanes: 5
  rows: 12
gameplay:
  lives: 5
  max_obstacles: 4
  dodge_points: 2
input:
  tilt_dead_zone: 1.0
  tilt_range: 8.0
difficulty:
  easy:
    fall_speed: 100
    spawn_every_ticks: 40
  medium:
    fall_speed: 200
    spawn_every_ticks: 30
  hard:
    fall_speed: 300
    spawn_every_ticks: 20
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Playfield.Lanes != 5 || cfg.Gameplay.Lives != 5 {
		t.Errorf("custom values not applied: %+v", cfg)
	}
	if cfg.Difficulty.Hard.FallSpeed != 300 {
		t.Errorf("hard fall speed = %d, expected 300", cfg.Difficulty.Hard.FallSpeed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing explicit config path should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("playfield: [not a map]"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("unparsable explicit config should be an error")
	}
}

func TestCursorForPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		cursor int
	}{
		{DifficultyEasy, 0},
		{DifficultyMedium, 1},
		{DifficultyHard, 2},
		{"", 0},
		{"nightmare", 0},
	}
	for _, tc := range tests {
		if got := CursorForPreset(tc.preset); got != tc.cursor {
			t.Errorf("CursorForPreset(%q) = %d, expected %d", tc.preset, got, tc.cursor)
		}
	}
}
