package engine

import "github.com/tiltdodge/dodge/internal/config"

// Difficulty selects one row of the difficulty table. It is chosen in the
// menu once per session and is immutable while playing.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Difficulties returns the menu options in cursor order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// String returns the difficulty identifier used for display and score storage.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// FallSpeedFor returns the obstacle fall speed in milli-rows per tick.
func FallSpeedFor(t config.DifficultyTable, d Difficulty) int {
	return paramsFor(t, d).FallSpeed
}

// SpawnIntervalFor returns the number of ticks between obstacle spawns.
func SpawnIntervalFor(t config.DifficultyTable, d Difficulty) int {
	return paramsFor(t, d).SpawnEveryTicks
}

func paramsFor(t config.DifficultyTable, d Difficulty) config.DifficultyParams {
	switch d {
	case DifficultyEasy:
		return t.Easy
	case DifficultyMedium:
		return t.Medium
	case DifficultyHard:
		return t.Hard
	default:
		panic("engine: lookup for unknown difficulty")
	}
}
