// Package engine implements the dodge game core: a deterministic,
// single-threaded state machine advanced one fixed tick at a time. The
// platform layer feeds it one normalized input event per tick and renders
// the snapshot it returns; the engine itself knows nothing about terminals,
// sensors, or timing.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/tiltdodge/dodge/internal/config"
	"github.com/tiltdodge/dodge/internal/core"
	"github.com/tiltdodge/dodge/internal/input"
)

// State identifies the top-level game state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game is the dodge state machine. It is the sole owner of session state
// (lives, score, elapsed time, difficulty, avatar position); the obstacle
// field and collision logic report events back rather than mutating any of
// it directly.
type Game struct {
	cfg config.GameConfig
	rng *rand.Rand

	tick  uint64 // Global tick counter, advances in every state
	state State

	// Menu state
	menuCursor int

	// Session state, valid from Playing until the next session starts
	difficulty Difficulty
	avatarLane int
	lives      int
	score      int
	elapsed    uint64 // Playing ticks survived this session
	playTick   uint64 // Drives the spawn schedule; frozen while paused

	field     obstacleField
	explosion bool // Collision happened this tick
}

// New creates a game in the Menu state. The configuration must be valid;
// an invalid one is a programming error and panics.
func New(cfg config.GameConfig) *Game {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("engine: %v", err))
	}
	g := &Game{
		cfg:   cfg,
		field: newObstacleField(cfg.Gameplay.MaxObstacles),
	}
	g.Reset(core.RuntimeConfig{})
	return g
}

// Reset reseeds the RNG and returns to the Menu with a fresh session.
// The menu cursor is preserved across resets so a restart lands on the
// last selection.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.state = StateMenu
	g.difficulty = DifficultyEasy
	g.avatarLane = g.cfg.Playfield.Lanes / 2
	g.lives = g.cfg.Gameplay.Lives
	g.score = 0
	g.elapsed = 0
	g.playTick = 0
	g.explosion = false
	g.field.reset()
}

// SetMenuCursor preselects a menu entry (used by the --difficulty flag).
// Out-of-range values wrap.
func (g *Game) SetMenuCursor(i int) {
	n := len(Difficulties())
	g.menuCursor = ((i % n) + n) % n
}

// Tick advances the game by exactly one step and returns the frame
// snapshot. Within the tick the order is fixed: state update, obstacle
// advance, spawn, collision, snapshot. Every state produces a snapshot;
// the machine never blocks or skips a tick.
func (g *Game) Tick(ev input.Event) Snapshot {
	g.tick++
	g.explosion = false

	switch g.state {
	case StateMenu:
		g.tickMenu(ev)
	case StatePlaying:
		g.tickPlaying(ev)
	case StatePaused:
		g.tickPaused(ev)
	case StateGameOver:
		g.tickGameOver(ev)
	default:
		panic(fmt.Sprintf("engine: tick in unreachable state %d", g.state))
	}

	g.assertInvariants()
	return g.snapshot()
}

// tickMenu handles difficulty selection. Encoder rotation moves the cursor
// with wraparound; the button starts a session.
func (g *Game) tickMenu(ev input.Event) {
	if ev.EncoderDelta != 0 {
		n := len(Difficulties())
		g.menuCursor = ((g.menuCursor+ev.EncoderDelta)%n + n) % n
	}
	if ev.Button {
		g.startSession(Difficulties()[g.menuCursor])
	}
}

// startSession resets session bookkeeping and enters Playing.
func (g *Game) startSession(d Difficulty) {
	g.difficulty = d
	g.avatarLane = g.cfg.Playfield.Lanes / 2
	g.lives = g.cfg.Gameplay.Lives
	g.score = 0
	g.elapsed = 0
	g.playTick = 0
	g.field.reset()
	g.state = StatePlaying
}

// tickPlaying runs one simulation step: move the avatar, advance and spawn
// obstacles, then test collisions. A button press pauses before anything
// advances, so the paused frame is identical to the previous one.
func (g *Game) tickPlaying(ev input.Event) {
	if ev.Button {
		g.state = StatePaused
		return
	}

	g.elapsed++
	g.playTick++

	g.avatarLane = core.Clamp(g.avatarLane+ev.Move, 0, g.cfg.Playfield.Lanes-1)

	params := paramsFor(g.cfg.Difficulty, g.difficulty)
	avatarRow := g.cfg.Playfield.Rows - 1

	missed := g.field.advance(params.FallSpeed, avatarRow)
	g.score += missed * g.cfg.Gameplay.DodgePoints

	g.field.maybeSpawn(params.SpawnEveryTicks, g.playTick, g.avatarLane, g.cfg.Playfield.Lanes, g.rng)

	if i := g.field.firstContact(g.avatarLane, avatarRow); i >= 0 {
		// One life loss per tick no matter how many obstacles overlap;
		// only the hitting obstacle is destroyed.
		g.field.removeAt(i)
		g.lives--
		g.explosion = true
		if g.lives == 0 {
			g.state = StateGameOver
			g.field.reset()
		}
	}
}

// tickPaused freezes all advancement; the button resumes.
func (g *Game) tickPaused(ev input.Event) {
	if ev.Button {
		g.state = StatePlaying
	}
}

// tickGameOver waits for the player to acknowledge the end screen. Button
// or encoder activity returns to the menu, cursor on the last difficulty.
func (g *Game) tickGameOver(ev input.Event) {
	if ev.Button || ev.EncoderDelta != 0 {
		g.menuCursor = int(g.difficulty)
		g.state = StateMenu
	}
}

// assertInvariants halts on logic faults instead of letting a corrupted
// session produce undefined behavior.
func (g *Game) assertInvariants() {
	if g.lives < 0 || g.lives > g.cfg.Gameplay.Lives {
		panic(fmt.Sprintf("engine: lives %d outside [0, %d]", g.lives, g.cfg.Gameplay.Lives))
	}
	if g.lives == 0 && g.state == StatePlaying {
		panic("engine: still playing with zero lives")
	}
	if g.avatarLane < 0 || g.avatarLane >= g.cfg.Playfield.Lanes {
		panic(fmt.Sprintf("engine: avatar lane %d outside playfield", g.avatarLane))
	}
	if g.field.count() > g.cfg.Gameplay.MaxObstacles {
		panic(fmt.Sprintf("engine: %d obstacles exceed ceiling %d", g.field.count(), g.cfg.Gameplay.MaxObstacles))
	}
	if (g.state == StateMenu || g.state == StateGameOver) && g.field.count() != 0 {
		panic(fmt.Sprintf("engine: %d obstacles outside a session", g.field.count()))
	}
}
