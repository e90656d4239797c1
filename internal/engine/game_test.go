package engine

import (
	"testing"

	"github.com/tiltdodge/dodge/internal/config"
	"github.com/tiltdodge/dodge/internal/core"
	"github.com/tiltdodge/dodge/internal/input"
)

func newTestGame(seed int64) *Game {
	g := New(config.DefaultGameConfig())
	g.Reset(core.RuntimeConfig{Seed: seed})
	return g
}

func press() input.Event {
	return input.Event{Button: true}
}

// startPlaying drives the game from Menu into Playing on the given difficulty.
func startPlaying(t *testing.T, g *Game, d Difficulty) {
	t.Helper()
	g.SetMenuCursor(int(d))
	snap := g.Tick(press())
	if snap.State != StatePlaying {
		t.Fatalf("expected Playing after menu confirm, got %v", snap.State)
	}
	if snap.Difficulty != d {
		t.Fatalf("expected difficulty %v, got %v", d, snap.Difficulty)
	}
}

// injectObstacle places an obstacle directly into the field so collision
// scenarios don't depend on steering the avatar into a random spawn.
func injectObstacle(g *Game, seq uint64, lane, row int) {
	g.field.active = append(g.field.active, obstacle{seq: seq, lane: lane, y: row * milliRow})
}

func TestMenuConfirmStartsSession(t *testing.T) {
	// Scenario: cursor on easy, button press starts a fresh session
	g := newTestGame(1)

	snap := g.Tick(press())
	if snap.State != StatePlaying {
		t.Fatalf("state = %v, expected Playing", snap.State)
	}
	if snap.Difficulty != DifficultyEasy {
		t.Errorf("difficulty = %v, expected easy", snap.Difficulty)
	}
	if snap.Lives != 3 {
		t.Errorf("lives = %d, expected 3", snap.Lives)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, expected 0", snap.Score)
	}
	if snap.Elapsed != 0 {
		t.Errorf("elapsed = %d, expected 0", snap.Elapsed)
	}
	if len(snap.Obstacles) != 0 {
		t.Errorf("obstacles = %d, expected none", len(snap.Obstacles))
	}
}

func TestMenuCursorWraparound(t *testing.T) {
	g := newTestGame(1)
	rotate := input.Event{EncoderDelta: 1}

	want := []int{1, 2, 0, 1} // easy -> medium -> hard -> easy -> medium
	for i, expected := range want {
		snap := g.Tick(rotate)
		if snap.MenuCursor != expected {
			t.Fatalf("after %d rotations cursor = %d, expected %d", i+1, snap.MenuCursor, expected)
		}
	}

	// Counter-clockwise wraps the other way
	snap := g.Tick(input.Event{EncoderDelta: -1})
	if snap.MenuCursor != 0 {
		t.Errorf("cursor = %d, expected 0", snap.MenuCursor)
	}
	snap = g.Tick(input.Event{EncoderDelta: -1})
	if snap.MenuCursor != 2 {
		t.Errorf("cursor = %d, expected wrap to 2", snap.MenuCursor)
	}
}

func TestMenuIgnoresTilt(t *testing.T) {
	g := newTestGame(1)
	snap := g.Tick(input.Event{Move: 1})
	if snap.State != StateMenu || snap.MenuCursor != 0 {
		t.Errorf("tilt in menu changed state: %+v", snap)
	}
}

func TestAvatarMovementClamped(t *testing.T) {
	g := newTestGame(1)
	startPlaying(t, g, DifficultyEasy)

	lanes := g.cfg.Playfield.Lanes

	// Walk left past the edge
	var snap Snapshot
	for i := 0; i < lanes+3; i++ {
		snap = g.Tick(input.Event{Move: -1})
	}
	if snap.AvatarLane != 0 {
		t.Errorf("avatar lane = %d, expected clamp at 0", snap.AvatarLane)
	}

	// Walk right past the edge
	for i := 0; i < lanes+3; i++ {
		snap = g.Tick(input.Event{Move: 1})
	}
	if snap.AvatarLane != lanes-1 {
		t.Errorf("avatar lane = %d, expected clamp at %d", snap.AvatarLane, lanes-1)
	}
}

func TestCollisionCostsOneLife(t *testing.T) {
	// Scenario: an obstacle reaches the avatar's row on tick T
	g := newTestGame(7)
	startPlaying(t, g, DifficultyEasy)

	avatarRow := g.cfg.Playfield.Rows - 1
	// One advance step away from the contact row
	g.field.active = g.field.active[:0]
	g.field.active = append(g.field.active, obstacle{seq: 1, lane: g.avatarLane, y: avatarRow*milliRow - 100})

	snap := g.Tick(input.Event{})
	if !snap.Explosion {
		t.Fatal("expected explosion on the contact tick")
	}
	if snap.Lives != 2 {
		t.Errorf("lives = %d, expected 2", snap.Lives)
	}
	if len(snap.Obstacles) != 0 {
		t.Errorf("obstacle not destroyed: %+v", snap.Obstacles)
	}

	// Explosion is reported on the contact tick only
	snap = g.Tick(input.Event{})
	if snap.Explosion {
		t.Error("explosion flag leaked into the next tick")
	}
	if snap.Lives != 2 {
		t.Errorf("lives = %d after quiet tick, expected 2", snap.Lives)
	}
}

func TestSimultaneousOverlapSinglePenalty(t *testing.T) {
	// N overlapping obstacles in one tick cost exactly one life, and the
	// earliest spawn takes the hit.
	g := newTestGame(7)
	startPlaying(t, g, DifficultyEasy)

	avatarRow := g.cfg.Playfield.Rows - 1
	g.field.active = g.field.active[:0]
	injectObstacle(g, 1, g.avatarLane, avatarRow-1)
	injectObstacle(g, 2, g.avatarLane, avatarRow-1)
	injectObstacle(g, 3, g.avatarLane, avatarRow-1)
	// Land all three on the contact row in one step
	for i := range g.field.active {
		g.field.active[i].y = avatarRow*milliRow - 100
	}

	snap := g.Tick(input.Event{})
	if snap.Lives != 2 {
		t.Fatalf("lives = %d, expected exactly one penalty", snap.Lives)
	}
	if !snap.Explosion {
		t.Fatal("expected a single explosion event")
	}
	if len(snap.Obstacles) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(snap.Obstacles))
	}
	for _, o := range snap.Obstacles {
		if o.Seq == 1 {
			t.Error("oldest overlapping obstacle should have been destroyed")
		}
	}
}

func TestLastLifeEndsSessionSameTick(t *testing.T) {
	// Scenario: lives=1, collision forces GameOver within the same tick
	g := newTestGame(7)
	startPlaying(t, g, DifficultyEasy)
	g.lives = 1

	avatarRow := g.cfg.Playfield.Rows - 1
	g.field.active = g.field.active[:0]
	injectObstacle(g, 1, g.avatarLane, avatarRow)
	g.field.active[0].y = avatarRow*milliRow - 100

	snap := g.Tick(input.Event{})
	if snap.State != StateGameOver {
		t.Fatalf("state = %v, expected GameOver on the collision tick", snap.State)
	}
	if snap.Lives != 0 {
		t.Errorf("lives = %d, expected 0", snap.Lives)
	}
	if !snap.Explosion {
		t.Error("final collision should still report an explosion")
	}
	if len(snap.Obstacles) != 0 {
		t.Errorf("obstacles must be cleared on GameOver, got %d", len(snap.Obstacles))
	}

	// Subsequent ticks advance nothing
	elapsed := snap.Elapsed
	for i := 0; i < 5; i++ {
		snap = g.Tick(input.Event{Move: 1})
	}
	if snap.State != StateGameOver || snap.Elapsed != elapsed {
		t.Errorf("game over state advanced: %+v", snap)
	}
}

func TestPauseFreezesAdvancement(t *testing.T) {
	// Scenario: pause at a known elapsed time, idle, then resume
	g := newTestGame(3)
	startPlaying(t, g, DifficultyMedium)

	var snap Snapshot
	for i := 0; i < 50; i++ {
		snap = g.Tick(input.Event{})
	}
	if snap.Elapsed != 50 {
		t.Fatalf("elapsed = %d, expected 50", snap.Elapsed)
	}
	frozen := snap.Obstacles

	snap = g.Tick(press())
	if snap.State != StatePaused {
		t.Fatalf("state = %v, expected Paused", snap.State)
	}

	for i := 0; i < 10; i++ {
		snap = g.Tick(input.Event{Move: 1, EncoderDelta: 1})
	}
	if snap.Elapsed != 50 {
		t.Errorf("elapsed advanced while paused: %d", snap.Elapsed)
	}
	if len(snap.Obstacles) != len(frozen) {
		t.Fatalf("obstacle count changed while paused")
	}
	for i, o := range snap.Obstacles {
		if o != frozen[i] {
			t.Errorf("obstacle %d moved while paused: %+v vs %+v", i, o, frozen[i])
		}
	}

	// Resume; advancement continues from the same state
	snap = g.Tick(press())
	if snap.State != StatePlaying {
		t.Fatalf("state = %v, expected Playing after resume", snap.State)
	}
	snap = g.Tick(input.Event{})
	if snap.Elapsed != 51 {
		t.Errorf("elapsed = %d after resume, expected 51", snap.Elapsed)
	}
}

func TestGameOverReturnsToMenu(t *testing.T) {
	g := newTestGame(7)
	startPlaying(t, g, DifficultyHard)
	g.lives = 1

	avatarRow := g.cfg.Playfield.Rows - 1
	injectObstacle(g, 99, g.avatarLane, avatarRow)
	g.field.active[len(g.field.active)-1].y = avatarRow*milliRow - 100
	g.Tick(input.Event{})

	// Encoder activity is enough to leave the end screen
	snap := g.Tick(input.Event{EncoderDelta: 1})
	if snap.State != StateMenu {
		t.Fatalf("state = %v, expected Menu", snap.State)
	}
	if snap.MenuCursor != int(DifficultyHard) {
		t.Errorf("cursor = %d, expected to land on the last difficulty", snap.MenuCursor)
	}
}

func TestSpawnSchedule(t *testing.T) {
	g := newTestGame(11)
	startPlaying(t, g, DifficultyEasy)

	interval := SpawnIntervalFor(g.cfg.Difficulty, DifficultyEasy)

	var snap Snapshot
	for i := 1; i < interval; i++ {
		snap = g.Tick(input.Event{})
		if len(snap.Obstacles) != 0 {
			t.Fatalf("obstacle spawned at tick %d before the interval elapsed", i)
		}
	}
	snap = g.Tick(input.Event{})
	if len(snap.Obstacles) != 1 {
		t.Fatalf("expected exactly one obstacle after a full interval, got %d", len(snap.Obstacles))
	}
	if snap.Obstacles[0].Row != 0 {
		t.Errorf("fresh spawn row = %d, expected 0", snap.Obstacles[0].Row)
	}
}

func TestFairSpawnAvoidsAvatarLane(t *testing.T) {
	g := newTestGame(42)
	startPlaying(t, g, DifficultyHard)

	for i := 0; i < 600; i++ {
		snap := g.Tick(input.Event{})
		if snap.State != StatePlaying {
			break
		}
		for _, o := range snap.Obstacles {
			if o.Row == 0 && o.Lane == snap.AvatarLane {
				t.Fatalf("tick %d: obstacle spawned directly on the avatar's lane %d", i, o.Lane)
			}
		}
	}
}

func TestObstacleCeilingBackpressure(t *testing.T) {
	// A spawn-every-tick config must cap out at the ceiling, silently.
	cfg := config.DefaultGameConfig()
	cfg.Gameplay.MaxObstacles = 3
	cfg.Difficulty = config.DifficultyTable{
		Easy:   config.DifficultyParams{FallSpeed: 10, SpawnEveryTicks: 1},
		Medium: config.DifficultyParams{FallSpeed: 20, SpawnEveryTicks: 1},
		Hard:   config.DifficultyParams{FallSpeed: 30, SpawnEveryTicks: 1},
	}
	g := New(cfg)
	g.Reset(core.RuntimeConfig{Seed: 5})
	startPlaying(t, g, DifficultyEasy)

	for i := 0; i < 100; i++ {
		snap := g.Tick(input.Event{})
		if len(snap.Obstacles) > 3 {
			t.Fatalf("tick %d: %d obstacles exceed ceiling", i, len(snap.Obstacles))
		}
	}
	if g.field.count() != 3 {
		t.Errorf("field should sit at the ceiling, got %d", g.field.count())
	}
}

func TestDodgeScoresPoints(t *testing.T) {
	g := newTestGame(13)
	startPlaying(t, g, DifficultyEasy)

	// Place an obstacle one step above the bottom bound, off the avatar's lane
	avatarRow := g.cfg.Playfield.Rows - 1
	lane := (g.avatarLane + 1) % g.cfg.Playfield.Lanes
	injectObstacle(g, 1, lane, avatarRow)
	g.field.active[0].y = avatarRow*milliRow + 900

	snap := g.Tick(input.Event{})
	if snap.Score != 1 {
		t.Errorf("score = %d, expected 1 after a dodge", snap.Score)
	}
	if snap.Lives != 3 {
		t.Errorf("lives = %d, a miss must not cost a life", snap.Lives)
	}
	if len(snap.Obstacles) != 0 {
		t.Errorf("missed obstacle not retired: %+v", snap.Obstacles)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and input script stay identical
	script := make([]input.Event, 400)
	script[0] = press()
	for i := 1; i < len(script); i++ {
		switch {
		case i%7 == 0:
			script[i] = input.Event{Move: 1}
		case i%11 == 0:
			script[i] = input.Event{Move: -1}
		case i == 200:
			script[i] = press() // pause
		case i == 210:
			script[i] = press() // resume
		}
	}

	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	for i, ev := range script {
		s1 := g1.Tick(ev)
		s2 := g2.Tick(ev)
		if s1.Hash() != s2.Hash() {
			t.Fatalf("tick %d: snapshots diverge (%d vs %d)", i, s1.Hash(), s2.Hash())
		}
	}
}

func TestEveryStateHandlesEveryEvent(t *testing.T) {
	// Transition totality: no (state, event) combination may panic or
	// leave the machine in an undefined state.
	events := []input.Event{
		{},
		{Move: -1},
		{Move: 1},
		{EncoderDelta: -1},
		{EncoderDelta: 1},
		{Button: true},
		{Move: 1, EncoderDelta: 1, Button: true},
	}

	known := map[State]bool{
		StateMenu: true, StatePlaying: true, StatePaused: true, StateGameOver: true,
	}

	g := newTestGame(99)
	for i := 0; i < 2000; i++ {
		ev := events[i%len(events)]
		snap := g.Tick(ev)
		if !known[snap.State] {
			t.Fatalf("tick %d: undefined state %d", i, snap.State)
		}
	}
}

func TestLivesInvariantAcrossLongRun(t *testing.T) {
	g := newTestGame(77)
	startPlaying(t, g, DifficultyHard)

	maxLives := g.cfg.Gameplay.Lives
	for i := 0; i < 5000; i++ {
		snap := g.Tick(input.Event{})
		if snap.Lives < 0 || snap.Lives > maxLives {
			t.Fatalf("tick %d: lives %d outside [0, %d]", i, snap.Lives, maxLives)
		}
		if snap.Lives == 0 && snap.State == StatePlaying {
			t.Fatalf("tick %d: playing with zero lives", i)
		}
		if snap.State == StateGameOver {
			// Start the next session and keep going
			g.Tick(press())
			g.Tick(press())
		}
	}
}

func TestCorruptedSessionPanics(t *testing.T) {
	g := newTestGame(1)
	startPlaying(t, g, DifficultyEasy)
	g.lives = -1

	defer func() {
		if recover() == nil {
			t.Error("expected a hard assertion failure on negative lives")
		}
	}()
	g.Tick(input.Event{})
}

func TestResetPreservesMenuCursor(t *testing.T) {
	g := newTestGame(1)
	g.SetMenuCursor(2)
	g.Reset(core.RuntimeConfig{Seed: 2})
	if g.menuCursor != 2 {
		t.Errorf("cursor = %d after reset, expected 2", g.menuCursor)
	}
	if g.state != StateMenu {
		t.Errorf("state = %v after reset, expected Menu", g.state)
	}
}
