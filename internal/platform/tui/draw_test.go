package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tiltdodge/dodge/internal/core"
	"github.com/tiltdodge/dodge/internal/engine"
	"github.com/tiltdodge/dodge/internal/input"
)

func TestKeyMapperTiltAndEncoder(t *testing.T) {
	km := NewKeyMapper(9.0)
	var raw input.Raw

	if km.Apply(tea.KeyMsg{Type: tea.KeyLeft}, &raw) {
		t.Fatal("left arrow should not quit")
	}
	if raw.Tilt != -9.0 {
		t.Errorf("Tilt = %f, expected -9.0", raw.Tilt)
	}

	km.Apply(tea.KeyMsg{Type: tea.KeyDown}, &raw)
	km.Apply(tea.KeyMsg{Type: tea.KeyDown}, &raw)
	if raw.EncoderTicks != 2 {
		t.Errorf("EncoderTicks = %d, expected 2", raw.EncoderTicks)
	}

	km.Apply(tea.KeyMsg{Type: tea.KeyEnter}, &raw)
	if !raw.ButtonDown {
		t.Error("enter should press the button")
	}

	if !km.Apply(tea.KeyMsg{Type: tea.KeyCtrlC}, &raw) {
		t.Error("ctrl+c should quit")
	}
}

func TestDrawSnapshotPlayfield(t *testing.T) {
	s := core.NewScreen(80, 24)
	snap := engine.Snapshot{
		State:      engine.StatePlaying,
		Lanes:      9,
		Rows:       18,
		AvatarLane: 4,
		Lives:      3,
		Score:      7,
		Obstacles: []engine.ObstacleView{
			{Seq: 1, Lane: 2, Row: 5},
		},
	}

	DrawSnapshot(s, snap, 60)
	out := s.String()

	if !strings.ContainsRune(out, avatarRune) {
		t.Error("avatar not drawn")
	}
	if !strings.ContainsRune(out, obstacleRune) {
		t.Error("obstacle not drawn")
	}
	if !strings.Contains(out, "♥♥♥") {
		t.Error("lives not drawn")
	}
	if !strings.Contains(out, "7") {
		t.Error("score not drawn")
	}
}

func TestDrawSnapshotMenuAndGameOver(t *testing.T) {
	s := core.NewScreen(80, 24)

	DrawSnapshot(s, engine.Snapshot{State: engine.StateMenu, MenuCursor: 1}, 60)
	if !strings.Contains(s.String(), "> MEDIUM <") {
		t.Error("menu cursor not on medium")
	}

	DrawSnapshot(s, engine.Snapshot{
		State:      engine.StateGameOver,
		Difficulty: engine.DifficultyHard,
		Score:      42,
		Elapsed:    3600,
	}, 60)
	out := s.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over banner missing")
	}
	if !strings.Contains(out, "score 42 on hard") {
		t.Error("final score line missing")
	}
	if !strings.Contains(out, "01:00") {
		t.Error("session time missing")
	}
}

func TestDrawSnapshotPausedOverlay(t *testing.T) {
	s := core.NewScreen(80, 24)
	DrawSnapshot(s, engine.Snapshot{
		State:      engine.StatePaused,
		Lanes:      9,
		Rows:       18,
		AvatarLane: 4,
		Lives:      2,
	}, 60)
	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}
