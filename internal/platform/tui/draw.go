package tui

import (
	"fmt"
	"strings"

	"github.com/tiltdodge/dodge/internal/core"
	"github.com/tiltdodge/dodge/internal/engine"
)

const (
	avatarRune    = 'A'
	obstacleRune  = 'V'
	explosionRune = '*'
)

// DrawSnapshot renders one engine snapshot onto the screen buffer. The
// playfield is centered; everything scales off the snapshot's own lane and
// row counts so the renderer needs no config.
func DrawSnapshot(s *core.Screen, snap engine.Snapshot, tickRate int) {
	s.Clear()

	switch snap.State {
	case engine.StateMenu:
		drawMenu(s, snap)
	case engine.StatePlaying, engine.StatePaused:
		drawPlayfield(s, snap, tickRate)
	case engine.StateGameOver:
		drawGameOver(s, snap, tickRate)
	}
}

// drawMenu renders the difficulty selection screen.
func drawMenu(s *core.Screen, snap engine.Snapshot) {
	cy := s.Height() / 2

	s.DrawTextCentered(cy-5, "D O D G E")
	s.DrawTextCentered(cy-3, "tilt to dodge the falling claws")

	for i, d := range engine.Difficulties() {
		label := strings.ToUpper(d.String())
		if i == snap.MenuCursor {
			label = "> " + label + " <"
		}
		y := cy - 1 + i*2
		x := (s.Width() - len(label)) / 2
		if i == snap.MenuCursor {
			s.DrawTextColored(x, y, label, core.ColorBrightYellow)
		} else {
			s.DrawTextColored(x, y, label, core.ColorGray)
		}
	}

	s.DrawTextColored((s.Width()-34)/2, cy+6, "enter: start   q: quit   p: pause", core.ColorGray)
}

// drawPlayfield renders the board, obstacles, avatar and HUD. Paused
// sessions get an overlay on top of the frozen frame.
func drawPlayfield(s *core.Screen, snap engine.Snapshot, tickRate int) {
	boxW := snap.Lanes + 2
	boxH := snap.Rows + 2
	ox := (s.Width() - boxW) / 2
	oy := (s.Height() - boxH - 2) / 2
	if oy < 1 {
		oy = 1
	}

	s.DrawBox(core.NewRect(ox, oy, boxW, boxH))

	for _, o := range snap.Obstacles {
		s.SetColor(ox+1+o.Lane, oy+1+o.Row, obstacleRune, core.ColorYellow)
	}

	avatarY := oy + 1 + snap.Rows - 1
	if snap.Explosion {
		s.SetColor(ox+1+snap.AvatarLane, avatarY, explosionRune, core.ColorBrightRed)
	} else {
		s.SetColor(ox+1+snap.AvatarLane, avatarY, avatarRune, core.ColorBrightCyan)
	}

	drawHUD(s, snap, ox, oy+boxH, boxW, tickRate)

	if snap.State == engine.StatePaused {
		overlay := core.NewRect(ox+(boxW-10)/2, oy+boxH/2-1, 10, 3)
		s.DrawRect(overlay, ' ')
		s.DrawBox(overlay)
		s.DrawTextColored(overlay.X+2, overlay.Y+1, "PAUSED", core.ColorBrightWhite)
	}
}

// drawHUD renders lives, score and session time below the playfield.
func drawHUD(s *core.Screen, snap engine.Snapshot, x, y, width, tickRate int) {
	hearts := strings.Repeat("♥", snap.Lives)
	s.DrawTextColored(x, y, hearts, core.ColorBrightRed)

	score := fmt.Sprintf("%d", snap.Score)
	s.DrawTextColored(x+width-len(score), y, score, core.ColorBrightGreen)

	s.DrawTextColored(x, y+1, sessionTime(snap.Elapsed, tickRate), core.ColorGray)
}

// drawGameOver renders the end screen with the final results.
func drawGameOver(s *core.Screen, snap engine.Snapshot, tickRate int) {
	cy := s.Height() / 2

	s.DrawTextColored((s.Width()-9)/2, cy-3, "GAME OVER", core.ColorBrightRed)
	s.DrawTextCentered(cy-1, fmt.Sprintf("score %d on %s", snap.Score, snap.Difficulty))
	s.DrawTextCentered(cy, "survived "+sessionTime(snap.Elapsed, tickRate))
	s.DrawTextColored((s.Width()-22)/2, cy+3, "enter: back to menu", core.ColorGray)
}

// sessionTime formats elapsed playing ticks as mm:ss.
func sessionTime(elapsed uint64, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	secs := elapsed / uint64(tickRate)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
