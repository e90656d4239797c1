package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tiltdodge/dodge/internal/input"
)

// KeyMapper emulates the handheld's sensors from keyboard input. Arrow keys
// stand in for tilting the device, up/down for rotating the encoder, and
// enter for the push button. This centralizes key bindings and makes them
// testable.
type KeyMapper struct {
	// tilt is the accelerometer reading a full keypress emulates. A tap
	// produces one saturated-tilt frame, which the normalizer turns into
	// a single lane step.
	tilt float64
}

// NewKeyMapper creates a key mapper that emulates tilts of the given
// magnitude.
func NewKeyMapper(tilt float64) *KeyMapper {
	return &KeyMapper{tilt: tilt}
}

// Apply folds a key message into the raw sensor frame being assembled for
// the next tick. Returns true if the key was a quit request.
func (km *KeyMapper) Apply(msg tea.KeyMsg, raw *input.Raw) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true

	case "left", "a", "h":
		raw.Tilt = -km.tilt
	case "right", "d", "l":
		raw.Tilt = km.tilt

	case "up", "w", "k": // vim-style k for up
		raw.EncoderTicks--
	case "down", "s", "j": // vim-style j for down
		raw.EncoderTicks++

	case "enter", " ", "p":
		raw.ButtonDown = true
	}

	return false
}
