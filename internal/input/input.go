// Package input translates raw tilt/encoder/button samples into the
// normalized per-tick events consumed by the engine. It has no state beyond
// the debouncing thresholds, so any input source (keyboard emulation, SSH
// session, test fixture) can feed it.
package input

// Raw is one unfiltered sensor sample, gathered once per tick by the
// platform. Values mirror the handheld hardware: a signed accelerometer
// tilt reading, the rotary encoder movement since the previous sample, and
// the current button level.
type Raw struct {
	Tilt         float64 // Signed tilt reading (accelerometer units, ~±9)
	EncoderTicks int     // Encoder steps since the previous sample
	ButtonDown   bool    // Current button level (held = true)
}

// Event is the normalized input for a single simulation tick.
type Event struct {
	Move         int  // -1 left, 0 neutral, +1 right
	EncoderDelta int  // Clamped to [-1, +1] to prevent menu cursor overshoot
	Button       bool // Rising edge of the button this tick
}

// Normalizer converts Raw samples into Events. It applies a dead-zone to
// tilt, clamps encoder deltas, and detects button press edges.
type Normalizer struct {
	deadZone   float64
	lastButton bool
}

// NewNormalizer creates a normalizer with the given tilt dead-zone.
// Tilt readings with magnitude at or below the dead-zone register as
// neutral, preventing jitter-induced moves.
func NewNormalizer(deadZone float64) *Normalizer {
	if deadZone < 0 {
		deadZone = 0
	}
	return &Normalizer{deadZone: deadZone}
}

// Normalize converts one raw sample into the event for this tick.
// Out-of-range encoder deltas are clamped rather than surfaced as errors;
// a stuck button produces a single press edge and then nothing.
func (n *Normalizer) Normalize(raw Raw) Event {
	var ev Event

	switch {
	case raw.Tilt > n.deadZone:
		ev.Move = 1
	case raw.Tilt < -n.deadZone:
		ev.Move = -1
	}

	switch {
	case raw.EncoderTicks > 0:
		ev.EncoderDelta = 1
	case raw.EncoderTicks < 0:
		ev.EncoderDelta = -1
	}

	ev.Button = raw.ButtonDown && !n.lastButton
	n.lastButton = raw.ButtonDown

	return ev
}
