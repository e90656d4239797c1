package engine

import "math/rand"

// milliRow is the fixed-point scale for obstacle positions and fall speeds.
// Positions advance by integral milli-rows so simulation stays deterministic
// across platforms; 1000 milli-rows is one playfield row.
const milliRow = 1000

// obstacle is a single falling claw. The lane is fixed at spawn; only the
// vertical position advances.
type obstacle struct {
	seq  uint64 // Monotonic spawn sequence number
	lane int
	y    int // Milli-rows below the top edge
}

// row returns the playfield row the obstacle currently occupies.
func (o obstacle) row() int {
	return o.y / milliRow
}

// obstacleField owns the set of active obstacles for one Playing session.
// The state machine is the only caller; the field never mutates session
// state itself, it just reports misses and contacts.
type obstacleField struct {
	active  []obstacle // Ascending spawn order
	nextSeq uint64
	ceiling int
}

func newObstacleField(ceiling int) obstacleField {
	return obstacleField{
		active:  make([]obstacle, 0, ceiling),
		ceiling: ceiling,
	}
}

// reset clears all obstacles. Called on entering Playing and on leaving it
// for Menu or GameOver; only Paused keeps the field intact.
func (f *obstacleField) reset() {
	f.active = f.active[:0]
}

// advance moves every active obstacle down by fallSpeed milli-rows and
// retires those that have fallen past bottomRow. Returns the number of
// retired obstacles; each is a dodge (score-eligible, no penalty).
func (f *obstacleField) advance(fallSpeed, bottomRow int) int {
	missed := 0
	kept := f.active[:0]
	for _, o := range f.active {
		o.y += fallSpeed
		if o.row() > bottomRow {
			missed++
			continue
		}
		kept = append(kept, o)
	}
	f.active = kept
	return missed
}

// maybeSpawn creates exactly one obstacle when tick lands on the spawn
// interval. The lane is chosen pseudo-randomly but never the avatar's lane,
// so a spawn can always be dodged. When the field is at its ceiling the
// spawn is silently skipped; that is backpressure, not an error.
func (f *obstacleField) maybeSpawn(spawnEvery int, tick uint64, avatarLane, lanes int, rng *rand.Rand) bool {
	if tick%uint64(spawnEvery) != 0 {
		return false
	}
	if len(f.active) >= f.ceiling {
		return false
	}

	// Pick among the lanes-1 non-avatar lanes
	lane := rng.Intn(lanes - 1)
	if lane >= avatarLane {
		lane++
	}

	f.nextSeq++
	f.active = append(f.active, obstacle{
		seq:  f.nextSeq,
		lane: lane,
		y:    0,
	})
	return true
}

// count returns the number of active obstacles.
func (f *obstacleField) count() int {
	return len(f.active)
}
