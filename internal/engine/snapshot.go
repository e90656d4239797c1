package engine

// ObstacleView is the render-facing view of one active obstacle.
type ObstacleView struct {
	Seq  uint64
	Lane int
	Row  int
}

// Snapshot captures everything the output adapter needs to render one
// frame: display, life LEDs, and the explosion feedback all derive from it.
// It is also the basis for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	State      State
	MenuCursor int
	Difficulty Difficulty
	Lanes      int // Playfield width, so the renderer needs no config
	Rows       int // Playfield height
	AvatarLane int
	Obstacles  []ObstacleView
	Lives      int
	Score      int
	Elapsed    uint64 // Playing ticks survived this session
	Explosion  bool   // A collision happened on this tick
}

// snapshot builds the frame snapshot for the current tick.
func (g *Game) snapshot() Snapshot {
	obstacles := make([]ObstacleView, len(g.field.active))
	for i, o := range g.field.active {
		obstacles[i] = ObstacleView{Seq: o.seq, Lane: o.lane, Row: o.row()}
	}

	return Snapshot{
		Tick:       g.tick,
		State:      g.state,
		MenuCursor: g.menuCursor,
		Difficulty: g.difficulty,
		Lanes:      g.cfg.Playfield.Lanes,
		Rows:       g.cfg.Playfield.Rows,
		AvatarLane: g.avatarLane,
		Obstacles:  obstacles,
		Lives:      g.lives,
		Score:      g.score,
		Elapsed:    g.elapsed,
		Explosion:  g.explosion,
	}
}

// Hash folds the snapshot into a single value for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MenuCursor) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Difficulty) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AvatarLane) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + snap.Elapsed
	if snap.Explosion {
		h = h*31 + 1
	}
	for _, o := range snap.Obstacles {
		h = h*31 + o.Seq
		h = h*31 + uint64(o.Lane) //#nosec G115 -- hash computation
		h = h*31 + uint64(o.Row)  //#nosec G115 -- hash computation
	}
	return h
}
