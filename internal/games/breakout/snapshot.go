package breakout

import "math"

// Snapshot contains the complete session state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Frame  uint64
	State  string
	Level  int
	Rounds int
	Timer  int

	// Zero values without a round
	HasRound     bool
	Tries        int
	Status       int
	StoredBricks int
	PaddleX      float64

	// Each ball is 6 values: X, Y, VX, VY, Linked, Out
	BallCount int
	BallData  []float64

	// Each remaining brick is 2 values: X, Y
	BrickData []float64

	// Points per round index, -1 when not recorded
	Scores [RoundsPerLevel]int

	RNGState uint64
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:    s.frame,
		State:    s.state.String(),
		Level:    s.level,
		Rounds:   s.rounds,
		Timer:    s.timer,
		RNGState: s.rng.State(),
	}

	for i := range snap.Scores {
		snap.Scores[i] = -1
		if p, ok := s.record.Points(i + 1); ok {
			snap.Scores[i] = p
		}
	}

	r := s.round
	if r == nil {
		return snap
	}
	snap.HasRound = true
	snap.Tries = r.Tries()
	snap.Status = int(r.Status())
	snap.StoredBricks = r.StoredBrickCount()
	snap.PaddleX = r.Paddle().X

	balls := r.Balls()
	snap.BallCount = len(balls)
	snap.BallData = make([]float64, 0, len(balls)*6)
	for _, b := range balls {
		snap.BallData = append(snap.BallData, b.X, b.Y, b.VX, b.VY, boolf(b.Linked), boolf(b.Out))
	}

	bricks := r.Bricks()
	snap.BrickData = make([]float64, 0, len(bricks)*2)
	for _, b := range bricks {
		snap.BrickData = append(snap.BrickData, b.X, b.Y)
	}
	return snap
}

func boolf(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Frame
	for _, c := range []byte(snap.State) {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Level)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Rounds)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Timer)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Tries)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Status)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.StoredBricks) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)    //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	if snap.HasRound {
		h = h*31 + 1
	}

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BrickData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.Scores {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
