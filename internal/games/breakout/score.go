package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// RoundsPerLevel is how many rounds are played before the level changes.
const RoundsPerLevel = 5

// ScoreRecord maps a round index (1..RoundsPerLevel) to the points it earned.
// Each index is recorded at most once per level.
type ScoreRecord struct {
	points map[int]int
}

// Add records the points of a round. Panics if the index is out of range
// or already recorded.
func (r *ScoreRecord) Add(round, points int) {
	if round < 1 || round > RoundsPerLevel {
		panic(fmt.Sprintf("breakout: round %d outside 1..%d", round, RoundsPerLevel))
	}
	if r.points == nil {
		r.points = make(map[int]int, RoundsPerLevel)
	}
	if _, ok := r.points[round]; ok {
		panic(fmt.Sprintf("breakout: round %d already scored", round))
	}
	r.points[round] = points
}

// Points returns the points recorded for a round.
func (r ScoreRecord) Points(round int) (int, bool) {
	p, ok := r.points[round]
	return p, ok
}

// Len returns the number of recorded rounds.
func (r ScoreRecord) Len() int {
	return len(r.points)
}

// Total returns the sum of all recorded points.
func (r ScoreRecord) Total() int {
	total := 0
	for _, p := range r.points {
		total += p
	}
	return total
}

// Reset clears every recorded round.
func (r *ScoreRecord) Reset() {
	clear(r.points)
}

// ScoreSlot is one display row of the scoreboard.
type ScoreSlot struct {
	Text  string
	Color core.Color
}

// Scoreboard holds one display slot per round index, in round order.
// Slots for rounds without a score are empty.
type Scoreboard [RoundsPerLevel]ScoreSlot

// NewScoreboard renders a record into display slots.
func NewScoreboard(rec ScoreRecord) Scoreboard {
	var sb Scoreboard
	for i := range sb {
		sb[i].Color = core.BandColors[i%len(core.BandColors)]
		if p, ok := rec.Points(i + 1); ok {
			sb[i].Text = fmt.Sprintf("Try: %d ....... Points: %d", i+1, p)
		}
	}
	return sb
}

// Empty reports whether no slot has text.
func (sb Scoreboard) Empty() bool {
	for _, s := range sb {
		if s.Text != "" {
			return false
		}
	}
	return true
}
