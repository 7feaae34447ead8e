package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

type recorder struct {
	rects    []core.Shape
	ellipses []core.Shape
	labels   []core.Label
}

func (r *recorder) FillRect(s core.Shape, _, _ core.Color) { r.rects = append(r.rects, s) }
func (r *recorder) FillEllipse(s core.Shape, _, _ core.Color) { r.ellipses = append(r.ellipses, s) }
func (r *recorder) DrawLabel(l core.Label) { r.labels = append(r.labels, l) }

func (r *recorder) texts() []string {
	out := make([]string, 0, len(r.labels))
	for _, l := range r.labels {
		out = append(out, l.Text)
	}
	return out
}

func TestDrawInactive(t *testing.T) {
	s := newTestSession(t)
	var rec recorder
	s.Draw(&rec)

	assert.Empty(t, rec.rects)
	assert.Empty(t, rec.ellipses)
	assert.Equal(t, []string{MsgWelcome}, rec.texts())
}

func TestDrawActive(t *testing.T) {
	s := newTestSession(t)
	startRound(t, s)

	var rec recorder
	s.Draw(&rec)

	assert.Len(t, rec.rects, 101, "bricks and paddle")
	assert.Len(t, rec.ellipses, 1)
	assert.Equal(t, []string{"SCORE: 0"}, rec.texts())
	assert.Equal(t, ScoreColor, rec.labels[0].Color)
	assert.Equal(t, LabelFont, rec.labels[0].Font)
}

func TestDrawCountdownDigitAtCenter(t *testing.T) {
	s := newTestSession(t)
	s.Update(anyKey, frameTime)
	s.Update(noKeys, frameTime)

	var rec recorder
	s.Draw(&rec)

	assert.Len(t, rec.rects, 101)
	assert.Empty(t, rec.ellipses, "no ball before the serve")
	assert.Equal(t, []string{"SCORE: 0", "3"}, rec.texts())
	assert.Equal(t, 310.0, rec.labels[1].Y)
}

func TestDrawPausedHidesExitedBall(t *testing.T) {
	s := newTestSession(t)
	r := startRound(t, s)
	dropBalls(r)
	s.Update(noKeys, frameTime)
	s.Update(noKeys, frameTime)

	var rec recorder
	s.Draw(&rec)

	assert.Empty(t, rec.ellipses)
	assert.Contains(t, rec.texts(), MsgNewBall)
}

func TestDrawCompleteShowsScoreboard(t *testing.T) {
	s := newTestSession(t)
	winRound(t, s)

	var rec recorder
	s.Draw(&rec)

	assert.Empty(t, rec.rects, "playfield hidden")
	assert.Empty(t, rec.ellipses)
	assert.Equal(t, []string{"SCORE: 100", MsgWin, "Try: 1 ....... Points: 100"}, rec.texts())
	assert.Equal(t, core.ColorRed, rec.labels[2].Color)
	assert.Less(t, rec.labels[2].Y, rec.labels[1].Y, "scoreboard below the message")
}
