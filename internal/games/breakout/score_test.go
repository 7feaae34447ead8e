package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestScoreRecordAdd(t *testing.T) {
	var rec ScoreRecord
	assert.Equal(t, 0, rec.Len())

	rec.Add(2, 40)
	rec.Add(1, 100)

	p, ok := rec.Points(1)
	assert.True(t, ok)
	assert.Equal(t, 100, p)
	_, ok = rec.Points(3)
	assert.False(t, ok)
	assert.Equal(t, 2, rec.Len())
	assert.Equal(t, 140, rec.Total())

	rec.Reset()
	assert.Equal(t, 0, rec.Len())
	rec.Add(1, 5)
	assert.Equal(t, 1, rec.Len())
}

func TestScoreRecordPreconditions(t *testing.T) {
	var rec ScoreRecord
	assert.Panics(t, func() { rec.Add(0, 1) })
	assert.Panics(t, func() { rec.Add(RoundsPerLevel+1, 1) })

	rec.Add(3, 1)
	assert.Panics(t, func() { rec.Add(3, 2) })
}

func TestScoreboardRoundOrder(t *testing.T) {
	var rec ScoreRecord
	rec.Add(3, 17)
	rec.Add(1, 100)

	sb := NewScoreboard(rec)
	assert.Equal(t, "Try: 1 ....... Points: 100", sb[0].Text)
	assert.Empty(t, sb[1].Text)
	assert.Equal(t, "Try: 3 ....... Points: 17", sb[2].Text)
	assert.Empty(t, sb[3].Text)
	assert.Empty(t, sb[4].Text)
	assert.False(t, sb.Empty())

	want := []core.Color{core.ColorRed, core.ColorOrange, core.ColorYellow, core.ColorGreen, core.ColorCyan}
	for i, slot := range sb {
		assert.Equal(t, want[i], slot.Color, "slot %d", i)
	}
}

func TestScoreboardEmpty(t *testing.T) {
	assert.True(t, NewScoreboard(ScoreRecord{}).Empty())
}
