package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestBuildBricksLayout(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	bricks := BuildBricks(cfg)
	require.Len(t, bricks, 100)

	first := bricks[0]
	assert.InDelta(t, 2.5, first.Left(), 1e-9)
	assert.InDelta(t, 550, first.Top(), 1e-9)
	assert.InDelta(t, 43, first.W, 1e-9)
	assert.InDelta(t, 8, first.H, 1e-9)

	last := bricks[99]
	assert.InDelta(t, 434.5, last.Left(), 1e-9)
	assert.InDelta(t, 442, last.Top(), 1e-9)

	for i, b := range bricks {
		assert.GreaterOrEqual(t, b.Left(), 0.0, "brick %d", i)
		assert.LessOrEqual(t, b.Right(), cfg.Field.Width, "brick %d", i)
		assert.False(t, b.Collided)
	}
}

func TestBrickColorBands(t *testing.T) {
	tests := []struct {
		row  int
		want core.Color
	}{
		{1, core.ColorRed},
		{2, core.ColorRed},
		{3, core.ColorOrange},
		{5, core.ColorYellow},
		{7, core.ColorGreen},
		{10, core.ColorCyan},
		{11, core.ColorRed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BrickColor(tt.row), "row %d", tt.row)
	}

	bricks := BuildBricks(config.DefaultBreakoutConfig())
	assert.Equal(t, core.ColorOrange, bricks[20].Color)
	assert.Equal(t, core.ColorCyan, bricks[99].Color)
}

func TestNewPaddle(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	p := NewPaddle(240, cfg.Paddle)
	assert.Equal(t, 240.0, p.X)
	assert.InDelta(t, 30, p.Bottom(), 1e-9)
	assert.InDelta(t, 41, p.Top(), 1e-9)
}

func TestPaddleMoveClamps(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	p := NewPaddle(240, cfg.Paddle)

	p.Move(-1000, cfg.Field.Width)
	assert.Equal(t, 29.0, p.X)
	p.Move(1000, cfg.Field.Width)
	assert.Equal(t, 451.0, p.X)
	p.Move(-12, cfg.Field.Width)
	assert.Equal(t, 439.0, p.X)
}

func TestPaddleDeflectsOnlyDescendingBall(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	p := NewPaddle(240, cfg.Paddle)
	ball := Ball{Shape: core.NewShape(240, p.Top()+7, 18, 18)}

	ball.VY = -5
	assert.True(t, p.Deflects(ball))

	ball.VY = 5
	assert.False(t, p.Deflects(ball))

	far := Ball{Shape: core.NewShape(240, 300, 18, 18), VY: -5}
	assert.False(t, p.Deflects(far))
}

func TestNewBallServe(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	rng := NewSimpleRNG(99)

	var neg, pos int
	for rangeIdx := 0; rangeIdx < 200; rangeIdx++ {
		b := NewBall(cfg, rng)
		assert.Equal(t, 240.0, b.X)
		assert.Equal(t, 310.0, b.Y)
		assert.Equal(t, 18.0, b.W)
		assert.Equal(t, -5.0, b.VY)

		mag := b.VX
		if mag < 0 {
			neg++
			mag = -mag
		} else {
			pos++
		}
		assert.GreaterOrEqual(t, mag, 1.0)
		assert.Less(t, mag, 5.0)
		assert.False(t, b.Linked)
		assert.False(t, b.Out)
	}
	assert.Positive(t, neg)
	assert.Positive(t, pos)
}

func TestServeDirectionVariesForEverySeed(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	for _, seed := range []int64{1, 2, 7, 42, 99, 12345} {
		rng := NewSimpleRNG(seed)
		var neg int
		for rangeIdx := 0; rangeIdx < 1000; rangeIdx++ {
			if NewBall(cfg, rng).VX < 0 {
				neg++
			}
		}
		assert.Greater(t, neg, 350, "seed %d", seed)
		assert.Less(t, neg, 650, "seed %d", seed)
	}
}

func TestLevelTwoServeDirectionsIndependent(t *testing.T) {
	var same, opposite int
	for seed := int64(1); seed <= 200; seed++ {
		r := NewRound(2, config.DefaultBreakoutConfig(), NewSimpleRNG(seed))
		r.ServeBall()
		b := r.Balls()
		require.Len(t, b, 2)
		if (b[0].VX < 0) == (b[1].VX < 0) {
			same++
		} else {
			opposite++
		}
	}
	assert.Greater(t, same, 50)
	assert.Greater(t, opposite, 50)
}

func TestSignDoesNotAlternate(t *testing.T) {
	r := NewSimpleRNG(3)
	prev := r.Sign()
	repeats := 0
	for rangeIdx := 0; rangeIdx < 200; rangeIdx++ {
		s := r.Sign()
		if s == prev {
			repeats++
		}
		prev = s
	}
	assert.Greater(t, repeats, 50)
	assert.Less(t, repeats, 150)
}

func TestBallBounceWalls(t *testing.T) {
	tests := []struct {
		name           string
		x, y, vx, vy   float64
		wantVX, wantVY float64
	}{
		{"right wall", 475, 310, 3, -5, -3, -5},
		{"right wall already reflected", 475, 310, -3, -5, -3, -5},
		{"left wall", 5, 310, -3, -5, 3, -5},
		{"top wall", 240, 615, 2, 5, 2, -5},
		{"corner", 475, 615, 3, 5, -3, -5},
		{"open field", 240, 310, 3, 5, 3, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Ball{Shape: core.NewShape(tt.x, tt.y, 18, 18), VX: tt.vx, VY: tt.vy}
			b.bounceWalls(480, 620)
			assert.Equal(t, tt.wantVX, b.VX)
			assert.Equal(t, tt.wantVY, b.VY)
		})
	}
}

func TestBallExited(t *testing.T) {
	assert.False(t, Ball{Shape: core.NewShape(240, 10, 18, 18)}.Exited())
	assert.True(t, Ball{Shape: core.NewShape(240, -9, 18, 18)}.Exited())
	assert.True(t, Ball{Shape: core.NewShape(240, -50, 18, 18)}.Exited())
}

func TestSimpleRNGDeterministic(t *testing.T) {
	a, b := NewSimpleRNG(5), NewSimpleRNG(5)
	for rangeIdx := 0; rangeIdx < 50; rangeIdx++ {
		assert.Equal(t, a.Next(), b.Next())
	}
	assert.Equal(t, a.State(), b.State())

	r := NewSimpleRNG(0)
	for rangeIdx := 0; rangeIdx < 1000; rangeIdx++ {
		f := r.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
		n := r.Intn(7)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 7)
	}
	assert.Equal(t, 0, r.Intn(0))
}
