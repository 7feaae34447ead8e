package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Paddle is the player-controlled bar. Only its horizontal position moves.
type Paddle struct {
	core.Shape
}

// NewPaddle creates a paddle centered horizontally at x.
func NewPaddle(x float64, cfg config.PaddleConfig) Paddle {
	return Paddle{Shape: core.NewShape(x, cfg.Offset+cfg.Height/2, cfg.Width, cfg.Height)}
}

// Move shifts the paddle by dx, keeping it fully inside [0, fieldWidth].
func (p *Paddle) Move(dx, fieldWidth float64) {
	half := p.W / 2
	p.X = core.ClampF(p.X+dx, half, fieldWidth-half)
}

// Deflects reports whether the ball bounces off the paddle this frame.
// Only a ball moving toward the paddle can bounce, so a ball still
// overlapping after its reflection does not bounce back.
func (p Paddle) Deflects(b Ball) bool {
	return b.VY < 0 && core.CornerInside(b.Shape, p.Shape)
}

// Brick is a single target in the grid.
type Brick struct {
	core.Shape
	Color    core.Color
	Collided bool // Set on the struck copy reported by Round.Struck
}

// NewBrick creates a brick from its top-left corner.
func NewBrick(left, top, w, h float64, c core.Color) Brick {
	return Brick{Shape: core.NewShape(left+w/2, top-h/2, w, h), Color: c}
}

// Hit reports whether any bounding-box corner of the ball is inside the brick.
func (b Brick) Hit(ball Ball) bool {
	return core.CornerInside(ball.Shape, b.Shape)
}

// BrickColor returns the band color of a 1-based grid row.
// Bands are two rows tall and repeat every ten rows.
func BrickColor(row int) core.Color {
	band := ((row - 1) % 10) / 2
	return core.BandColors[band]
}

// BuildBricks lays out the full brick grid, top row first.
func BuildBricks(cfg config.BreakoutConfig) []Brick {
	b := cfg.Bricks
	w := b.BrickWidth(cfg.Field.Width)
	bricks := make([]Brick, 0, b.Count())
	for row := 1; row <= b.Rows; row++ {
		top := cfg.Field.Height - b.YOffset - (b.Height+b.SepV)*float64(row-1)
		for col := 1; col <= b.PerRow; col++ {
			left := b.SepH/2 + (w+b.SepH)*float64(col-1)
			bricks = append(bricks, NewBrick(left, top, w, b.Height, BrickColor(row)))
		}
	}
	return bricks
}

// Ball is a moving ball. Its shape is the bounding box of the circle.
type Ball struct {
	core.Shape
	VX, VY float64
	Linked bool // Level 2: the sibling ball is still in play
	Out    bool // Exited past the bottom edge
}

// NewBall serves a ball from the field center toward the paddle with a
// random horizontal speed and direction.
func NewBall(cfg config.BreakoutConfig, rng *SimpleRNG) Ball {
	d := cfg.Ball.Diameter
	vx := rng.Uniform(cfg.Ball.MinSpeedX, cfg.Ball.MaxSpeedX) * rng.Sign()
	return Ball{
		Shape: core.NewShape(cfg.Field.Width/2, cfg.Field.Height/2, d, d),
		VX:    vx,
		VY:    -cfg.Ball.SpeedY,
	}
}

// bounceWalls reflects the ball off the side and top walls.
// After a bounce the velocity always points away from the wall.
func (b *Ball) bounceWalls(fieldWidth, fieldHeight float64) {
	if b.Right() >= fieldWidth {
		b.VX = -math.Abs(b.VX)
	} else if b.Left() <= 0 {
		b.VX = math.Abs(b.VX)
	}
	if b.Top() >= fieldHeight {
		b.VY = -math.Abs(b.VY)
	}
}

// advance moves the ball by its velocity divided by div.
func (b *Ball) advance(div float64) {
	b.X += b.VX / div
	b.Y += b.VY / div
}

// Exited reports whether the ball is entirely below the field.
func (b Ball) Exited() bool {
	return b.Top() <= 0
}
