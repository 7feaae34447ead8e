package breakout

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Status reports what happened to the balls of a round.
type Status int

const (
	StatusInPlay Status = iota
	StatusLost          // Every served ball exited; consumed by the session
)

func (s Status) String() string {
	if s == StatusLost {
		return "lost"
	}
	return "in-play"
}

// Round owns the paddle, bricks and balls of a single game.
// A new Round is created for every new game; it is never reset in place.
type Round struct {
	cfg   config.BreakoutConfig
	rng   *SimpleRNG
	level int

	paddle Paddle
	bricks []Brick
	balls  []Ball // Empty until the first serve

	tries        int
	status       Status
	storedBricks int
	struck       []Brick // Bricks removed by the last UpdateBall
}

// NewRound creates a round with a full brick grid for level 1 or 2.
// Panics on any other level.
func NewRound(level int, cfg config.BreakoutConfig, rng *SimpleRNG) *Round {
	if level != 1 && level != 2 {
		panic(fmt.Sprintf("breakout: invalid level %d", level))
	}
	bricks := BuildBricks(cfg)
	return &Round{
		cfg:          cfg,
		rng:          rng,
		level:        level,
		paddle:       NewPaddle(cfg.Field.Width/2, cfg.Paddle),
		bricks:       bricks,
		tries:        cfg.Gameplay.Tries,
		storedBricks: len(bricks),
	}
}

// Level returns the round's level.
func (r *Round) Level() int { return r.level }

// Tries returns the number of tries left.
func (r *Round) Tries() int { return r.tries }

// BrickCount returns the number of bricks still standing.
func (r *Round) BrickCount() int { return len(r.bricks) }

// StoredBrickCount returns the brick count the round started with.
func (r *Round) StoredBrickCount() int { return r.storedBricks }

// Status returns the current ball status.
func (r *Round) Status() Status { return r.status }

// ClearStatus marks a reported ball loss as consumed.
func (r *Round) ClearStatus() { r.status = StatusInPlay }

// Destroyed returns how many bricks have been cleared so far.
func (r *Round) Destroyed() int { return r.storedBricks - len(r.bricks) }

// Paddle returns the paddle.
func (r *Round) Paddle() Paddle { return r.paddle }

// Bricks returns the remaining bricks. The slice must not be modified.
func (r *Round) Bricks() []Brick { return r.bricks }

// Struck returns the bricks removed during the last UpdateBall, each with
// Collided set. The slice is reused by the next update.
func (r *Round) Struck() []Brick { return r.struck }

// Balls returns the served balls, including ones that already exited.
// The slice must not be modified.
func (r *Round) Balls() []Ball { return r.balls }

// UpdatePaddle moves the paddle by one step per held direction key.
// Holding both directions cancels out.
func (r *Round) UpdatePaddle(in core.InputSource) {
	var dx float64
	if in.IsKeyDown(core.KeyLeft) {
		dx -= r.cfg.Paddle.Step
	}
	if in.IsKeyDown(core.KeyRight) {
		dx += r.cfg.Paddle.Step
	}
	r.paddle.Move(dx, r.cfg.Field.Width)
}

// ServeBall puts one ball (level 1) or two balls (level 2) in play,
// replacing any balls from a previous try.
func (r *Round) ServeBall() {
	n := r.level
	r.balls = r.balls[:0]
	for rangeIdx := 0; rangeIdx < n; rangeIdx++ {
		b := NewBall(r.cfg, r.rng)
		b.Linked = n > 1
		r.balls = append(r.balls, b)
	}
	r.status = StatusInPlay
}

// UpdateBall advances every ball still in play by one frame, then checks
// for lost balls.
func (r *Round) UpdateBall() {
	r.struck = r.struck[:0]
	for i := range r.balls {
		if r.balls[i].Out {
			continue
		}
		r.updateSingleBall(i)
	}
	r.checkLostBall()
}

// updateSingleBall runs walls, paddle, bricks and movement for ball i.
func (r *Round) updateSingleBall(i int) {
	ball := &r.balls[i]
	ball.bounceWalls(r.cfg.Field.Width, r.cfg.Field.Height)

	if r.paddle.Deflects(*ball) {
		ball.VY = -ball.VY
	}

	// At most one brick per ball per frame
	for j := range r.bricks {
		if r.bricks[j].Hit(*ball) {
			hit := r.bricks[j]
			hit.Collided = true
			r.struck = append(r.struck, hit)
			ball.VY = -ball.VY
			r.bricks = slices.Delete(r.bricks, j, j+1)
			break
		}
	}

	ball.advance(r.speedDivisor(i))
}

// speedDivisor slows each level-2 ball while its sibling is still in play.
func (r *Round) speedDivisor(i int) float64 {
	if r.level != 2 || !r.balls[i].Linked {
		return 1
	}
	if i == 0 {
		return r.cfg.LevelTwo.FirstBallDivisor
	}
	return r.cfg.LevelTwo.SecondBallDivisor
}

// checkLostBall marks exited balls and costs a try once no ball is left.
// On level 2 the first exit unlinks both balls so the survivor speeds up.
func (r *Round) checkLostBall() {
	exited := false
	for i := range r.balls {
		if !r.balls[i].Out && r.balls[i].Exited() {
			r.balls[i].Out = true
			exited = true
		}
	}
	if !exited {
		return
	}

	if r.level == 2 {
		for i := range r.balls {
			r.balls[i].Linked = false
		}
	}

	for _, b := range r.balls {
		if !b.Out {
			return
		}
	}
	if r.tries <= 0 {
		panic("breakout: ball lost with no tries left")
	}
	r.tries--
	r.status = StatusLost
}
