// Package config provides YAML/TOML-based game configuration loading for
// breakout: playfield geometry, entity sizes, speeds and timing.
package config

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Field    FieldConfig    `yaml:"field" toml:"field"`
	Paddle   PaddleConfig   `yaml:"paddle" toml:"paddle"`
	Ball     BallConfig     `yaml:"ball" toml:"ball"`
	Bricks   BrickConfig    `yaml:"bricks" toml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay" toml:"gameplay"`
	LevelTwo LevelTwoConfig `yaml:"level_two" toml:"level_two"`
	Input    InputConfig    `yaml:"input" toml:"input"`
}

// FieldConfig defines the playfield in world units (origin bottom-left, y up).
type FieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Offset float64 `yaml:"offset" toml:"offset"` // Gap between field bottom and paddle bottom
	Step   float64 `yaml:"step" toml:"step"`     // Horizontal movement per frame
}

// BallConfig defines ball size and serve velocity.
type BallConfig struct {
	Diameter  float64 `yaml:"diameter" toml:"diameter"`
	SpeedY    float64 `yaml:"speed_y" toml:"speed_y"`         // Vertical speed magnitude, served toward the paddle
	MinSpeedX float64 `yaml:"min_speed_x" toml:"min_speed_x"` // Horizontal speed magnitude range
	MaxSpeedX float64 `yaml:"max_speed_x" toml:"max_speed_x"`
}

// BrickConfig defines the brick grid. Brick width is derived from the
// field width, the column count and the horizontal separation.
type BrickConfig struct {
	Rows    int     `yaml:"rows" toml:"rows"`
	PerRow  int     `yaml:"per_row" toml:"per_row"`
	SepH    float64 `yaml:"sep_h" toml:"sep_h"`
	SepV    float64 `yaml:"sep_v" toml:"sep_v"`
	Height  float64 `yaml:"height" toml:"height"`
	YOffset float64 `yaml:"y_offset" toml:"y_offset"` // Gap between field top and the first row
}

// GameplayConfig defines tries and countdown timing.
type GameplayConfig struct {
	Tries          int `yaml:"tries" toml:"tries"`
	FramesPerDigit int `yaml:"frames_per_digit" toml:"frames_per_digit"` // Frames each countdown second lasts
	GapFrames      int `yaml:"gap_frames" toml:"gap_frames"`             // Half-width of the blank gap between digits
}

// LevelTwoConfig defines the two-ball speed divisors used while both balls live.
type LevelTwoConfig struct {
	FirstBallDivisor  float64 `yaml:"first_ball_divisor" toml:"first_ball_divisor"`
	SecondBallDivisor float64 `yaml:"second_ball_divisor" toml:"second_ball_divisor"`
}

// InputConfig tunes host input handling.
type InputConfig struct {
	// HoldTicks is how long a terminal key counts as held after its last key event.
	HoldTicks int `yaml:"hold_ticks" toml:"hold_ticks"`
}

// BrickWidth returns the width of a single brick.
func (b BrickConfig) BrickWidth(fieldWidth float64) float64 {
	if b.PerRow <= 0 {
		return 0
	}
	return fieldWidth/float64(b.PerRow) - b.SepH
}

// Count returns the number of bricks in a fresh grid.
func (b BrickConfig) Count() int {
	return b.Rows * b.PerRow
}

// CountdownFrames returns the total countdown length in frames.
func (g GameplayConfig) CountdownFrames() int {
	return 3 * g.FramesPerDigit
}
