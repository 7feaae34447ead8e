package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// Mirrors defaults/breakout.yaml.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			Width:  480,
			Height: 620,
		},
		Paddle: PaddleConfig{
			Width:  58,
			Height: 11,
			Offset: 30,
			Step:   12,
		},
		Ball: BallConfig{
			Diameter:  18,
			SpeedY:    5,
			MinSpeedX: 1,
			MaxSpeedX: 5,
		},
		Bricks: BrickConfig{
			Rows:    10,
			PerRow:  10,
			SepH:    5,
			SepV:    4,
			Height:  8,
			YOffset: 70,
		},
		Gameplay: GameplayConfig{
			Tries:          3,
			FramesPerDigit: 60,
			GapFrames:      10,
		},
		LevelTwo: LevelTwoConfig{
			FirstBallDivisor:  1.25,
			SecondBallDivisor: 2,
		},
		Input: InputConfig{
			HoldTicks: 18,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
