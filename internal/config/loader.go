package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the encoding from a file extension. Unknown extensions are YAML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.breakout/breakout.yaml -> ~/.breakout/breakout.toml ->
// ./configs/breakout.yaml -> embedded default.
// Keys missing from a file keep their default values. An explicit path that
// cannot be read, parsed or validated is an error; discovered files that fail
// are skipped.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return DefaultBreakoutConfig(), err
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultBreakoutYAML, FormatYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads, parses and validates a single config file.
func LoadFile(path string) (BreakoutConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BreakoutConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data, FormatFor(path))
	if err != nil {
		return BreakoutConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data on top of the defaults and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Parse(data []byte, format Format) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("unknown keys: %v", undecoded)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF and leaves the defaults alone.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "breakout.yaml"),
			filepath.Join(dir, "breakout.toml"),
		)
	}
	return append(paths, filepath.Join("configs", "breakout.yaml"))
}

// userConfigDir returns ~/.breakout, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout")
}

// Validate reports every inconsistency in the configuration.
func (c BreakoutConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.step", c.Paddle.Step)
	positive("ball.diameter", c.Ball.Diameter)
	positive("ball.speed_y", c.Ball.SpeedY)
	positive("ball.min_speed_x", c.Ball.MinSpeedX)
	positive("bricks.height", c.Bricks.Height)
	positive("level_two.first_ball_divisor", c.LevelTwo.FirstBallDivisor)
	positive("level_two.second_ball_divisor", c.LevelTwo.SecondBallDivisor)

	if c.Paddle.Offset < 0 {
		errs = append(errs, fmt.Errorf("paddle.offset must not be negative, got %v", c.Paddle.Offset))
	}
	if c.Paddle.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("paddle.width %v exceeds field.width %v", c.Paddle.Width, c.Field.Width))
	}
	if c.Ball.MaxSpeedX < c.Ball.MinSpeedX {
		errs = append(errs, fmt.Errorf("ball.max_speed_x %v is below ball.min_speed_x %v", c.Ball.MaxSpeedX, c.Ball.MinSpeedX))
	}
	if c.Bricks.Rows <= 0 || c.Bricks.PerRow <= 0 {
		errs = append(errs, fmt.Errorf("bricks grid must be at least 1x1, got %dx%d", c.Bricks.Rows, c.Bricks.PerRow))
	} else {
		if c.Bricks.BrickWidth(c.Field.Width) <= 0 {
			errs = append(errs, fmt.Errorf("bricks.sep_h %v leaves no room for %d bricks per row", c.Bricks.SepH, c.Bricks.PerRow))
		}
		gridBottom := c.Field.Height - c.Bricks.YOffset -
			float64(c.Bricks.Rows)*c.Bricks.Height - float64(c.Bricks.Rows-1)*c.Bricks.SepV
		if gridBottom <= c.Paddle.Offset+c.Paddle.Height {
			errs = append(errs, errors.New("brick grid overlaps the paddle row"))
		}
	}
	if c.Gameplay.Tries <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.tries must be positive, got %d", c.Gameplay.Tries))
	}
	if c.Gameplay.FramesPerDigit <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.frames_per_digit must be positive, got %d", c.Gameplay.FramesPerDigit))
	}
	if c.Gameplay.GapFrames < 0 || 2*c.Gameplay.GapFrames >= c.Gameplay.FramesPerDigit {
		errs = append(errs, fmt.Errorf("gameplay.gap_frames %d must be in [0, frames_per_digit/2)", c.Gameplay.GapFrames))
	}
	if c.Input.HoldTicks < 0 {
		errs = append(errs, fmt.Errorf("input.hold_ticks must not be negative, got %d", c.Input.HoldTicks))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
