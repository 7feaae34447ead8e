// Package breakout implements a two-level Breakout: a session state machine
// driving rounds of paddle, ball and brick physics.
package breakout

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "breakout"

// configPath stores the custom config path set via CLI
var configPath string

// logger receives session events
var logger = log.Default()

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used for session events.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// Game adapts a Session to the registry.Game interface.
type Game struct {
	session *Session
	cfg     config.BreakoutConfig
	runtime core.RuntimeConfig
}

// New creates a game using the default configuration until Reset.
func New() *Game {
	cfg := config.DefaultBreakoutConfig()
	return &Game{cfg: cfg, session: NewSession(cfg, 0)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Breakout" }

// Reset loads the configuration and starts a new session in INACTIVE.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultBreakoutConfig()
	}
	g.cfg = cfg

	g.session = NewSession(cfg, runtime.Seed)
	g.session.SetHooks(Hooks{
		OnTransition: func(t Transition) {
			logger.Debug("state change",
				"from", t.From, "to", t.To,
				"level", t.Level, "round", t.Round,
				"tries", t.Tries, "bricks", t.Bricks)
		},
		OnRoundComplete: func(r RoundResult) {
			logger.Info("round complete",
				"level", r.Level, "round", r.Round,
				"points", r.Points, "won", r.Won)
			snap := g.session.Snapshot()
			logger.Debug("round snapshot", "hash", fmt.Sprintf("%016x", snap.Hash()))
		},
		OnBrickHit: func(b Brick) {
			logger.Debug("brick hit", "x", b.X, "y", b.Y)
		},
	})
}

// Step advances the session by one frame.
func (g *Game) Step(in core.InputSource, dt float64) core.StepResult {
	g.session.Update(in, dt)
	return core.StepResult{State: g.State()}
}

// Render draws the session onto dst.
func (g *Game) Render(dst core.Surface) {
	g.session.Draw(dst)
}

// World returns the playfield size in world units.
func (g *Game) World() (float64, float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// State returns the current game summary.
func (g *Game) State() core.GameState {
	s := g.session
	st := core.GameState{
		Phase:  s.State().String(),
		Level:  s.Level(),
		Round:  s.Rounds(),
		Paused: !s.State().IsActive() && s.State() != StateCountdown && s.State() != StateNewGame,
	}
	if r := s.Round(); r != nil {
		st.Score = r.Destroyed()
		st.Tries = r.Tries()
	}
	return st
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the configuration loaded by the last Reset.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}
