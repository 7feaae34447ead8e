package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Prompts shown between and after rounds.
const (
	MsgWelcome    = "Welcome to Breakout!\nPress any key to play Level 1"
	MsgNewBall    = "Press any key for a new ball"
	MsgWin        = "Congratulations! You win!\nPress any key to play again\n\nScoreboard:"
	MsgLoss       = "LOSER\nPress any key to play again\n\nScoreboard:"
	MsgAdvance    = "Can you handle LEVEL 2?\nPress any key to continue"
	MsgBackToOne  = "To go back to Level 1,\npress any key."
	MsgLevelTwo   = "LEVEL 2\n\nTwo balls will be served.\nPress any key if you dare."
	scoreLabelFmt = "SCORE: %d"
)

// Transition describes a single state change.
type Transition struct {
	From, To State
	Frame    uint64
	Level    int
	Round    int // Completed rounds in the level after the change
	Tries    int // Tries left in the current round, 0 without one
	Bricks   int // Bricks left in the current round, 0 without one
}

// RoundResult describes a finished round.
type RoundResult struct {
	Level  int
	Round  int
	Points int
	Won    bool
}

// Hooks receive session events. Nil hooks are skipped.
type Hooks struct {
	OnTransition    func(Transition)
	OnRoundComplete func(RoundResult)
	OnBrickHit      func(Brick)
}

// View is the display state, derived from the session after every update.
type View struct {
	Message        string // Centered prompt or countdown digit, may be empty
	Score          string // Running score label, may be empty
	ShowPlayfield  bool
	ShowScoreboard bool
	Scoreboard     Scoreboard
}

// Session drives the game phase by phase. It owns the current Round and
// the scores of the level being played.
type Session struct {
	cfg   config.BreakoutConfig
	rng   *SimpleRNG
	hooks Hooks

	state  State
	round  *Round
	level  int
	rounds int // Completed rounds in the current level
	timer  int // Countdown frames since entering COUNTDOWN
	frame  uint64
	scored bool // Current round's points are in the record

	edge   core.EdgeDetector
	record ScoreRecord
	view   View
}

// NewSession creates a session waiting in INACTIVE. The seed drives every
// serve, so equal seeds and inputs replay identically.
func NewSession(cfg config.BreakoutConfig, seed int64) *Session {
	s := &Session{
		cfg:   cfg,
		rng:   NewSimpleRNG(seed),
		state: StateInactive,
		level: 1,
	}
	s.view = s.deriveView()
	return s
}

// SetHooks installs event hooks.
func (s *Session) SetHooks(h Hooks) {
	s.hooks = h
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Level returns the level being played.
func (s *Session) Level() int { return s.level }

// Rounds returns the number of completed rounds in the current level.
func (s *Session) Rounds() int { return s.rounds }

// Round returns the current round, or nil if none exists.
func (s *Session) Round() *Round { return s.round }

// Record returns the scores of the current level.
func (s *Session) Record() ScoreRecord { return s.record }

// Frame returns the number of updates run so far.
func (s *Session) Frame() uint64 { return s.frame }

// View returns the display state of the last update.
func (s *Session) View() View { return s.view }

// Config returns the game configuration.
func (s *Session) Config() config.BreakoutConfig { return s.cfg }

// Update advances the session by one frame. The frame delta is accepted for
// frame drivers but unused: every timer counts frames.
func (s *Session) Update(in core.InputSource, _ float64) {
	s.frame++
	pressed := s.edge.Observe(in.KeyCount())
	s.determineState(pressed)
	s.runState(in)
	s.view = s.deriveView()
}

// determineState applies this frame's transitions. Checks run in a fixed
// order and a later check may fire on the state an earlier one produced.
func (s *Session) determineState(pressed bool) {
	if s.state == StateNewGame {
		s.setState(StateCountdown)
		return
	}

	if pressed && s.state == StateInactive {
		s.setState(StateNewGame)
	}

	switch {
	case s.state.IsActive() && s.round.Status() == StatusLost:
		if s.round.Tries() > 0 {
			s.round.ClearStatus()
			s.setState(pausedFor(s.level))
		} else {
			s.completeRound()
		}
	case s.state == StateComplete && pressed:
		s.afterComplete()
	case s.state == StateLevel2 && pressed:
		s.setState(StateNewGame)
	}

	if s.state.IsPaused() && pressed {
		s.setState(StateCountdown)
	}

	if s.state.IsActive() && s.round.BrickCount() == 0 {
		s.completeRound()
	}
}

// completeRound counts the finished round and enters COMPLETE.
func (s *Session) completeRound() {
	if s.rounds >= RoundsPerLevel {
		panic(fmt.Sprintf("breakout: round count %d exceeds %d", s.rounds+1, RoundsPerLevel))
	}
	s.rounds++
	s.setState(StateComplete)
}

// afterComplete picks the state that follows a key press on COMPLETE.
func (s *Session) afterComplete() {
	switch {
	case s.rounds < RoundsPerLevel:
		s.setState(StateNewGame)
	case s.level == 1:
		s.setState(StateLevel2)
	default:
		s.setState(StateInactive)
	}
}

// setState switches state and applies the entry effects of the new state.
func (s *Session) setState(to State) {
	from := s.state
	s.state = to

	switch to {
	case StateInactive:
		s.level = 1
		s.rounds = 0
		s.round = nil
		s.record.Reset()
	case StateCountdown:
		s.timer = 0
	case StateLevel2:
		s.level = 2
		s.rounds = 0
		s.timer = 0
		s.round = nil
		s.record.Reset()
	}

	if s.hooks.OnTransition != nil {
		t := Transition{From: from, To: to, Frame: s.frame, Level: s.level, Round: s.rounds}
		if s.round != nil {
			t.Tries = s.round.Tries()
			t.Bricks = s.round.BrickCount()
		}
		s.hooks.OnTransition(t)
	}
}

// runState executes the per-frame behavior of the current state.
func (s *Session) runState(in core.InputSource) {
	switch s.state {
	case StateNewGame:
		s.round = NewRound(s.level, s.cfg, s.rng)
		s.scored = false
	case StateCountdown:
		s.round.UpdatePaddle(in)
		s.timer++
		if s.timer > s.cfg.Gameplay.CountdownFrames() {
			s.round.ServeBall()
			s.setState(activeFor(s.level))
		}
	case StateActive, StateActive2:
		s.round.UpdatePaddle(in)
		s.round.UpdateBall()
		if s.hooks.OnBrickHit != nil {
			for _, b := range s.round.Struck() {
				s.hooks.OnBrickHit(b)
			}
		}
	case StateComplete:
		if !s.scored {
			s.scoreRound()
		}
	case StateInactive, StatePaused, StatePaused2, StateLevel2:
		// Waiting for a key press
	}
}

// scoreRound records the points of the round that just ended. A round
// with no bricks left is a win even if its last try was lost too.
func (s *Session) scoreRound() {
	won := s.round.BrickCount() == 0
	points := s.round.Destroyed()
	if won {
		points = s.round.StoredBrickCount()
	}
	s.record.Add(s.rounds, points)
	s.scored = true

	if s.hooks.OnRoundComplete != nil {
		s.hooks.OnRoundComplete(RoundResult{Level: s.level, Round: s.rounds, Points: points, Won: won})
	}
}

// deriveView rebuilds the display state from the current state.
func (s *Session) deriveView() View {
	var v View

	switch s.state {
	case StateInactive:
		v.Message = MsgWelcome
	case StateCountdown:
		v.Message = countdownText(s.timer, s.cfg.Gameplay.FramesPerDigit, s.cfg.Gameplay.GapFrames)
	case StatePaused, StatePaused2:
		v.Message = MsgNewBall
	case StateComplete:
		v.Message = s.completeMessage()
	case StateLevel2:
		v.Message = MsgLevelTwo
	}

	switch s.state {
	case StateCountdown, StateActive, StateActive2, StatePaused, StatePaused2, StateComplete:
		if s.round != nil {
			v.Score = fmt.Sprintf(scoreLabelFmt, s.round.Destroyed())
		}
	}

	switch s.state {
	case StateInactive, StateComplete, StateLevel2:
	default:
		v.ShowPlayfield = s.round != nil
	}

	if s.state == StateComplete && s.record.Len() > 0 {
		v.ShowScoreboard = true
		v.Scoreboard = NewScoreboard(s.record)
	}
	return v
}

func (s *Session) completeMessage() string {
	if s.rounds == RoundsPerLevel {
		if s.level == 1 {
			return MsgAdvance
		}
		return MsgBackToOne
	}
	if s.round != nil && s.round.BrickCount() == 0 {
		return MsgWin
	}
	return MsgLoss
}

// countdownText returns the digit shown at a countdown frame: "3", "2" and
// "1" separated by blank gaps of 2*gap frames centered on each second.
func countdownText(timer, framesPerDigit, gap int) string {
	switch {
	case timer < framesPerDigit-gap:
		return "3"
	case timer < framesPerDigit+gap:
		return ""
	case timer < 2*framesPerDigit-gap:
		return "2"
	case timer < 2*framesPerDigit+gap:
		return ""
	case timer < 3*framesPerDigit:
		return "1"
	default:
		return ""
	}
}
