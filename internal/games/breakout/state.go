package breakout

import "fmt"

// State is a phase of the session state machine.
type State int

const (
	StateInactive  State = iota // Waiting for the first key press
	StateNewGame                // A fresh round is being set up
	StateCountdown              // 3-2-1 before the serve, paddle movable
	StateActive                 // Level 1 play
	StatePaused                 // Level 1 ball lost, tries remain
	StateComplete               // Round over, scoreboard shown
	StateLevel2                 // Transition screen before level 2
	StateActive2                // Level 2 play
	StatePaused2                // Level 2 balls lost, tries remain
)

var stateNames = [...]string{
	StateInactive:  "INACTIVE",
	StateNewGame:   "NEWGAME",
	StateCountdown: "COUNTDOWN",
	StateActive:    "ACTIVE",
	StatePaused:    "PAUSED",
	StateComplete:  "COMPLETE",
	StateLevel2:    "LEVEL2",
	StateActive2:   "ACTIVE2",
	StatePaused2:   "PAUSED2",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// IsActive reports whether the ball is in play, on either level.
func (s State) IsActive() bool {
	return s == StateActive || s == StateActive2
}

// IsPaused reports whether the session waits for a new serve, on either level.
func (s State) IsPaused() bool {
	return s == StatePaused || s == StatePaused2
}

// activeFor returns the play state used on the given level.
func activeFor(level int) State {
	if level == 2 {
		return StateActive2
	}
	return StateActive
}

// pausedFor returns the paused state used on the given level.
func pausedFor(level int) State {
	if level == 2 {
		return StatePaused2
	}
	return StatePaused
}
