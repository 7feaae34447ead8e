package core

// RuntimeConfig contains configuration passed to games at initialization.
// Hosts fill it from the terminal or window size and CLI flags.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width (cells or pixels)
	ScreenH  int   // Host surface height (cells or pixels)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes a game for its host after every tick.
type GameState struct {
	Phase  string // Current phase name (e.g. "ACTIVE")
	Score  int    // Running score of the current round
	Level  int    // Current level
	Round  int    // Completed rounds in the current level
	Tries  int    // Tries left in the current round
	Paused bool   // Whether the game waits for a key to continue
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
