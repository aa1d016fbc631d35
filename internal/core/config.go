package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    string // Playing, Cleared or GameOver
	Cleared  bool   // Whether the board was cleared
	GameOver bool   // Whether all balls were lost
	Paused   bool   // Whether the game is paused
	MaxCombo int    // Longest combo reached this session
}

// Finished reports whether the session reached a terminal state.
func (s GameState) Finished() bool {
	return s.Cleared || s.GameOver
}

// Event is a notable thing that happened during a tick.
// Fields holds alternating key/value pairs suitable for structured logging.
type Event struct {
	Name   string
	Fields []any
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
