package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size the grid and for deterministic food placement.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	GridW   int   // Play grid columns (0 = derive from screen)
	GridH   int   // Play grid rows (0 = derive from screen)
	Seed    int64 // RNG seed, applied once per Reset
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Phase is the top-level state of a session.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "running"
}

// GameState represents the current game state.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int   // Current score
	Length   int   // Snake length
	Phase    Phase // Running or GameOver
	GameOver bool  // Phase == PhaseGameOver, kept for quick checks
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
	// Next is the delay before the following tick.
	Next time.Duration
}
