package core

// RuntimeConfig contains configuration passed to the session at initialization.
// The session uses it for deterministic world generation; the host uses
// the screen size and tick rate.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frame rate (default 60)
	Seed     int64 // RNG seed for world generation and effects
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

// GameState represents the current state of a run.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	Distance float64 // Distance travelled this run
	Elapsed  float64 // Simulated seconds since the run started
	GameOver bool    // Whether the run has been ended by the player
	Paused   bool    // Whether the run is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Dt    float64 // Clamped delta time actually simulated
}
