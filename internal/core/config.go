package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	FPS      int   // Render frames per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		FPS:      30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the top-level mode a game is in.
type Phase int

const (
	PhaseMenu Phase = iota // Menu shown, simulation idle
	PhasePlay              // Simulation running
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	if p == PhasePlay {
		return "play"
	}
	return "menu"
}

// Outcome classifies how the last session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota // No session has finished yet
	OutcomeWin                 // All bricks cleared with a ball still in play
	OutcomeLose                // Every ball left the field
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "none"
	}
}

// Message returns the user-facing line for the outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomeWin:
		return "You win!"
	case OutcomeLose:
		return "Game over!"
	default:
		return ""
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase   Phase   // Menu or Play
	Score   int     // Current (or final) score
	Outcome Outcome // How the last session ended
	Balls   int     // Balls in play
	Bricks  int     // Bricks remaining
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
