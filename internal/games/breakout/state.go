package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Mode is the top-level game state.
type Mode = core.Phase

const (
	ModeMenu = core.PhaseMenu
	ModePlay = core.PhasePlay
)

// Effect is a side effect a transition asks the game to perform.
type Effect int

const (
	EffectResetScore     Effect = iota // Zero the scoreboard
	EffectSpawnSession                 // Populate the world for a new session
	EffectDestroySession               // Remove every entity of the session
	EffectShowMenu                     // Present the final score and outcome
)

// String returns a human-readable effect name.
func (e Effect) String() string {
	switch e {
	case EffectResetScore:
		return "reset_score"
	case EffectSpawnSession:
		return "spawn_session"
	case EffectDestroySession:
		return "destroy_session"
	case EffectShowMenu:
		return "show_menu"
	default:
		return "unknown"
	}
}

// Transition is the result of feeding an event to the state machine.
type Transition struct {
	Next    Mode
	Effects []Effect
	Outcome core.Outcome // Set when leaving Play
}

// OnActivate handles the menu's Play activation. In Play it is a no-op.
func OnActivate(m Mode) Transition {
	if m != ModeMenu {
		return Transition{Next: m}
	}
	return Transition{
		Next:    ModePlay,
		Effects: []Effect{EffectResetScore, EffectSpawnSession},
	}
}

// AfterTick evaluates the end of a Play tick. Outside Play it is a no-op.
func AfterTick(m Mode, balls, bricks int) Transition {
	if m != ModePlay {
		return Transition{Next: m}
	}
	outcome, done := Evaluate(balls, bricks)
	if !done {
		return Transition{Next: ModePlay}
	}
	return Transition{
		Next:    ModeMenu,
		Effects: []Effect{EffectDestroySession, EffectShowMenu},
		Outcome: outcome,
	}
}

// Evaluate reports whether a session is over and how it ended. Clearing the
// field counts as a win only while a ball is still in play.
func Evaluate(balls, bricks int) (core.Outcome, bool) {
	switch {
	case balls <= 0:
		return core.OutcomeLose, true
	case bricks <= 0:
		return core.OutcomeWin, true
	default:
		return core.OutcomeNone, false
	}
}
