package breakout

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		balls   int
		bricks  int
		outcome core.Outcome
		done    bool
	}{
		{"in progress", 1, 10, core.OutcomeNone, false},
		{"multi ball in progress", 4, 1, core.OutcomeNone, false},
		{"field cleared", 1, 0, core.OutcomeWin, true},
		{"field cleared multi ball", 3, 0, core.OutcomeWin, true},
		{"all balls lost", 0, 5, core.OutcomeLose, true},
		{"both zero", 0, 0, core.OutcomeLose, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			outcome, done := Evaluate(tc.balls, tc.bricks)
			if outcome != tc.outcome || done != tc.done {
				t.Errorf("Evaluate(%d, %d) = (%v, %v), expected (%v, %v)",
					tc.balls, tc.bricks, outcome, done, tc.outcome, tc.done)
			}
		})
	}
}

func TestOnActivate(t *testing.T) {
	tr := OnActivate(ModeMenu)
	if tr.Next != ModePlay {
		t.Errorf("Next = %v, expected play", tr.Next)
	}
	expected := []Effect{EffectResetScore, EffectSpawnSession}
	if !slices.Equal(tr.Effects, expected) {
		t.Errorf("Effects = %v, expected %v", tr.Effects, expected)
	}

	noop := OnActivate(ModePlay)
	if noop.Next != ModePlay || len(noop.Effects) != 0 {
		t.Errorf("OnActivate(play) = %+v, expected a no-op", noop)
	}
}

func TestAfterTick(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		balls   int
		bricks  int
		next    Mode
		effects []Effect
		outcome core.Outcome
	}{
		{"continue", ModePlay, 1, 3, ModePlay, nil, core.OutcomeNone},
		{"win", ModePlay, 2, 0, ModeMenu, []Effect{EffectDestroySession, EffectShowMenu}, core.OutcomeWin},
		{"lose", ModePlay, 0, 3, ModeMenu, []Effect{EffectDestroySession, EffectShowMenu}, core.OutcomeLose},
		{"menu ignores ticks", ModeMenu, 0, 0, ModeMenu, nil, core.OutcomeNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := AfterTick(tc.mode, tc.balls, tc.bricks)
			if tr.Next != tc.next {
				t.Errorf("Next = %v, expected %v", tr.Next, tc.next)
			}
			if !slices.Equal(tr.Effects, tc.effects) {
				t.Errorf("Effects = %v, expected %v", tr.Effects, tc.effects)
			}
			if tr.Outcome != tc.outcome {
				t.Errorf("Outcome = %v, expected %v", tr.Outcome, tc.outcome)
			}
		})
	}
}

func TestScoreboard(t *testing.T) {
	var s Scoreboard
	s.Add(1)
	s.Add(2)
	s.Add(-5)
	s.Add(0)
	if s.Value() != 3 {
		t.Errorf("Value() = %d, expected 3", s.Value())
	}
	s.Reset()
	if s.Value() != 0 {
		t.Errorf("Value() after Reset = %d, expected 0", s.Value())
	}
}
