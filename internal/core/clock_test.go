package core

import (
	"testing"
	"time"
)

func TestFixedStepAdvance(t *testing.T) {
	c := NewFixedStep(50, 0) // 20ms period

	tests := []struct {
		elapsed time.Duration
		steps   int
		pending time.Duration
	}{
		{10 * time.Millisecond, 0, 10 * time.Millisecond},
		{10 * time.Millisecond, 1, 0},
		{45 * time.Millisecond, 2, 5 * time.Millisecond},
		{0, 0, 5 * time.Millisecond},
		{-time.Second, 0, 5 * time.Millisecond}, // negative elapsed ignored
	}

	for i, tc := range tests {
		steps := c.Advance(tc.elapsed)
		if steps != tc.steps {
			t.Errorf("step %d: Advance(%v) = %d, expected %d", i, tc.elapsed, steps, tc.steps)
		}
		if c.Pending() != tc.pending {
			t.Errorf("step %d: Pending() = %v, expected %v", i, c.Pending(), tc.pending)
		}
	}

	if c.Ticks() != 3 {
		t.Errorf("Ticks() = %d, expected 3", c.Ticks())
	}
}

func TestFixedStepCatchUpNeverDrops(t *testing.T) {
	c := NewFixedStep(100, 2) // 10ms period, at most 2 per call

	if got := c.Advance(55 * time.Millisecond); got != 2 {
		t.Fatalf("first Advance = %d, expected 2 (capped)", got)
	}
	if got := c.Advance(0); got != 2 {
		t.Fatalf("second Advance = %d, expected 2 (carried)", got)
	}
	if got := c.Advance(0); got != 1 {
		t.Fatalf("third Advance = %d, expected 1 (carried)", got)
	}
	if got := c.Advance(0); got != 0 {
		t.Fatalf("fourth Advance = %d, expected 0", got)
	}
	if c.Ticks() != 5 {
		t.Errorf("Ticks() = %d, expected all 5 ticks", c.Ticks())
	}
}

func TestFixedStepDefaults(t *testing.T) {
	c := NewFixedStep(0, 0)
	if c.Period() != time.Second/60 {
		t.Errorf("Period() = %v, expected 1/60s", c.Period())
	}
	if c.DT() <= 0 {
		t.Errorf("DT() = %f, expected positive", c.DT())
	}
}
