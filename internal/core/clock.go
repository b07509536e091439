package core

import "time"

// FixedStep converts variable wall-clock frame time into a whole number of
// fixed simulation ticks. Leftover time is carried to the next frame, so no
// tick is ever dropped.
type FixedStep struct {
	period   time.Duration
	maxSteps int
	acc      time.Duration
	ticks    uint64
}

// NewFixedStep creates a clock that ticks tickRate times per second and runs
// at most maxSteps ticks per Advance call (0 means unlimited).
func NewFixedStep(tickRate, maxSteps int) *FixedStep {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FixedStep{
		period:   time.Second / time.Duration(tickRate),
		maxSteps: maxSteps,
	}
}

// Period returns the fixed tick period.
func (c *FixedStep) Period() time.Duration {
	return c.period
}

// DT returns the tick period in seconds.
func (c *FixedStep) DT() float64 {
	return c.period.Seconds()
}

// Advance adds elapsed time and returns how many ticks are due now.
// When more than maxSteps are due, the rest stay in the accumulator and are
// returned by later calls.
func (c *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		c.acc += elapsed
	}
	steps := int(c.acc / c.period)
	if c.maxSteps > 0 && steps > c.maxSteps {
		steps = c.maxSteps
	}
	c.acc -= time.Duration(steps) * c.period
	c.ticks += uint64(steps)
	return steps
}

// Pending returns the time accumulated towards the next tick(s).
func (c *FixedStep) Pending() time.Duration {
	return c.acc
}

// Ticks returns the total ticks issued.
func (c *FixedStep) Ticks() uint64 {
	return c.ticks
}

// Reset clears the accumulator.
func (c *FixedStep) Reset() {
	c.acc = 0
}
