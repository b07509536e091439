package breakout

// Scoreboard holds the score of the current (or last) session.
// It never decreases except through Reset.
type Scoreboard struct {
	value int
}

// Add increases the score. Non-positive amounts are ignored.
func (s *Scoreboard) Add(n int) {
	if n > 0 {
		s.value += n
	}
}

// Reset sets the score back to zero.
func (s *Scoreboard) Reset() {
	s.value = 0
}

// Value returns the current score.
func (s *Scoreboard) Value() int {
	return s.value
}
