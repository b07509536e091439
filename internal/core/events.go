package core

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventBounce         EventKind = iota // Ball reflected off a paddle or wall
	EventBrickHit                        // Ball struck a brick
	EventBrickDestroyed                  // Brick health reached zero
	EventMultiBall                       // Bonus brick spawned extra balls
	EventBallLost                        // Ball left the bottom of the field
	EventSessionStart                    // Play session set up
	EventSessionEnd                      // Play session torn down
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventBounce:
		return "bounce"
	case EventBrickHit:
		return "brick_hit"
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventMultiBall:
		return "multi_ball"
	case EventBallLost:
		return "ball_lost"
	case EventSessionStart:
		return "session_start"
	case EventSessionEnd:
		return "session_end"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported by a tick.
type Event struct {
	Kind EventKind
	Pos  Vec2 // Where it happened, in world units
}
