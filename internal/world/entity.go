package world

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Kind tags which variant an Entity is.
type Kind uint8

const (
	KindPaddle Kind = iota
	KindBall
	KindBrick
	KindWall
	kindCount
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindPaddle:
		return "paddle"
	case KindBall:
		return "ball"
	case KindBrick:
		return "brick"
	case KindWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Collides reports whether entities of this kind are collision targets for
// balls. Balls themselves are movers, not targets.
func (k Kind) Collides() bool {
	return k == KindPaddle || k == KindBrick || k == KindWall
}

// Despawnable reports whether entities of this kind carry a pending-despawn
// flag that the sweep honors.
func (k Kind) Despawnable() bool {
	return k == KindBall || k == KindBrick
}

// BrickKind distinguishes brick behaviors on destruction.
type BrickKind uint8

const (
	BrickNormal     BrickKind = iota // Just disappears
	BrickTripleBall                  // Spawns three balls when destroyed
)

// String returns a human-readable brick kind name.
func (b BrickKind) String() string {
	if b == BrickTripleBall {
		return "triple_ball"
	}
	return "normal"
}

// Entity is a tagged variant covering every game object. Fields that do not
// apply to a kind stay at their zero value.
type Entity struct {
	Kind    Kind
	Pos     core.Vec2 // Center
	Size    core.Vec2 // Full extent
	Color   core.Color
	Session uuid.UUID // Play session that owns the entity; uuid.Nil if none

	// Ball
	Vel     core.Vec2
	Texture core.TextureHandle

	// Brick
	Health    int
	BrickKind BrickKind

	// Ball, Brick
	Despawn bool
}

// Bounds implements core.Collidable.
func (e *Entity) Bounds() core.Box {
	return core.NewBox(e.Pos, e.Size)
}

// HalfSize returns half of the full extent.
func (e *Entity) HalfSize() core.Vec2 {
	return e.Size.Half()
}
