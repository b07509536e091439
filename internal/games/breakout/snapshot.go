package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/world"
)

// Drawable is a read-only view of one entity for renderers.
type Drawable struct {
	Kind      world.Kind
	Pos       core.Vec2
	Size      core.Vec2
	Color     core.Color
	Texture   core.TextureHandle
	BrickKind world.BrickKind
}

// Drawables returns every live entity in slot order.
func (g *Game) Drawables() []Drawable {
	out := make([]Drawable, 0, g.world.Len())
	g.world.Each(func(_ world.Handle, e *world.Entity) {
		out = append(out, Drawable{
			Kind:      e.Kind,
			Pos:       e.Pos,
			Size:      e.Size,
			Color:     e.Color,
			Texture:   e.Texture,
			BrickKind: e.BrickKind,
		})
	})
	return out
}

// Snapshot contains the simulation state that matters for determinism.
// Session ids are excluded since they are random by construction.
type Snapshot struct {
	Tick    uint64
	Mode    int
	Score   int
	Outcome int
	PaddleX float64

	// Each ball is 4 floats: X, Y, VX, VY
	BallCount int
	BallData  []float64

	// Each brick is 4 values: X, Y, Health, Kind
	BrickCount int
	BrickData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    uint64(g.tick), //#nosec G115 -- tick count is always positive
		Mode:    int(g.mode),
		Score:   g.score.Value(),
		Outcome: int(g.outcome),
	}
	if p, ok := g.world.Get(g.paddle); ok {
		snap.PaddleX = p.Pos.X
	}

	g.world.Each(func(_ world.Handle, e *world.Entity) {
		switch e.Kind {
		case world.KindBall:
			snap.BallCount++
			snap.BallData = append(snap.BallData, e.Pos.X, e.Pos.Y, e.Vel.X, e.Vel.Y)
		case world.KindBrick:
			snap.BrickCount++
			snap.BrickData = append(snap.BrickData, e.Pos.X, e.Pos.Y, float64(e.Health), float64(e.BrickKind))
		}
	})
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome)    //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + uint64(snap.BallCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BrickCount) //#nosec G115 -- hash computation

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.BrickData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
