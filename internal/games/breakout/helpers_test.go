package breakout

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/world"
)

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	base := []Option{WithRNG(rand.New(rand.NewSource(1)))}
	g := NewWithConfig(config.DefaultBreakoutConfig(), append(base, opts...)...)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func playInput() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionPlay)
	return in
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

// arena starts a session and removes every ball and brick, leaving the
// paddle and walls.
func arena(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t)
	g.Step(playInput())
	if g.mode != ModePlay {
		t.Fatalf("mode = %v after Play, expected play", g.mode)
	}
	for _, h := range g.world.Handles(world.KindBall) {
		g.world.Destroy(h)
	}
	for _, h := range g.world.Handles(world.KindBrick) {
		g.world.Destroy(h)
	}
	return g
}

func addBall(g *Game, pos, vel core.Vec2) world.Handle {
	return g.spawnBall(pos, vel)
}

func addBrick(g *Game, pos core.Vec2, health int, kind world.BrickKind) world.Handle {
	return g.world.Spawn(world.Entity{
		Kind:      world.KindBrick,
		Pos:       pos,
		Size:      g.cfg.Bricks.Size,
		Health:    health,
		BrickKind: kind,
		Session:   g.session,
	})
}

// addKeepers adds a stationary ball and an out-of-reach brick so a session
// does not end while a test inspects one tick.
func addKeepers(g *Game) {
	addBall(g, core.V(-300, 0), core.Vec2{})
	addBrick(g, core.V(-300, 250), 1, world.BrickNormal)
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// scriptedRNG replays fixed values.
type scriptedRNG struct {
	ints   []int
	floats []float64
}

func (r *scriptedRNG) Intn(n int) int {
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func (r *scriptedRNG) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}
