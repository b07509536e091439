package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/world"
)

// Simulate runs one fixed tick of play: paddle movement, ball integration,
// collision resolution, the off-field check and the despawn sweep, in that
// order. It returns what happened during the tick.
func (g *Game) Simulate(in core.InputFrame) []core.Event {
	dt := g.dt()
	var events []core.Event

	g.movePaddle(in.Direction(), dt)
	g.integrateBalls(dt)
	events = g.resolveCollisions(events)
	events = g.markOffField(events)
	g.sweep()
	return events
}

func (g *Game) dt() float64 {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = g.cfg.Sim.TickRate
	}
	return 1 / float64(rate)
}

// movePaddle shifts the paddle by dir * speed * dt and clamps it inside the
// field.
func (g *Game) movePaddle(dir, dt float64) {
	p, ok := g.world.Get(g.paddle)
	if !ok {
		return
	}
	half := p.Size.X / 2
	x := p.Pos.X + dir*g.cfg.Paddle.Speed*dt
	p.Pos.X = core.ClampF(x, g.cfg.Field.Min.X+half, g.cfg.Field.Max.X-half)
}

// integrateBalls advances every ball along its velocity.
func (g *Game) integrateBalls(dt float64) {
	for _, h := range g.world.Handles(world.KindBall) {
		b, _ := g.world.Get(h)
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	}
}

// bounce flips one velocity axis when the ball is moving into the edge it
// crossed. Inside, or moving away already, leaves vel unchanged.
func bounce(vel core.Vec2, edge core.Edge) (core.Vec2, bool) {
	switch {
	case edge == core.EdgeLeft && vel.X > 0,
		edge == core.EdgeRight && vel.X < 0:
		vel.X = -vel.X
	case edge == core.EdgeBottom && vel.Y > 0,
		edge == core.EdgeTop && vel.Y < 0:
		vel.Y = -vel.Y
	default:
		return vel, false
	}
	return vel, true
}

// resolveCollisions tests every ball against every collider in slot order.
// Balls spawned by a bonus brick during this pass are not tested until the
// next tick. Bricks already marked for despawn are skipped.
func (g *Game) resolveCollisions(events []core.Event) []core.Event {
	balls := g.world.Handles(world.KindBall)
	colliders := g.world.Colliders()

	for _, bh := range balls {
		for _, ch := range colliders {
			// Re-fetch each pair: spawning may move entity storage.
			ball, ok := g.world.Get(bh)
			if !ok || ball.Despawn {
				break
			}
			target, ok := g.world.Get(ch)
			if !ok || target.Despawn {
				continue
			}

			edge, hit := core.Overlap(ball.Pos, ball.Size, target.Pos, target.Size)
			if !hit {
				continue
			}

			var flipped bool
			ball.Vel, flipped = bounce(ball.Vel, edge)

			if target.Kind != world.KindBrick {
				if flipped {
					events = append(events, core.Event{Kind: core.EventBounce, Pos: ball.Pos})
				}
				continue
			}

			events = g.hitBrick(ch, target, ball.Pos, events)
		}
	}
	return events
}

// hitBrick applies one ball strike to a brick: a point, one health, and on
// reaching zero the despawn mark plus any bonus.
func (g *Game) hitBrick(h world.Handle, brick *world.Entity, at core.Vec2, events []core.Event) []core.Event {
	g.score.Add(1)
	brick.Health = max(brick.Health-1, 0)
	events = append(events, core.Event{Kind: core.EventBrickHit, Pos: brick.Pos})

	if brick.Health > 0 || !g.world.MarkDespawn(h) {
		return events
	}
	events = append(events, core.Event{Kind: core.EventBrickDestroyed, Pos: brick.Pos})

	if brick.BrickKind == world.BrickTripleBall {
		g.spawnBonusBalls(at)
		events = append(events, core.Event{Kind: core.EventMultiBall, Pos: at})
	}
	return events
}

// markOffField flags balls that have fully dropped below the field.
func (g *Game) markOffField(events []core.Event) []core.Event {
	floor := g.cfg.Field.Min.Y
	for _, h := range g.world.Handles(world.KindBall) {
		b, _ := g.world.Get(h)
		if b.Pos.Y < floor-b.Size.Y/2 && g.world.MarkDespawn(h) {
			events = append(events, core.Event{Kind: core.EventBallLost, Pos: b.Pos})
		}
	}
	return events
}

// sweep removes everything marked during the tick.
func (g *Game) sweep() int {
	return len(g.world.Sweep())
}
