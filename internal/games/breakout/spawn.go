package breakout

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/world"
)

// spawnSession populates the world for a new play session: paddle, first
// ball, walls and the brick field. Every entity is tagged with a fresh
// session id. It returns the number of bricks placed.
func (g *Game) spawnSession() int {
	g.session = uuid.New()
	g.tick = 0
	cfg := g.cfg

	g.paddle = g.world.Spawn(world.Entity{
		Kind:    world.KindPaddle,
		Pos:     core.V(0, cfg.Paddle.StartY),
		Size:    cfg.Paddle.Size,
		Color:   cfg.Colors.Paddle,
		Session: g.session,
	})

	g.spawnBall(cfg.Ball.Start, cfg.Ball.Direction.Scale(cfg.Ball.Speed))
	g.spawnWalls()

	specs := LayoutBricks(cfg, g.rows)
	assignKinds(specs, cfg.Bricks.BonusChance, g.rng)
	for _, s := range specs {
		color := cfg.Colors.Brick
		if s.Kind == world.BrickTripleBall {
			color = cfg.Colors.BonusBrick
		}
		g.world.Spawn(world.Entity{
			Kind:      world.KindBrick,
			Pos:       s.Pos,
			Size:      cfg.Bricks.Size,
			Color:     color,
			Health:    cfg.Bricks.Health,
			BrickKind: s.Kind,
			Session:   g.session,
		})
	}
	return len(specs)
}

// spawnWalls places the two side walls and the ceiling. There is no floor.
func (g *Game) spawnWalls() {
	f := g.cfg.Field
	t := g.cfg.Walls.Thickness

	side := core.V(t, f.Height()+t)
	for _, x := range []float64{f.Min.X, f.Max.X} {
		g.world.Spawn(world.Entity{
			Kind:    world.KindWall,
			Pos:     core.V(x, 0),
			Size:    side,
			Color:   g.cfg.Colors.Wall,
			Session: g.session,
		})
	}

	g.world.Spawn(world.Entity{
		Kind:    world.KindWall,
		Pos:     core.V(0, f.Max.Y),
		Size:    core.V(f.Width()+t, t),
		Color:   g.cfg.Colors.Wall,
		Session: g.session,
	})
}

// spawnBall creates a ball with the configured size, color and texture.
func (g *Game) spawnBall(pos, vel core.Vec2) world.Handle {
	return g.world.Spawn(world.Entity{
		Kind:    world.KindBall,
		Pos:     pos,
		Vel:     vel,
		Size:    g.cfg.Ball.Size,
		Color:   g.cfg.Colors.Ball,
		Texture: g.assets.Load(g.cfg.Ball.Texture),
		Session: g.session,
	})
}

// spawnBonusBalls releases the configured number of balls at pos, each
// heading in a random direction at ball speed.
func (g *Game) spawnBonusBalls(pos core.Vec2) int {
	n := g.cfg.Bricks.BonusBalls
	for range n {
		g.spawnBall(pos, g.randomDirection().Scale(g.cfg.Ball.Speed))
	}
	g.log.Debug("bonus balls", "session", g.session, "count", n, "x", pos.X, "y", pos.Y)
	return n
}

// randomDirection returns a unit vector from two uniform draws in [-1,1).
// The degenerate zero draw falls back to straight up.
func (g *Game) randomDirection() core.Vec2 {
	d := core.V(g.rng.Float64()*2-1, g.rng.Float64()*2-1)
	if d.X == 0 && d.Y == 0 {
		return core.V(0, 1)
	}
	return d.Normalize()
}
