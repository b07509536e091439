// Package breakout implements a brick breaker on a continuous playfield:
// a paddle deflects one or more balls into a field of bricks, some of which
// release extra balls when destroyed.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/world"
)

// BrickSpec is one brick placement produced by LayoutBricks.
type BrickSpec struct {
	Pos  core.Vec2
	Kind world.BrickKind
}

// LayoutBricks computes brick centers for the given number of rows. The
// layout is deterministic; every spec comes back as BrickNormal.
//
// Each row starts at the left bound and steps right by gap.x plus half a
// brick width, placing a brick after every step that stays left of the
// right bound. Rows stack downward from the ceiling.
func LayoutBricks(cfg config.BreakoutConfig, rows int) []BrickSpec {
	b := cfg.Bricks
	half := b.Size.Half()

	left := cfg.Field.Min.X + b.SideGap + half.X
	right := cfg.Field.Max.X - b.SideGap - half.X
	top := cfg.Field.Max.Y - b.CeilingGap - half.Y
	step := b.Gap.X + half.X
	if step <= 0 {
		return nil
	}

	var specs []BrickSpec
	for row := range rows {
		y := top - float64(row)*(b.Size.Y+b.Gap.Y)
		for x := left; x+step < right; {
			x += step
			specs = append(specs, BrickSpec{Pos: core.V(x, y), Kind: world.BrickNormal})
		}
	}
	return specs
}

// assignKinds draws one integer in [0,100) per brick; values below chance
// make a triple-ball brick.
func assignKinds(specs []BrickSpec, chance int, rng RNG) {
	for i := range specs {
		if rng.Intn(100) < chance {
			specs[i].Kind = world.BrickTripleBall
		} else {
			specs[i].Kind = world.BrickNormal
		}
	}
}
