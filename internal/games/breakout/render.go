package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/world"
)

// Glyphs used when drawing to the cell screen.
const (
	UpperHalf = '▀'
	LowerHalf = '▄'
	FullBlock = '█'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// viewport maps world units to screen cells. Vertically it works in
// half-cell steps so thin bricks on adjacent rows stay distinct.
type viewport struct {
	left, top float64 // World coordinates of the playfield's top-left cell corner
	sx        float64 // Columns per world unit
	sy        float64 // Half-rows per world unit
	w, h      int     // Screen size
}

func (g *Game) viewport(w, h int) viewport {
	f := g.cfg.Field
	t := g.cfg.Walls.Thickness
	left, right := f.Min.X-t/2, f.Max.X+t/2
	top, bottom := f.Max.Y+t/2, f.Min.Y
	return viewport{
		left: left,
		top:  top,
		sx:   float64(w) / (right - left),
		sy:   float64(2*(h-hudRows)) / (top - bottom),
		w:    w,
		h:    h,
	}
}

// cols returns the first and last column covered by [minX, maxX].
func (v viewport) cols(minX, maxX float64) (int, int) {
	c0 := int(math.Floor((minX - v.left) * v.sx))
	c1 := int(math.Ceil((maxX-v.left)*v.sx)) - 1
	return c0, max(c0, c1)
}

// halfRows returns the first and last half-row covered by [minY, maxY].
func (v viewport) halfRows(minY, maxY float64) (int, int) {
	s0 := int(math.Floor((v.top - maxY) * v.sy))
	s1 := int(math.Ceil((v.top-minY)*v.sy)) - 1
	return s0, max(s0, s1)
}

// cell returns the screen cell containing a world point.
func (v viewport) cell(p core.Vec2) (int, int) {
	x := int(math.Floor((p.X - v.left) * v.sx))
	y := hudRows + int(math.Floor((v.top-p.Y)*v.sy))/2
	return x, y
}

// fillBox paints a world box with half-block glyphs, merging halves that
// land in the same cell.
func (v viewport) fillBox(dst *core.Screen, b core.Box, c core.Color) {
	lo, hi := b.Min(), b.Max()
	c0, c1 := v.cols(lo.X, hi.X)
	s0, s1 := v.halfRows(lo.Y, hi.Y)

	for s := s0; s <= s1; s++ {
		if s < 0 {
			continue
		}
		y := hudRows + s/2
		upper := s%2 == 0
		for x := c0; x <= c1; x++ {
			if x < 0 || x >= v.w || y >= v.h {
				continue
			}
			dst.SetCell(x, y, mergeHalf(dst.Get(x, y), upper), c)
		}
	}
}

func mergeHalf(existing rune, upper bool) rune {
	switch {
	case existing == FullBlock:
		return FullBlock
	case upper && existing == LowerHalf, !upper && existing == UpperHalf:
		return FullBlock
	case upper:
		return UpperHalf
	default:
		return LowerHalf
	}
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() <= hudRows {
		return
	}

	if g.mode == ModeMenu {
		g.renderMenu(dst)
		return
	}

	v := g.viewport(dst.Width(), dst.Height())
	for _, d := range g.Drawables() {
		if d.Kind == world.KindBall {
			continue
		}
		v.fillBox(dst, core.NewBox(d.Pos, d.Size), d.Color)
	}
	// Balls last so they stay visible over bricks they overlap.
	for _, d := range g.Drawables() {
		if d.Kind != world.KindBall {
			continue
		}
		x, y := v.cell(d.Pos)
		if x >= 0 && x < dst.Width() && y >= hudRows && y < dst.Height() {
			dst.SetCell(x, y, g.assets.Glyph(d.Texture), d.Color)
		}
	}

	g.renderHUD(dst)
}

// renderHUD draws score, balls and bricks remaining on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	c := g.cfg.Colors.HUD
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score.Value()), c)

	right := fmt.Sprintf("Balls: %d  Bricks: %d",
		g.world.Count(world.KindBall), g.world.Count(world.KindBrick))
	dst.DrawText(dst.Width()-len(right)-1, 0, right, c)
}

// renderMenu is the plain-text menu used when the platform draws the
// screen buffer as is.
func (g *Game) renderMenu(dst *core.Screen) {
	c := g.cfg.Colors.HUD
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, g.title, c)
	if msg := g.outcome.Message(); msg != "" {
		dst.DrawTextCentered(mid-1, msg, c)
	}
	dst.DrawTextCentered(mid, fmt.Sprintf("Score: %d", g.score.Value()), c)
	dst.DrawTextCentered(mid+2, "[ Play ]", c)
}
