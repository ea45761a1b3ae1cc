package render

import (
	"github.com/vovakirdan/tilerunner/internal/assets"
	"github.com/vovakirdan/tilerunner/internal/core"
)

// Rasterizer executes plans against an asset set. The returned frame is
// reused across calls.
type Rasterizer struct {
	set   *assets.Set
	frame *core.Frame
}

// NewRasterizer creates a rasterizer for a width x height frame.
func NewRasterizer(set *assets.Set, width, height int) *Rasterizer {
	return &Rasterizer{set: set, frame: core.NewFrame(width, height)}
}

// Frame returns the frame drawn by the last Draw.
func (r *Rasterizer) Frame() *core.Frame { return r.frame }

// Draw executes the plan and returns the frame, rows top to bottom.
func (r *Rasterizer) Draw(p Plan) *core.Frame {
	for _, c := range p.Commands {
		switch c.Kind {
		case KindFill:
			r.frame.Fill(c.Color)
		case KindImage:
			r.image(c.Name)
		case KindSprite:
			r.sprite(c.Sprite, c.X, c.Y)
		}
	}
	return r.frame
}

// image draws a full-screen grid; grid row H-1 is the top screen row.
func (r *Rasterizer) image(name string) {
	g := r.set.Get(name)
	if g == nil {
		return
	}
	w := min(g.Width(), r.frame.Width())
	h := min(g.Height(), r.frame.Height())
	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			c := g.Pixel(sx, g.Height()-1-sy)
			if c.A == 0 {
				continue
			}
			r.frame.Set(sx, sy, c)
		}
	}
}

// sprite blits one atlas cell. Screen row ly of the sprite samples cell row
// CellSize-1-ly, since atlas rows run bottom to top. Transparent pixels are
// skipped.
func (r *Rasterizer) sprite(s assets.Sprite, x, y int) {
	atlas := r.set.Get(assets.NameImg)
	if atlas == nil {
		return
	}
	col, row := assets.Cell(s)
	ax, ay := col*assets.CellSize, row*assets.CellSize
	for ly := 0; ly < assets.CellSize; ly++ {
		for lx := 0; lx < assets.CellSize; lx++ {
			c := atlas.Pixel(ax+lx, ay+assets.CellSize-1-ly)
			if c.A == 0 {
				continue
			}
			r.frame.Set(x+lx, y+ly, c)
		}
	}
}
