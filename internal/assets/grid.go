// Package assets supplies decoded pixel grids by logical name: the terrain
// atlas, the sprite atlas and the two full-screen images. Grids use
// bottom-to-top rows, as stored in BMP files.
package assets

import (
	"image"
	"image/color"
)

// Grid is a decoded RGBA image. Pixel(x, 0) is the bottom row.
type Grid struct {
	w, h int
	pix  []color.RGBA
}

// NewGrid creates a fully transparent grid.
func NewGrid(w, h int) *Grid {
	return &Grid{w: w, h: h, pix: make([]color.RGBA, w*h)}
}

// FromImage converts a top-to-bottom image into a grid.
func FromImage(img image.Image) *Grid {
	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Max.Y-1-y)).(color.RGBA)
			g.pix[y*g.w+x] = c
		}
	}
	return g
}

// Width returns the grid width.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height.
func (g *Grid) Height() int { return g.h }

// Pixel returns the pixel at (x, y). Out of range pixels are transparent.
func (g *Grid) Pixel(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return color.RGBA{}
	}
	return g.pix[y*g.w+x]
}

// Set stores a pixel. Out of range writes are ignored.
func (g *Grid) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.pix[y*g.w+x] = c
}

// Crop copies the region [x0,x1) x [y0,y1), clipped to the grid.
func (g *Grid) Crop(x0, y0, x1, y1 int) *Grid {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, g.w), min(y1, g.h)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}

	out := NewGrid(x1-x0, y1-y0)
	for y := 0; y < out.h; y++ {
		copy(out.pix[y*out.w:(y+1)*out.w], g.pix[(y0+y)*g.w+x0:(y0+y)*g.w+x1])
	}
	return out
}

// Image converts the grid back to a top-to-bottom image.
func (g *Grid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.w, g.h))
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			img.SetRGBA(x, g.h-1-y, g.pix[y*g.w+x])
		}
	}
	return img
}
