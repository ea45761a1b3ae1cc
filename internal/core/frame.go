package core

import "image/color"

// Frame is a flat RGBA pixel buffer handed to the presenter.
// Rows are stored top-to-bottom, 4 bytes per pixel.
type Frame struct {
	width  int
	height int
	pix    []byte
}

// NewFrame creates a new frame buffer with the given dimensions, cleared to
// opaque black.
func NewFrame(width, height int) *Frame {
	f := &Frame{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
	f.Fill(color.RGBA{A: 255})
	return f
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Pix returns the underlying RGBA bytes. The slice is reused between frames.
func (f *Frame) Pix() []byte {
	return f.pix
}

// Bounds returns the frame rectangle.
func (f *Frame) Bounds() Rect {
	return NewRect(0, 0, f.width, f.height)
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c color.RGBA) {
	for i := 0; i < len(f.pix); i += 4 {
		f.pix[i] = c.R
		f.pix[i+1] = c.G
		f.pix[i+2] = c.B
		f.pix[i+3] = c.A
	}
}

// Set writes a pixel. Out-of-bounds coordinates are silently ignored.
func (f *Frame) Set(x, y int, c color.RGBA) {
	if !f.Bounds().Contains(x, y) {
		return
	}
	i := (y*f.width + x) * 4
	f.pix[i] = c.R
	f.pix[i+1] = c.G
	f.pix[i+2] = c.B
	f.pix[i+3] = c.A
}

// At returns the pixel at (x, y), or transparent black when out of bounds.
func (f *Frame) At(x, y int) color.RGBA {
	if !f.Bounds().Contains(x, y) {
		return color.RGBA{}
	}
	i := (y*f.width + x) * 4
	return color.RGBA{R: f.pix[i], G: f.pix[i+1], B: f.pix[i+2], A: f.pix[i+3]}
}

// DrawRect fills a rectangular area, clipped to the frame.
func (f *Frame) DrawRect(r Rect, c color.RGBA) {
	if !r.Intersects(f.Bounds()) {
		return
	}
	x0, x1 := Clamp(r.X, 0, f.width), Clamp(r.Right(), 0, f.width)
	y0, y1 := Clamp(r.Y, 0, f.height), Clamp(r.Bottom(), 0, f.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			f.Set(x, y, c)
		}
	}
}
