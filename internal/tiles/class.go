// Package tiles implements the scrolling terrain: color-coded pages decoded
// once into typed tile classes, and a two-page ring that answers collision
// queries in screen coordinates.
package tiles

import (
	"image/color"

	"github.com/vovakirdan/tilerunner/internal/config"
)

// Class is the gameplay meaning of a tile.
type Class uint8

const (
	Empty Class = iota
	Solid
	Hazard
	Boost
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Empty:
		return "empty"
	case Solid:
		return "solid"
	case Hazard:
		return "hazard"
	case Boost:
		return "boost"
	default:
		return "unknown"
	}
}

// Blocking reports whether a body may not occupy the tile.
func (c Class) Blocking() bool {
	return c != Empty
}

// Palette maps the reserved terrain colors to classes.
type Palette struct {
	Solid  color.RGBA
	Hazard color.RGBA
	Boost  color.RGBA
}

// NewPalette builds a palette from config triples.
func NewPalette(cfg config.PaletteConfig) Palette {
	return Palette{
		Solid:  rgb(cfg.Solid),
		Hazard: rgb(cfg.Hazard),
		Boost:  rgb(cfg.Boost),
	}
}

// DefaultPalette returns white solid, red hazard and blue boost.
func DefaultPalette() Palette {
	return NewPalette(config.DefaultRunnerConfig().World.Palette)
}

func rgb(c [3]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

// Classify matches an RGB triple exactly. Alpha is ignored.
func (p Palette) Classify(r, g, b uint8) Class {
	switch {
	case same(p.Solid, r, g, b):
		return Solid
	case same(p.Hazard, r, g, b):
		return Hazard
	case same(p.Boost, r, g, b):
		return Boost
	default:
		return Empty
	}
}

// ClassifyColor classifies an RGBA value, ignoring alpha.
func (p Palette) ClassifyColor(c color.RGBA) Class {
	return p.Classify(c.R, c.G, c.B)
}

// Color returns the reserved color of a class. Empty maps to opaque black.
func (p Palette) Color(c Class) color.RGBA {
	switch c {
	case Solid:
		return p.Solid
	case Hazard:
		return p.Hazard
	case Boost:
		return p.Boost
	default:
		return color.RGBA{A: 0xff}
	}
}

func same(c color.RGBA, r, g, b uint8) bool {
	return c.R == r && c.G == g && c.B == b
}
