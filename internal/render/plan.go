// Package render turns simulation state into an ordered list of draw
// commands and executes such lists against the asset set into a flat RGBA
// frame.
package render

import (
	"image/color"

	"github.com/vovakirdan/tilerunner/internal/assets"
)

// Kind is the type of a draw command.
type Kind uint8

const (
	// KindFill clears the whole frame to Color.
	KindFill Kind = iota
	// KindImage draws the named full-screen asset.
	KindImage
	// KindSprite draws one atlas cell with its top-left corner at X, Y.
	KindSprite
)

// Command is a single draw instruction.
type Command struct {
	Kind   Kind
	Color  color.RGBA
	Name   string
	Sprite assets.Sprite
	X, Y   int
}

// Plan is an ordered list of draw commands; later commands paint over
// earlier ones.
type Plan struct {
	Commands []Command
}

// Fill appends a full-frame fill.
func (p *Plan) Fill(c color.RGBA) {
	p.Commands = append(p.Commands, Command{Kind: KindFill, Color: c})
}

// Image appends a full-screen image.
func (p *Plan) Image(name string) {
	p.Commands = append(p.Commands, Command{Kind: KindImage, Name: name})
}

// Sprite appends a sprite at screen position (x, y).
func (p *Plan) Sprite(s assets.Sprite, x, y int) {
	p.Commands = append(p.Commands, Command{Kind: KindSprite, Sprite: s, X: x, Y: y})
}

// Len returns the number of commands.
func (p *Plan) Len() int { return len(p.Commands) }

// Count returns how many sprite commands draw s.
func (p *Plan) Count(s assets.Sprite) int {
	n := 0
	for _, c := range p.Commands {
		if c.Kind == KindSprite && c.Sprite == s {
			n++
		}
	}
	return n
}
