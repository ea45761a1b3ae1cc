package render

import (
	"image/color"

	"github.com/vovakirdan/tilerunner/internal/assets"
	"github.com/vovakirdan/tilerunner/internal/score"
	"github.com/vovakirdan/tilerunner/internal/tiles"
)

// Mode selects which screen a view shows.
type Mode uint8

const (
	ModeSplash Mode = iota
	ModeRunning
	ModeGameOver
)

// ScoreDigits is the width of every score readout.
const ScoreDigits = 5

// MaxHearts caps the lives readout.
const MaxHearts = 10

// Sky is the background color behind the terrain.
var Sky = color.RGBA{R: 0x20, G: 0x28, B: 0x38, A: 0xff}

// Terrain is the part of the world a view draws.
type Terrain interface {
	TileAt(tx, ty int) tiles.Class
	Offset() int
	TileSize() int
}

// View is everything Build needs for one frame.
type View struct {
	Mode   Mode
	Width  int
	Height int

	// Running only.
	World   Terrain
	PlayerX int
	PlayerY int
	Lives   int

	Score uint64
	High  uint64
}

// Build translates a view into a draw plan.
func Build(v View) Plan {
	var p Plan
	switch v.Mode {
	case ModeSplash:
		p.Image(assets.NameSplash)
		readouts(&p, v)
	case ModeGameOver:
		p.Image(assets.NameGameOver)
		readouts(&p, v)
	default:
		p.Fill(Sky)
		if v.World != nil {
			terrain(&p, v)
		}
		p.Sprite(assets.SpritePlayer, v.PlayerX, v.PlayerY)
		hud(&p, v)
	}
	return p
}

func terrain(p *Plan, v View) {
	tile := v.World.TileSize()
	off := v.World.Offset()
	first := off / tile
	cols := v.Width/tile + 2
	rows := (v.Height + tile - 1) / tile

	for ty := 0; ty < rows; ty++ {
		for c := 0; c < cols; c++ {
			tx := first + c
			s, ok := tileSprite(v.World.TileAt(tx, ty))
			if !ok {
				continue
			}
			p.Sprite(s, tx*tile-off, ty*tile)
		}
	}
}

func tileSprite(c tiles.Class) (assets.Sprite, bool) {
	switch c {
	case tiles.Solid:
		return assets.SpriteGround, true
	case tiles.Hazard:
		return assets.SpriteHazard, true
	case tiles.Boost:
		return assets.SpriteBoost, true
	default:
		return 0, false
	}
}

// hud draws hearts top-left, the high score centered and the score
// top-right. Digits go least significant first, right to left.
func hud(p *Plan, v View) {
	for i := 0; i < min(v.Lives, MaxHearts); i++ {
		p.Sprite(assets.SpriteHeart, i*assets.CellSize, 0)
	}
	digits(p, v.High, v.Width/2+ScoreDigits*assets.CellSize/2, 0)
	digits(p, v.Score, v.Width, 0)
}

func readouts(p *Plan, v View) {
	digits(p, v.Score, assets.ReadoutRight, assets.ReadoutScoreY)
	digits(p, v.High, assets.ReadoutRight, assets.ReadoutBestY)
}

// digits draws ScoreDigits digits ending at x = right.
func digits(p *Plan, n uint64, right, y int) {
	for i, d := range score.Digits(n, ScoreDigits) {
		p.Sprite(assets.Digit(d), right-(i+1)*assets.CellSize, y)
	}
}
