package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/tilerunner/internal/config"
	"github.com/vovakirdan/tilerunner/internal/tiles"
)

// Screen positions of the readouts drawn over the splash and game over
// images. Digits are drawn right to left, ending at ReadoutRight.
const (
	ReadoutRight  = 170
	ReadoutScoreY = 96
	ReadoutBestY  = 114
)

var spritePalette = map[byte]color.RGBA{
	'W': {R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
	'G': {R: 0x8a, G: 0x7f, B: 0x70, A: 0xff},
	'R': {R: 0xd8, G: 0x2a, B: 0x30, A: 0xff},
	'r': {R: 0x80, G: 0x10, B: 0x18, A: 0xff},
	'B': {R: 0x10, G: 0x70, B: 0xc8, A: 0xff},
	'b': {R: 0x70, G: 0xc0, B: 0xf0, A: 0xff},
	'Y': {R: 0xf8, G: 0xd0, B: 0x30, A: 0xff},
	'K': {R: 0x10, G: 0x10, B: 0x10, A: 0xff},
}

var spriteArt = map[Sprite][]string{
	SpriteGround: {
		"WWWWWWWWWW",
		"WGGGGGGGGW",
		"WGWGGGWGGW",
		"WGGGGGGGGW",
		"WGGGWGGGGW",
		"WGGGGGGWGW",
		"WGWGGGGGGW",
		"WGGGGWGGGW",
		"WGGGGGGGGW",
		"WWWWWWWWWW",
	},
	SpriteHazard: {
		"..........",
		"..R....R..",
		"..R....R..",
		".RrR..RrR.",
		".RrR..RrR.",
		".RrR..RrR.",
		"RrrrRRrrrR",
		"RrrrRRrrrR",
		"RrrrrrrrrR",
		"RRRRRRRRRR",
	},
	SpriteBoost: {
		"BBBBBBBBBB",
		"BbbbbbbbbB",
		"BbBbbbbbbB",
		"BbbBBbbbbB",
		"BbbbbBBbbB",
		"BbbbbBBbbB",
		"BbbBBbbbbB",
		"BbBbbbbbbB",
		"BbbbbbbbbB",
		"BBBBBBBBBB",
	},
	SpritePlayer: {
		".YYYYYYYY.",
		"YYYYYYYYYY",
		"YYYYYKKYKY",
		"YYYYYKKYKY",
		"YYYYYYYYYY",
		"YYYYYYYYYY",
		"YYYKKKKKYY",
		"YYYYYYYYYY",
		"YYYYYYYYYY",
		".YY....YY.",
	},
	SpriteHeart: {
		"..........",
		".RR...RR..",
		"RRRR.RRRR.",
		"RRRRRRRRR.",
		"RRRRRRRRR.",
		".RRRRRRR..",
		"..RRRRR...",
		"...RRR....",
		"....R.....",
		"..........",
	},
}

// digitFont is a 3x5 font, scaled 2x into a cell.
var digitFont = [10][5]string{
	{"###", "#.#", "#.#", "#.#", "###"},
	{".#.", "##.", ".#.", ".#.", "###"},
	{"###", "..#", "###", "#..", "###"},
	{"###", "..#", "###", "..#", "###"},
	{"#.#", "#.#", "###", "..#", "..#"},
	{"###", "#..", "###", "..#", "###"},
	{"###", "#..", "###", "#.#", "###"},
	{"###", "..#", "..#", "..#", "..#"},
	{"###", "#.#", "###", "#.#", "###"},
	{"###", "#.#", "###", "..#", "###"},
}

// Builtin generates a complete asset set: terrain pages painted from the
// world layouts, a drawn sprite atlas and text screens.
func Builtin(cfg config.RunnerConfig, layout config.WorldLayout) (*Set, error) {
	blocks, err := paintBlocks(cfg, layout)
	if err != nil {
		return nil, err
	}
	atlas, err := paintAtlas()
	if err != nil {
		return nil, err
	}

	s := NewSet()
	s.Put(NameBlocks, blocks)
	s.Put(NameImg, atlas)
	s.Put(NameSplash, paintScreen(cfg.Screen, color.RGBA{R: 0x18, G: 0x24, B: 0x40, A: 0xff},
		"TILE RUNNER", "PRESS SPACE"))
	s.Put(NameGameOver, paintScreen(cfg.Screen, color.RGBA{R: 0x40, G: 0x10, B: 0x18, A: 0xff},
		"GAME OVER", "PRESS SPACE TO RETRY"))
	return s, nil
}

func paintBlocks(cfg config.RunnerConfig, layout config.WorldLayout) (*Grid, error) {
	if len(layout.Pages) == 0 {
		return nil, fmt.Errorf("%w: world layout has no pages", ErrMissing)
	}
	w, h := cfg.World.PageWidth, cfg.World.PageHeight
	pal := tiles.NewPalette(cfg.World.Palette)

	g := NewGrid(w*len(layout.Pages), h)
	for i, pl := range layout.Pages {
		page, err := tiles.ParseLayout(i, pl.Name, pl.Rows, w, h)
		if err != nil {
			return nil, fmt.Errorf("assets: %w", err)
		}
		for ty := 0; ty < h; ty++ {
			for tx := 0; tx < w; tx++ {
				g.Set(i*w+tx, h-1-ty, pal.Color(page.At(tx, ty)))
			}
		}
	}
	return g, nil
}

func paintAtlas() (*Grid, error) {
	aw, ah := AtlasSize()
	g := NewGrid(aw, ah)

	for s, art := range spriteArt {
		if err := paintCell(g, s, art); err != nil {
			return nil, err
		}
	}

	white := spritePalette['W']
	for d := 0; d < 10; d++ {
		col, row := Cell(Digit(d))
		for fy, line := range digitFont[d] {
			for fx := 0; fx < len(line); fx++ {
				if line[fx] != '#' {
					continue
				}
				for dy := 0; dy < 2; dy++ {
					for dx := 0; dx < 2; dx++ {
						lx, ly := 2+fx*2+dx, fy*2+dy
						g.Set(col*CellSize+lx, row*CellSize+CellSize-1-ly, white)
					}
				}
			}
		}
	}
	return g, nil
}

// paintCell draws ASCII art, top row first, into the sprite's cell.
func paintCell(g *Grid, s Sprite, art []string) error {
	if len(art) != CellSize {
		return fmt.Errorf("assets: sprite %d has %d rows", s, len(art))
	}
	col, row := Cell(s)
	for ly, line := range art {
		if len(line) != CellSize {
			return fmt.Errorf("assets: sprite %d row %d has width %d", s, ly, len(line))
		}
		for lx := 0; lx < CellSize; lx++ {
			c, ok := spritePalette[line[lx]]
			if !ok {
				continue
			}
			g.Set(col*CellSize+lx, row*CellSize+CellSize-1-ly, c)
		}
	}
	return nil
}

// paintScreen renders a full-screen image with a title, a prompt and the
// readout labels.
func paintScreen(screen config.ScreenConfig, bg color.RGBA, title, prompt string) *Grid {
	img := image.NewRGBA(image.Rect(0, 0, screen.Width, screen.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	text := func(s string, x, baseline int, c color.RGBA) {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(c),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(x, baseline),
		}
		d.DrawString(s)
	}
	centered := func(s string, baseline int, c color.RGBA) {
		w := font.MeasureString(basicfont.Face7x13, s).Round()
		text(s, (screen.Width-w)/2, baseline, c)
	}

	centered(title, 50, spritePalette['Y'])
	centered(prompt, 70, spritePalette['W'])

	labelRight := ReadoutRight - 5*CellSize - 8
	for _, l := range []struct {
		s string
		y int
	}{
		{"SCORE", ReadoutScoreY},
		{"BEST", ReadoutBestY},
	} {
		w := font.MeasureString(basicfont.Face7x13, l.s).Round()
		text(l.s, labelRight-w, l.y+CellSize, spritePalette['b'])
	}

	return FromImage(img)
}
