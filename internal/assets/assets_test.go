package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/vovakirdan/tilerunner/internal/config"
	"github.com/vovakirdan/tilerunner/internal/tiles"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
)

func TestFromImageFlipsRows(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.SetRGBA(0, 0, red)   // top-left
	img.SetRGBA(1, 2, green) // bottom-right

	g := FromImage(img)
	if g.Width() != 2 || g.Height() != 3 {
		t.Fatalf("size %dx%d, want 2x3", g.Width(), g.Height())
	}
	if g.Pixel(0, 2) != red {
		t.Errorf("top-left should be grid (0,2), got %v", g.Pixel(0, 2))
	}
	if g.Pixel(1, 0) != green {
		t.Errorf("bottom-right should be grid (1,0), got %v", g.Pixel(1, 0))
	}

	back := g.Image()
	if back.RGBAAt(0, 0) != red || back.RGBAAt(1, 2) != green {
		t.Error("Image() did not restore orientation")
	}
}

func TestGridCrop(t *testing.T) {
	g := NewGrid(6, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			g.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}

	c := g.Crop(2, 1, 5, 3)
	if c.Width() != 3 || c.Height() != 2 {
		t.Fatalf("crop size %dx%d, want 3x2", c.Width(), c.Height())
	}
	if got := c.Pixel(0, 0); got.R != 2 || got.G != 1 {
		t.Errorf("crop origin = %v, want (2,1)", got)
	}
	if got := c.Pixel(2, 1); got.R != 4 || got.G != 2 {
		t.Errorf("crop corner = %v, want (4,2)", got)
	}

	clipped := g.Crop(4, 2, 10, 10)
	if clipped.Width() != 2 || clipped.Height() != 2 {
		t.Errorf("clipped crop %dx%d, want 2x2", clipped.Width(), clipped.Height())
	}
	if g.Pixel(-1, 0) != (color.RGBA{}) || g.Pixel(6, 0) != (color.RGBA{}) {
		t.Error("out of range pixels should be transparent")
	}
}

func writeImage(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		t.Fatal(err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	for i, name := range Names {
		img := image.NewRGBA(image.Rect(0, 0, 4, 3))
		img.SetRGBA(0, 0, red)
		ext := ".bmp"
		if i%2 == 1 {
			ext = ".png"
		}
		writeImage(t, filepath.Join(dir, name+ext), img)
	}

	s, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	for _, name := range Names {
		g := s.Get(name)
		if g == nil {
			t.Fatalf("missing %s", name)
		}
		if got := g.Pixel(0, 2); got.R != 255 || got.G != 0 {
			t.Errorf("%s: top-left pixel = %v, want red", name, got)
		}
	}
}

func TestLoadDirMissing(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "blocks.bmp"), image.NewRGBA(image.Rect(0, 0, 1, 1)))

	_, err := LoadDir(dir)
	if !errors.Is(err, ErrMissing) {
		t.Errorf("LoadDir error = %v, want ErrMissing", err)
	}
}

func TestLoadDirCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "blocks.bmp"), []byte("not a bitmap"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadDir(dir)
	if err == nil || errors.Is(err, ErrMissing) {
		t.Errorf("LoadDir error = %v, want decode error", err)
	}
}

func builtin(t *testing.T) (*Set, config.RunnerConfig, config.WorldLayout) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg := config.DefaultRunnerConfig()
	layout, err := config.LoadWorld("")
	if err != nil {
		t.Fatal(err)
	}
	s, err := Builtin(cfg, layout)
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}
	return s, cfg, layout
}

func TestBuiltinPassesCheck(t *testing.T) {
	s, cfg, _ := builtin(t)
	if err := s.Check(cfg); err != nil {
		t.Errorf("Check failed: %v", err)
	}
	if got := len(s.List()); got != len(Names) {
		t.Errorf("List() has %d names, want %d", got, len(Names))
	}
}

func TestBuiltinPagesMatchLayout(t *testing.T) {
	s, cfg, layout := builtin(t)
	w := cfg.World

	pages, err := s.Pages(tiles.NewPalette(w.Palette), w.PageWidth, w.PageHeight)
	if err != nil {
		t.Fatalf("Pages failed: %v", err)
	}
	if len(pages) != len(layout.Pages) {
		t.Fatalf("got %d pages, want %d", len(pages), len(layout.Pages))
	}

	for i, pl := range layout.Pages {
		want, err := tiles.ParseLayout(i, pl.Name, pl.Rows, w.PageWidth, w.PageHeight)
		if err != nil {
			t.Fatal(err)
		}
		for ty, row := range want.Layout() {
			if got := pages[i].Layout()[ty]; got != row {
				t.Errorf("page %d row %d:\n got %s\nwant %s", i, ty, got, row)
			}
		}
		if pages[i].Index != i {
			t.Errorf("page %d has index %d", i, pages[i].Index)
		}
	}
}

func TestCheckRejectsSmallAssets(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewSet()
	for _, name := range Names {
		s.Put(name, NewGrid(1, 1))
	}
	if err := s.Check(cfg); err == nil {
		t.Error("expected error for undersized assets")
	}

	if err := NewSet().Check(cfg); !errors.Is(err, ErrMissing) {
		t.Errorf("Check on empty set = %v, want ErrMissing", err)
	}
}

func TestAtlasCells(t *testing.T) {
	tests := []struct {
		sprite   Sprite
		col, row int
	}{
		{SpriteGround, 0, 0},
		{SpritePlayer, 3, 0},
		{SpriteHeart, 4, 0},
		{Digit(0), 0, 1},
		{Digit(7), 7, 1},
		{Digit(12), 2, 1},
	}

	for _, tt := range tests {
		col, row := Cell(tt.sprite)
		if col != tt.col || row != tt.row {
			t.Errorf("Cell(%d) = (%d,%d), want (%d,%d)", tt.sprite, col, row, tt.col, tt.row)
		}
	}
}

func TestBuiltinAtlasUpright(t *testing.T) {
	s, _, _ := builtin(t)
	img := s.Get(NameImg)

	// Heart art: top art row is empty, second row starts with ".RR".
	col, row := Cell(SpriteHeart)
	top := img.Pixel(col*CellSize+1, row*CellSize+CellSize-1)
	second := img.Pixel(col*CellSize+1, row*CellSize+CellSize-2)
	if top.A != 0 {
		t.Errorf("heart top row should be transparent, got %v", top)
	}
	if second.A == 0 {
		t.Error("heart second row should be painted")
	}

	// Digit 1 has its foot bar on the bottom art row.
	col, row = Cell(Digit(1))
	if img.Pixel(col*CellSize+2, row*CellSize).A == 0 {
		t.Error("digit 1 foot should be painted on the cell's bottom row")
	}
}
