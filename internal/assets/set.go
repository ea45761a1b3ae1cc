package assets

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/image/bmp"

	"github.com/vovakirdan/tilerunner/internal/config"
	"github.com/vovakirdan/tilerunner/internal/tiles"
)

// Logical asset names.
const (
	NameBlocks   = "blocks"
	NameImg      = "img"
	NameSplash   = "splash"
	NameGameOver = "gameover"
)

// Names lists every required asset.
var Names = []string{NameBlocks, NameImg, NameSplash, NameGameOver}

// ErrMissing is returned when a required asset is absent.
var ErrMissing = errors.New("assets: missing asset")

// Set holds decoded grids by logical name.
type Set struct {
	grids map[string]*Grid
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{grids: make(map[string]*Grid)}
}

// Put stores a grid under name.
func (s *Set) Put(name string, g *Grid) {
	s.grids[name] = g
}

// Get returns the grid stored under name, or nil.
func (s *Set) Get(name string) *Grid {
	return s.grids[name]
}

// List returns the stored names, sorted.
func (s *Set) List() []string {
	names := make([]string, 0, len(s.grids))
	for n := range s.grids {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LoadDir decodes <name>.bmp or <name>.png for every required asset in dir.
func LoadDir(dir string) (*Set, error) {
	s := NewSet()
	for _, name := range Names {
		g, err := loadOne(dir, name)
		if err != nil {
			return nil, err
		}
		s.Put(name, g)
	}
	return s, nil
}

func loadOne(dir, name string) (*Grid, error) {
	decoders := []struct {
		ext    string
		decode func(f *os.File) (image.Image, error)
	}{
		{".bmp", func(f *os.File) (image.Image, error) { return bmp.Decode(f) }},
		{".png", func(f *os.File) (image.Image, error) { return png.Decode(f) }},
	}

	for _, d := range decoders {
		path := filepath.Join(dir, name+d.ext)
		f, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("assets: cannot open %s: %w", path, err)
		}
		img, err := d.decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
		}
		return FromImage(img), nil
	}
	return nil, fmt.Errorf("%w: %s (looked for %s.bmp and %s.png in %s)", ErrMissing, name, name, name, dir)
}

// Check verifies that every asset is present and large enough for cfg.
func (s *Set) Check(cfg config.RunnerConfig) error {
	for _, name := range Names {
		if s.grids[name] == nil {
			return fmt.Errorf("%w: %s", ErrMissing, name)
		}
	}

	w := cfg.World
	blocks := s.grids[NameBlocks]
	if blocks.Width() < w.PageWidth || blocks.Height() < w.PageHeight {
		return fmt.Errorf("assets: blocks is %dx%d, need at least one %dx%d page",
			blocks.Width(), blocks.Height(), w.PageWidth, w.PageHeight)
	}

	aw, ah := AtlasSize()
	if img := s.grids[NameImg]; img.Width() < aw || img.Height() < ah {
		return fmt.Errorf("assets: img is %dx%d, need at least %dx%d", img.Width(), img.Height(), aw, ah)
	}

	for _, name := range []string{NameSplash, NameGameOver} {
		g := s.grids[name]
		if g.Width() < cfg.Screen.Width || g.Height() < cfg.Screen.Height {
			return fmt.Errorf("assets: %s is %dx%d, need at least %dx%d",
				name, g.Width(), g.Height(), cfg.Screen.Width, cfg.Screen.Height)
		}
	}
	return nil
}

// Pages decodes the blocks atlas into pages. Page i spans columns
// [i*pageW, (i+1)*pageW); each pixel is one tile.
func (s *Set) Pages(pal tiles.Palette, pageW, pageH int) ([]*tiles.Page, error) {
	blocks := s.grids[NameBlocks]
	if blocks == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissing, NameBlocks)
	}
	n := blocks.Width() / pageW
	if n == 0 || blocks.Height() < pageH {
		return nil, fmt.Errorf("assets: blocks is %dx%d, smaller than one %dx%d page",
			blocks.Width(), blocks.Height(), pageW, pageH)
	}

	pages := make([]*tiles.Page, n)
	for i := range pages {
		pages[i] = tiles.DecodePage(i, blocks.Crop(i*pageW, 0, (i+1)*pageW, pageH), pal)
	}
	return pages, nil
}
