package tiles

import (
	"image/color"
	"strings"
	"testing"

	"github.com/vovakirdan/tilerunner/internal/registry"
)

const (
	testTile  = 10
	testPageW = 48
	testPageH = 16
)

// stripes builds a page whose column tx holds Solid when (tx+phase)%3 == 0,
// Hazard when it is 1 and Empty otherwise, on every row.
func stripes(index, phase int) *Page {
	p := NewPage(index, testPageW, testPageH)
	for tx := 0; tx < testPageW; tx++ {
		var c Class
		switch (tx + phase) % 3 {
		case 0:
			c = Solid
		case 1:
			c = Hazard
		}
		for ty := 0; ty < testPageH; ty++ {
			p.Set(tx, ty, c)
		}
	}
	return p
}

// sequence hands out pages in order, repeating the last one.
type sequence struct {
	pages []*Page
	n     int
}

func (s *sequence) NextPage() *Page {
	p := s.pages[min(s.n, len(s.pages)-1)]
	s.n++
	return p
}

func TestPaletteClassify(t *testing.T) {
	pal := DefaultPalette()
	tests := []struct {
		name    string
		r, g, b uint8
		want    Class
	}{
		{"white", 255, 255, 255, Solid},
		{"red", 237, 28, 36, Hazard},
		{"blue", 0, 162, 232, Boost},
		{"black", 0, 0, 0, Empty},
		{"near white", 254, 255, 255, Empty},
		{"near red", 237, 28, 35, Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pal.Classify(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Classify(%d,%d,%d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestPaletteIgnoresAlpha(t *testing.T) {
	pal := DefaultPalette()
	for _, a := range []uint8{0, 1, 128, 255} {
		c := color.RGBA{R: 255, G: 255, B: 255, A: a}
		if got := pal.ClassifyColor(c); got != Solid {
			t.Errorf("alpha %d: got %v, want solid", a, got)
		}
	}
}

func TestPaletteColorRoundTrip(t *testing.T) {
	pal := DefaultPalette()
	for _, c := range []Class{Empty, Solid, Hazard, Boost} {
		if got := pal.ClassifyColor(pal.Color(c)); got != c {
			t.Errorf("class %v: round trip gave %v", c, got)
		}
	}
}

func TestParseLayout(t *testing.T) {
	rows := []string{
		"....",
		".^>.",
		"####",
	}
	p, err := ParseLayout(3, "tiny", rows, 4, 3)
	if err != nil {
		t.Fatalf("ParseLayout failed: %v", err)
	}

	if p.Index != 3 || p.Name != "tiny" {
		t.Errorf("unexpected identity %d/%q", p.Index, p.Name)
	}
	if p.At(1, 1) != Hazard || p.At(2, 1) != Boost || p.At(0, 2) != Solid || p.At(0, 0) != Empty {
		t.Errorf("unexpected classes: %v", p.Layout())
	}
	if got := strings.Join(p.Layout(), "/"); got != strings.Join(rows, "/") {
		t.Errorf("Layout() = %q", got)
	}
}

func TestParseLayoutErrors(t *testing.T) {
	if _, err := ParseLayout(0, "short", []string{"...."}, 4, 2); err == nil {
		t.Error("expected error for missing rows")
	}
	if _, err := ParseLayout(0, "narrow", []string{"....", "..."}, 4, 2); err == nil {
		t.Error("expected error for narrow row")
	}
}

// flipped is a Pixels whose row 0 is the bottom row.
type flipped struct {
	w, h int
	pix  []color.RGBA
}

func (f flipped) Width() int                { return f.w }
func (f flipped) Height() int               { return f.h }
func (f flipped) Pixel(x, y int) color.RGBA { return f.pix[y*f.w+x] }

func TestDecodePageFlipsRows(t *testing.T) {
	pal := DefaultPalette()
	src := flipped{w: 2, h: 2, pix: []color.RGBA{
		pal.Solid, pal.Solid, // bottom row
		pal.Hazard, {},       // top row
	}}

	p := DecodePage(1, src, pal)
	if p.At(0, 0) != Hazard || p.At(1, 0) != Empty {
		t.Errorf("top row decoded wrong: %v", p.Layout())
	}
	if p.At(0, 1) != Solid || p.At(1, 1) != Solid {
		t.Errorf("bottom row decoded wrong: %v", p.Layout())
	}
}

func TestClassifyOutOfRange(t *testing.T) {
	w := NewWorld(&sequence{pages: []*Page{stripes(0, 0), stripes(1, 1)}}, testTile)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"below pages", 0, testPageH * testTile},
		{"beyond both pages", 2 * testPageW * testTile, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Classify(tt.x, tt.y); got != Empty {
				t.Errorf("Classify(%d,%d) = %v, want empty", tt.x, tt.y, got)
			}
		})
	}
}

func TestClassifyContinuity(t *testing.T) {
	cur, next := stripes(0, 0), stripes(1, 1)
	w := NewWorld(&sequence{pages: []*Page{cur, next}}, testTile)
	const screenW = 240

	for o := 0; o < w.PageWidthPx()-1; o++ {
		w.offset = o
		before := make([]Class, screenW)
		for x := range before {
			before[x] = w.Classify(x, 5)
		}

		w.offset = o + 1
		for x := 0; x < screenW-1; x++ {
			if got := w.Classify(x, 5); got != before[x+1] {
				t.Fatalf("offset %d: column %d = %v, want %v", o+1, x, got, before[x+1])
			}
		}
	}
}

func TestClassifySamplesNextPage(t *testing.T) {
	cur, next := stripes(0, 0), stripes(1, 1)
	w := NewWorld(&sequence{pages: []*Page{cur, next}}, testTile)
	w.offset = 100

	// Column x samples ring tile (x+100)/10; from tile 48 on it is next.
	x := testPageW*testTile - 100
	if got, want := w.Classify(x, 0), next.At(0, 0); got != want {
		t.Errorf("first next-page column = %v, want %v", got, want)
	}
	if got, want := w.Classify(x-1, 0), cur.At(testPageW-1, 0); got != want {
		t.Errorf("last current-page column = %v, want %v", got, want)
	}
}

func TestScrollExactSwap(t *testing.T) {
	p0, p1, p2 := stripes(0, 0), stripes(1, 1), stripes(2, 2)
	w := NewWorld(&sequence{pages: []*Page{p0, p1, p2}}, testTile)

	wantFirst := w.TileAt(testPageW, 0)

	swaps := 0
	for i := 0; i < w.PageWidthPx(); i++ {
		if w.Scroll(1) {
			swaps++
		}
	}

	if swaps != 1 {
		t.Fatalf("expected exactly one swap, got %d", swaps)
	}
	if w.Offset() != 0 {
		t.Errorf("offset after swap = %d, want 0", w.Offset())
	}
	if w.Current() != p1 || w.Next() != p2 {
		t.Errorf("ring not advanced: current=%d next=%d", w.Current().Index, w.Next().Index)
	}
	if got := w.Classify(0, 0); got != wantFirst {
		t.Errorf("Classify(0,0) after swap = %v, want %v", got, wantFirst)
	}
}

func TestScrollLargeDelta(t *testing.T) {
	w := NewWorld(&sequence{pages: []*Page{stripes(0, 0), stripes(1, 1)}}, testTile)

	if w.Scroll(7) {
		t.Fatal("unexpected swap")
	}
	if !w.Scroll(w.PageWidthPx()) {
		t.Fatal("expected swap")
	}
	if w.Offset() != 7 {
		t.Errorf("offset = %d, want 7", w.Offset())
	}
}

func TestDeckSelectors(t *testing.T) {
	pages := []*Page{stripes(0, 0), stripes(1, 1), stripes(2, 2)}

	tests := []struct {
		selector string
		want     []int
	}{
		{"rotation", []int{0, 0, 0, 0, 0}},
		{"cycle", []int{0, 1, 2, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			sel, err := registry.Create(tt.selector, 1)
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			d, err := NewDeck(pages, sel)
			if err != nil {
				t.Fatal(err)
			}
			for i, want := range tt.want {
				if got := d.NextPage().Index; got != want {
					t.Errorf("draw %d: page %d, want %d", i, got, want)
				}
			}

			d.Reset()
			if d.NextPage().Index != 0 {
				t.Error("Reset should restart at page 0")
			}
		})
	}
}

func TestRandomSelectorNoRepeats(t *testing.T) {
	pages := []*Page{stripes(0, 0), stripes(1, 1), stripes(2, 2)}
	sel, err := registry.Create("random", 42)
	if err != nil {
		t.Fatal(err)
	}
	d, _ := NewDeck(pages, sel)

	prev := d.NextPage().Index
	seen := map[int]bool{prev: true}
	for i := 0; i < 100; i++ {
		cur := d.NextPage().Index
		if cur == prev {
			t.Fatalf("draw %d repeated page %d", i, cur)
		}
		seen[cur] = true
		prev = cur
	}
	if len(seen) != len(pages) {
		t.Errorf("expected all pages drawn, saw %v", seen)
	}
}

func TestRandomSelectorDeterministic(t *testing.T) {
	a, _ := registry.Create("random", 9)
	b, _ := registry.Create("random", 9)
	for i := 0; i < 20; i++ {
		if x, y := a.Next(i%4, 4), b.Next(i%4, 4); x != y {
			t.Fatalf("step %d: %d != %d", i, x, y)
		}
	}
}

func TestRandomSelectorSinglePage(t *testing.T) {
	sel, _ := registry.Create("random", 1)
	if got := sel.Next(0, 1); got != 0 {
		t.Errorf("Next(0,1) = %d, want 0", got)
	}
}

func TestNewDeckEmpty(t *testing.T) {
	sel, _ := registry.Create("cycle", 0)
	if _, err := NewDeck(nil, sel); err != ErrEmptyDeck {
		t.Errorf("NewDeck(nil) error = %v, want ErrEmptyDeck", err)
	}
}
