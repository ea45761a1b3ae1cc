package tiles

import (
	"fmt"
	"image/color"
)

// Page is one fixed-size segment of the world, decoded into classes.
// Row 0 is the top row.
type Page struct {
	Index int
	Name  string
	w, h  int
	cells []Class
}

// NewPage creates an empty page.
func NewPage(index, w, h int) *Page {
	return &Page{
		Index: index,
		w:     w,
		h:     h,
		cells: make([]Class, w*h),
	}
}

// Width returns the page width in tiles.
func (p *Page) Width() int { return p.w }

// Height returns the page height in tiles.
func (p *Page) Height() int { return p.h }

// At returns the class at tile (tx, ty). Out of range tiles are Empty.
func (p *Page) At(tx, ty int) Class {
	if tx < 0 || ty < 0 || tx >= p.w || ty >= p.h {
		return Empty
	}
	return p.cells[ty*p.w+tx]
}

// Set stores a class at tile (tx, ty). Out of range writes are ignored.
func (p *Page) Set(tx, ty int, c Class) {
	if tx < 0 || ty < 0 || tx >= p.w || ty >= p.h {
		return
	}
	p.cells[ty*p.w+tx] = c
}

// Pixels is a decoded image with bottom-to-top rows: Pixel(x, 0) is the
// bottom row.
type Pixels interface {
	Width() int
	Height() int
	Pixel(x, y int) color.RGBA
}

// DecodePage classifies every pixel of src as one tile. The top image row
// becomes page row 0.
func DecodePage(index int, src Pixels, pal Palette) *Page {
	w, h := src.Width(), src.Height()
	p := NewPage(index, w, h)
	for ty := 0; ty < h; ty++ {
		for tx := 0; tx < w; tx++ {
			p.cells[ty*w+tx] = pal.ClassifyColor(src.Pixel(tx, h-1-ty))
		}
	}
	return p
}

// Layout symbols.
const (
	SymbolSolid  = '#'
	SymbolHazard = '^'
	SymbolBoost  = '>'
	SymbolEmpty  = '.'
)

// ParseLayout builds a page from ASCII rows, top row first.
// Every row must be exactly w bytes and there must be exactly h rows.
func ParseLayout(index int, name string, rows []string, w, h int) (*Page, error) {
	if len(rows) != h {
		return nil, fmt.Errorf("tiles: page %q: %d rows, want %d", name, len(rows), h)
	}
	p := NewPage(index, w, h)
	p.Name = name
	for ty, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("tiles: page %q row %d: width %d, want %d", name, ty, len(row), w)
		}
		for tx := 0; tx < w; tx++ {
			p.cells[ty*w+tx] = symbolClass(row[tx])
		}
	}
	return p, nil
}

// Layout renders the page back to ASCII rows.
func (p *Page) Layout() []string {
	rows := make([]string, p.h)
	buf := make([]byte, p.w)
	for ty := 0; ty < p.h; ty++ {
		for tx := 0; tx < p.w; tx++ {
			buf[tx] = classSymbol(p.cells[ty*p.w+tx])
		}
		rows[ty] = string(buf)
	}
	return rows
}

func symbolClass(b byte) Class {
	switch b {
	case SymbolSolid:
		return Solid
	case SymbolHazard:
		return Hazard
	case SymbolBoost:
		return Boost
	default:
		return Empty
	}
}

func classSymbol(c Class) byte {
	switch c {
	case Solid:
		return SymbolSolid
	case Hazard:
		return SymbolHazard
	case Boost:
		return SymbolBoost
	default:
		return SymbolEmpty
	}
}
