package tiles

// PageSource supplies the page that scrolls in after a ring advance.
type PageSource interface {
	NextPage() *Page
}

// World is a two-page ring: the visible page and the page scrolling in
// from the right. A single offset selects which page a column samples.
type World struct {
	ring   [2]*Page
	src    PageSource
	tile   int
	pageW  int
	offset int
}

// NewWorld fills the ring with two pages from src.
// All pages from src must share the dimensions of the first one.
func NewWorld(src PageSource, tileSize int) *World {
	w := &World{src: src, tile: tileSize}
	w.ring[0] = src.NextPage()
	w.ring[1] = src.NextPage()
	w.pageW = w.ring[0].Width()
	return w
}

// Classify returns the class under screen pixel (x, y) at the current
// offset. Coordinates left of or above the screen, and beyond both pages,
// are Empty.
func (w *World) Classify(x, y int) Class {
	if x < 0 || y < 0 {
		return Empty
	}
	return w.TileAt((x+w.offset)/w.tile, y/w.tile)
}

// TileAt returns the class at ring tile (tx, ty), where columns
// [0, pageW) address the current page and [pageW, 2*pageW) the next one.
func (w *World) TileAt(tx, ty int) Class {
	if tx < 0 || ty < 0 {
		return Empty
	}
	if tx < w.pageW {
		return w.ring[0].At(tx, ty)
	}
	return w.ring[1].At(tx-w.pageW, ty)
}

// Scroll moves the view right by delta pixels and reports whether the ring
// advanced. The offset wraps by subtracting the page width.
func (w *World) Scroll(delta int) bool {
	w.offset += delta
	swapped := false
	for w.offset >= w.PageWidthPx() {
		w.offset -= w.PageWidthPx()
		w.Advance()
		swapped = true
	}
	return swapped
}

// Advance makes the next page current and requests a new next page.
func (w *World) Advance() {
	w.ring[0] = w.ring[1]
	w.ring[1] = w.src.NextPage()
}

// Offset returns the scroll offset in pixels, 0 <= offset < PageWidthPx.
func (w *World) Offset() int { return w.offset }

// TileSize returns the tile edge length in pixels.
func (w *World) TileSize() int { return w.tile }

// PageWidth returns the page width in tiles.
func (w *World) PageWidth() int { return w.pageW }

// PageWidthPx returns the page width in pixels.
func (w *World) PageWidthPx() int { return w.pageW * w.tile }

// Current returns the visible page.
func (w *World) Current() *Page { return w.ring[0] }

// Next returns the page scrolling in.
func (w *World) Next() *Page { return w.ring[1] }
