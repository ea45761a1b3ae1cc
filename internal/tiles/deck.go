package tiles

import (
	"errors"

	"github.com/vovakirdan/tilerunner/internal/registry"
)

// ErrEmptyDeck is returned when a deck is built without pages.
var ErrEmptyDeck = errors.New("tiles: deck has no pages")

// Deck is a PageSource drawing from a fixed set of pages with a selector.
type Deck struct {
	pages   []*Page
	sel     registry.Selector
	cur     int
	started bool
}

// NewDeck creates a deck. The first page drawn is always pages[0].
func NewDeck(pages []*Page, sel registry.Selector) (*Deck, error) {
	if len(pages) == 0 {
		return nil, ErrEmptyDeck
	}
	return &Deck{pages: pages, sel: sel}, nil
}

// NextPage returns the next page chosen by the selector.
func (d *Deck) NextPage() *Page {
	if !d.started {
		d.started = true
		d.cur = 0
		return d.pages[0]
	}
	n := d.sel.Next(d.cur, len(d.pages))
	if n < 0 || n >= len(d.pages) {
		n = ((n % len(d.pages)) + len(d.pages)) % len(d.pages)
	}
	d.cur = n
	return d.pages[n]
}

// Reset restarts the deck at its first page.
func (d *Deck) Reset() {
	d.started = false
	d.cur = 0
}

// Len returns the number of pages.
func (d *Deck) Len() int { return len(d.pages) }

// Pages returns the pages in deck order.
func (d *Deck) Pages() []*Page { return d.pages }

// Selector returns the selector ID.
func (d *Deck) Selector() string { return d.sel.ID() }
