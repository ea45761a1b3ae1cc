package tiles

import (
	"math/rand"

	"github.com/vovakirdan/tilerunner/internal/registry"
)

func init() {
	registry.Register("rotation", func(int64) registry.Selector { return rotation{} })
	registry.Register("cycle", func(int64) registry.Selector { return cycle{} })
	registry.Register("random", func(seed int64) registry.Selector {
		return &random{rng: rand.New(rand.NewSource(seed))}
	})
}

// rotation repeats the current page forever.
type rotation struct{}

func (rotation) ID() string              { return "rotation" }
func (rotation) Title() string           { return "Repeat the first page" }
func (rotation) Next(current, _ int) int { return current }

// cycle walks the deck in order and wraps.
type cycle struct{}

func (cycle) ID() string                  { return "cycle" }
func (cycle) Title() string               { return "Walk pages in order" }
func (cycle) Next(current, count int) int { return (current + 1) % count }

// random picks uniformly, never repeating the current page when the deck
// has more than one.
type random struct {
	rng *rand.Rand
}

func (*random) ID() string    { return "random" }
func (*random) Title() string { return "Seeded random order" }

func (r *random) Next(current, count int) int {
	if count <= 1 {
		return 0
	}
	n := r.rng.Intn(count - 1)
	if n >= current {
		n++
	}
	return n
}
