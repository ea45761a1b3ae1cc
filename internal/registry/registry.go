// Package registry provides a global registry for next-page selectors.
// Selectors register themselves in init() functions, allowing the world
// to pick a page strategy by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Selector chooses which page of a deck scrolls in next.
// Selectors contain pure logic; given the same seed they make the same choices.
type Selector interface {
	// ID returns a unique identifier for this selector (e.g., "rotation").
	// Used for the --selector flag and run history.
	ID() string

	// Title returns a short human-readable description.
	Title() string

	// Next returns the index of the page to follow current in a deck of
	// count pages. count is always at least 1.
	Next(current, count int) int
}

// SelectorInfo contains metadata about a registered selector.
type SelectorInfo struct {
	ID    string
	Title string
}

// Factory creates a new selector seeded for deterministic choices.
type Factory func(seed int64) Selector

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a selector factory to the registry.
// Typically called from an init() function.
// Panics if a selector with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: selector %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	s := f(0)
	titles[id] = s.Title()
}

// List returns information about all registered selectors, sorted by ID.
func List() []SelectorInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SelectorInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SelectorInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new selector by its ID.
// Returns an error if the selector ID is not registered.
func Create(id string, seed int64) (Selector, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown selector %q", id)
	}

	return f(seed), nil
}

// Exists checks if a selector with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
