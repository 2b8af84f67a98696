// Package registry provides a global registry of artwork generators.
// Generators register themselves in init() functions, allowing the CLI,
// the TUI and the SSH server to discover and render artworks without
// hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/seedart/internal/config"
	"github.com/vovakirdan/seedart/internal/prng"
)

// RenderFunc produces an SVG document for seed. It must be deterministic:
// equal seeds and configs yield byte-identical output.
type RenderFunc func(seed prng.Seed, cfg *config.Config) ([]byte, error)

// ArtworkInfo contains metadata about a registered artwork.
type ArtworkInfo struct {
	ID    string
	Title string
}

type entry struct {
	title  string
	render RenderFunc
}

var (
	artworks = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds an artwork to the registry.
// Panics if an artwork with the same ID is already registered.
func Register(id, title string, f RenderFunc) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := artworks[id]; exists {
		panic(fmt.Sprintf("registry: artwork %q already registered", id))
	}
	artworks[id] = entry{title: title, render: f}
}

// List returns information about all registered artworks, sorted by ID.
func List() []ArtworkInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ArtworkInfo, 0, len(artworks))
	for id, e := range artworks {
		result = append(result, ArtworkInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Render produces the artwork id for seed. A nil cfg uses config.Default().
// Returns an error if the artwork ID is not registered.
func Render(id string, seed prng.Seed, cfg *config.Config) ([]byte, error) {
	mu.RLock()
	e, ok := artworks[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown artwork %q", id)
	}
	if cfg == nil {
		d := config.Default()
		cfg = &d
	}

	out, err := e.render(seed, cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", id, err)
	}
	return out, nil
}

// Exists checks if an artwork with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := artworks[id]
	return ok
}
