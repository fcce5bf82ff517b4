// Package registry provides a global registry for page sections.
// Sections register themselves in init() functions, allowing the platform
// to lay out the home page without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-folio/internal/core"
)

// Section is one block of the home page.
// Sections contain pure layout logic with no external dependencies (especially no Bubble Tea).
// The platform handles input, timing and scrolling.
type Section interface {
	// ID returns a unique identifier used as a navigation anchor (e.g., "skills").
	ID() string

	// Title returns a human-readable name for the navbar.
	Title() string

	// Order positions the section on the page; lower comes first.
	Order() int

	// Height returns the number of rows the section needs at ctx.Width.
	Height(ctx RenderContext) int

	// Surfaces returns the tilt-tracked areas of the section in
	// section-local cell coordinates.
	Surfaces(ctx RenderContext) []Surface

	// Render draws the section into dst, which is ctx.Width by Height(ctx)
	// cells and pre-cleared.
	Render(ctx RenderContext, dst *core.Screen)
}

// SectionInfo contains metadata about a registered section.
type SectionInfo struct {
	ID    string
	Title string
	Order int
}

// Factory is a function that creates a new instance of a section.
type Factory func() Section

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]SectionInfo)
	mu        sync.RWMutex
)

// Register adds a section factory to the registry.
// Typically called from a section's init() function.
// Panics if a section with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: section %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	s := f()
	infos[id] = SectionInfo{ID: id, Title: s.Title(), Order: s.Order()}
}

// List returns information about all registered sections in page order.
func List() []SectionInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SectionInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new section by its ID.
// Returns an error if the section ID is not registered.
func Create(id string) (Section, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown section %q", id)
	}

	return f(), nil
}

// All instantiates every registered section in page order.
func All() []Section {
	list := List()
	out := make([]Section, 0, len(list))
	for _, info := range list {
		if s, err := Create(info.ID); err == nil {
			out = append(out, s)
		}
	}
	return out
}

// Exists checks if a section with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
