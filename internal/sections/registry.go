package sections

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"debase-landing/pkg/navigation"
)

// RenderContext exposes the minimal capabilities required by section renderers.
type RenderContext interface {
	// SanitizeHTML should clean potentially unsafe markup before rendering.
	SanitizeHTML(input string) string
	// Menu returns the mobile navigation state for the current render.
	Menu() navigation.MenuState
}

// Renderer turns a section into HTML. Renderers must be pure: the same context
// always yields the same output.
type Renderer func(ctx RenderContext, prefix string) string

// Registry stores the mapping between section types and their renderers.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry creates an empty section renderer registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// Register associates a renderer with a normalised section type. It returns an error when the input is invalid.
func (r *Registry) Register(sectionType string, renderer Renderer) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}

	sectionType = normalizeType(sectionType)
	if sectionType == "" {
		return fmt.Errorf("section type is empty")
	}
	if renderer == nil {
		return fmt.Errorf("renderer is nil for type %s", sectionType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.renderers == nil {
		r.renderers = make(map[string]Renderer)
	}
	r.renderers[sectionType] = renderer
	return nil
}

// MustRegister registers the renderer and panics if registration fails.
func (r *Registry) MustRegister(sectionType string, renderer Renderer) {
	if err := r.Register(sectionType, renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer for the provided section type if it exists.
func (r *Registry) Get(sectionType string) (Renderer, bool) {
	if r == nil {
		return nil, false
	}

	sectionType = normalizeType(sectionType)
	if sectionType == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[sectionType]
	return renderer, ok
}

// Types lists the registered section types in lexical order.
func (r *Registry) Types() []string {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.renderers))
	for key := range r.renderers {
		types = append(types, key)
	}
	sort.Strings(types)
	return types
}

// Clone creates a copy of the registry with the same renderer mappings.
func (r *Registry) Clone() *Registry {
	if r == nil {
		return NewRegistry()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for key, renderer := range r.renderers {
		cloned.renderers[key] = renderer
	}
	return cloned
}

func normalizeType(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
