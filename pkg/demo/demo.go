package demo

import (
	"context"
	"io"
	"sort"
	"sync"
)

// Demo is the contract implemented by every pattern demonstration.
// A demo writes its narrated output to the provided writer and returns
// only when the fixed sequence has completed.
type Demo interface {
	// Name is the stable identifier used by the CLI and HTTP surface.
	Name() string
	// Summary is a one-line description for listings.
	Summary() string
	// Run executes the demonstration, writing narration to out.
	Run(ctx context.Context, out io.Writer) error
}

// Registry manages the available demos.
type Registry struct {
	mu    sync.RWMutex
	demos map[string]Demo
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		demos: make(map[string]Demo),
	}
}

// Register adds a demo to the registry.
// If a demo with the same name exists, it is overwritten.
func (r *Registry) Register(d Demo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.demos[d.Name()] = d
}

// Get looks up a demo by name.
// Returns ErrDemoNotFound if the name is not registered.
func (r *Registry) Get(name string) (Demo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.demos[name]
	if !ok {
		return nil, ErrDemoNotFound
	}
	return d, nil
}

// List returns all registered demos sorted by name.
func (r *Registry) List() []Demo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.demos))
	for name := range r.demos {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Demo, 0, len(names))
	for _, name := range names {
		out = append(out, r.demos[name])
	}
	return out
}
