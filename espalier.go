package espalier

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/pkg/chain"
	"github.com/aretw0/espalier/pkg/command"
	"github.com/aretw0/espalier/pkg/demo"
	"github.com/aretw0/espalier/pkg/statebox"
)

// Gallery is the high-level entry point for the Espalier library.
// It holds the demo catalog and provides a simplified API for consumers.
type Gallery struct {
	registry *demo.Registry
	hooks    demo.LifecycleHooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Gallery.
type Option func(*Gallery)

// WithLifecycleHooks registers observability hooks applied to every run.
func WithLifecycleHooks(hooks demo.LifecycleHooks) Option {
	return func(g *Gallery) {
		g.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the gallery.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gallery) {
		g.logger = logger
	}
}

// WithDemos registers additional demos beyond the built-in catalog.
func WithDemos(demos ...demo.Demo) Option {
	return func(g *Gallery) {
		for _, d := range demos {
			g.registry.Register(d)
		}
	}
}

// New initializes a Gallery preloaded with the built-in pattern demos.
func New(opts ...Option) *Gallery {
	g := &Gallery{
		registry: demo.NewRegistry(),
	}

	g.registry.Register(chain.NewDemo())
	g.registry.Register(command.NewDemo())
	g.registry.Register(statebox.NewDemo())

	for _, opt := range opts {
		opt(g)
	}

	if g.logger == nil {
		g.logger = logging.NewNop()
	}

	return g
}

// Register adds or replaces a demo in the catalog.
func (g *Gallery) Register(d demo.Demo) {
	g.registry.Register(d)
}

// Get looks up a demo by name. Returns demo.ErrDemoNotFound when missing.
func (g *Gallery) Get(name string) (demo.Demo, error) {
	return g.registry.Get(name)
}

// Demos returns the catalog sorted by name.
func (g *Gallery) Demos() []demo.Demo {
	return g.registry.List()
}

// Run executes the named demo, streaming its narration to out and
// returning the recorded transcript.
func (g *Gallery) Run(ctx context.Context, name string, out io.Writer) (*demo.Transcript, error) {
	d, err := g.registry.Get(name)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("running demo", "demo", name)

	runner := NewRunner()
	runner.Output = out
	runner.Hooks = g.hooks

	transcript, err := runner.Run(ctx, d)
	if err != nil {
		g.logger.Error("demo failed", "demo", name, "error", err)
		return transcript, err
	}

	g.logger.Debug("demo finished", "demo", name, "run_id", transcript.RunID, "lines", len(transcript.Lines))
	return transcript, nil
}
