package statebox

import (
	"context"
	"fmt"
	"io"
)

// DefaultStates is the fixed value sequence of the stock demonstration.
var DefaultStates = []string{"seed planted", "branch trained"}

// Demo drives a client over a fresh container through a fixed value sequence.
type Demo struct {
	states []string
}

// Option configures the Demo.
type Option func(*Demo)

// WithStates overrides the value sequence written to the container.
func WithStates(states ...string) Option {
	return func(d *Demo) {
		if len(states) > 0 {
			d.states = states
		}
	}
}

// NewDemo creates the state-container demonstration.
func NewDemo(opts ...Option) *Demo {
	d := &Demo{states: DefaultStates}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Demo) Name() string { return "statebox" }

func (d *Demo) Summary() string {
	return "State container: a single-value mutable holder behind a narrating client"
}

func (d *Demo) Run(ctx context.Context, out io.Writer) error {
	client := NewClient(NewBox(""), out)

	for _, state := range d.states {
		fmt.Fprintf(out, "Client: changing state to %q\n", state)
		client.ChangeState(state)
		client.ShowState()
	}
	return nil
}
