// Package statebox demonstrates a minimal shared-state container:
// a single-value mutable holder with unconditional read/write access,
// wrapped by a client that narrates the current value.
package statebox

import (
	"fmt"
	"io"
	"os"
)

// Box holds exactly one textual value.
// It carries no history, validation, or concurrency control; the demo
// contract is single-threaded ownership.
type Box struct {
	state string
}

// NewBox creates a container holding the given initial value.
func NewBox(initial string) *Box {
	return &Box{state: initial}
}

// ChangeState replaces the held value unconditionally.
func (b *Box) ChangeState(value string) {
	b.state = value
}

// State returns the current value.
func (b *Box) State() string {
	return b.state
}

// Client wraps a Box, forwarding writes and narrating reads.
type Client struct {
	box *Box
	out io.Writer
}

// NewClient creates a client over the given box, writing to out
// (os.Stdout when nil).
func NewClient(box *Box, out io.Writer) *Client {
	if out == nil {
		out = os.Stdout
	}
	return &Client{box: box, out: out}
}

// ChangeState forwards the new value to the underlying box.
func (c *Client) ChangeState(value string) {
	c.box.ChangeState(value)
}

// ShowState reads and emits the current value.
func (c *Client) ShowState() {
	fmt.Fprintf(c.out, "Current state: %s\n", c.box.State())
}
