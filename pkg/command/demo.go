package command

import (
	"context"
	"io"
)

// Default literals of the stock demonstration.
const (
	DefaultGreeting = "Say Hi!"
	DefaultTaskA    = "Send email"
	DefaultTaskB    = "Save report"
)

// Demo wires an invoker with a self-contained on-start command and a
// delegating on-finish command, then runs it once.
type Demo struct {
	greeting string
	taskA    string
	taskB    string
}

// Option configures the Demo.
type Option func(*Demo)

// WithMessages overrides the literals carried by the demo's commands.
// Empty strings keep the corresponding default.
func WithMessages(greeting, taskA, taskB string) Option {
	return func(d *Demo) {
		if greeting != "" {
			d.greeting = greeting
		}
		if taskA != "" {
			d.taskA = taskA
		}
		if taskB != "" {
			d.taskB = taskB
		}
	}
}

// NewDemo creates the Command demonstration.
func NewDemo(opts ...Option) *Demo {
	d := &Demo{
		greeting: DefaultGreeting,
		taskA:    DefaultTaskA,
		taskB:    DefaultTaskB,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Demo) Name() string { return "command" }

func (d *Demo) Summary() string {
	return "Command: an invoker triggers deferred actions around its own routine"
}

func (d *Demo) Run(ctx context.Context, out io.Writer) error {
	invoker := NewInvoker(out)
	invoker.SetOnStart(NewPrintCommand(out, d.greeting))

	receiver := NewReceiver(out)
	invoker.SetOnFinish(NewReceiverCommand(receiver, d.taskA, d.taskB))

	invoker.Run()
	return nil
}
