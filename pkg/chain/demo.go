package chain

import (
	"context"
	"fmt"
	"io"
)

// DefaultRequests is the fixed request sequence of the stock demonstration.
var DefaultRequests = []string{"Nut", "Banana", "Cup of coffee"}

// Demo drives a fixed three-handler chain with a sequence of requests.
type Demo struct {
	requests []string
}

// Option configures the Demo.
type Option func(*Demo)

// WithRequests overrides the request sequence fed to the chain.
func WithRequests(requests ...string) Option {
	return func(d *Demo) {
		if len(requests) > 0 {
			d.requests = requests
		}
	}
}

// NewDemo creates the Chain of Responsibility demonstration.
func NewDemo(opts ...Option) *Demo {
	d := &Demo{requests: DefaultRequests}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Demo) Name() string { return "chain" }

func (d *Demo) Summary() string {
	return "Chain of Responsibility: handlers pass a request along a linked chain"
}

// Run builds the Monkey -> Squirrel -> Dog chain and feeds each request to
// its head, reporting the success line or an untouched notice.
func (d *Demo) Run(ctx context.Context, out io.Writer) error {
	monkey := NewMonkeyHandler(out)
	squirrel := NewSquirrelHandler(out)
	dog := NewDogHandler(out)

	monkey.SetNext(squirrel).SetNext(dog)

	for _, request := range d.requests {
		fmt.Fprintf(out, "Client: Who wants a %s?\n", request)
		if result, ok := monkey.Handle(request); ok {
			fmt.Fprintf(out, "  %s\n", result)
		} else {
			fmt.Fprintf(out, "  The %s was left untouched.\n", request)
		}
	}
	return nil
}
