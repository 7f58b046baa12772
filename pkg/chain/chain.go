// Package chain demonstrates Chain of Responsibility: an ordered, singly-linked
// sequence of handlers, each deciding whether to satisfy a request or forward
// it to its successor. The chain can be entered at any link.
package chain

import (
	"fmt"
	"io"
	"os"
)

// Handler inspects a request and either satisfies it or forwards it
// to the next handler in the chain.
type Handler interface {
	// SetNext links the given handler as successor and returns it,
	// enabling fluent chain construction:
	//
	//	monkey.SetNext(squirrel).SetNext(dog)
	SetNext(next Handler) Handler

	// Handle processes the request. The second return value reports whether
	// any handler in the remaining chain accepted it; a false result is an
	// expected outcome, not an error.
	Handle(request string) (string, bool)
}

// eater is the single concrete handler shape. The gallery's chain is a closed
// set of three variants differing only in their accepted food and their
// success line, so one struct with fixed constructors covers them all.
type eater struct {
	next    Handler
	out     io.Writer
	name    string
	food    string
	success string
}

// NewMonkeyHandler creates the handler that accepts a Banana.
// Diagnostics are written to out (os.Stdout when nil).
func NewMonkeyHandler(out io.Writer) Handler {
	return newEater(out, "Monkey", "Banana", "Monkey: I'll eat the Banana.")
}

// NewSquirrelHandler creates the handler that accepts a Nut.
func NewSquirrelHandler(out io.Writer) Handler {
	return newEater(out, "Squirrel", "Nut", "Squirrel: The Nut is mine!")
}

// NewDogHandler creates the handler that accepts a Meatball.
func NewDogHandler(out io.Writer) Handler {
	return newEater(out, "Dog", "Meatball", "Dog: Nom nom, a Meatball.")
}

func newEater(out io.Writer, name, food, success string) Handler {
	if out == nil {
		out = os.Stdout
	}
	return &eater{out: out, name: name, food: food, success: success}
}

func (e *eater) SetNext(next Handler) Handler {
	e.next = next
	return next
}

func (e *eater) Handle(request string) (string, bool) {
	if request == e.food {
		return e.success, true
	}

	// Reject with a diagnostic before delegating or terminating.
	fmt.Fprintf(e.out, "%s: I can't eat the %s, passing it along.\n", e.name, request)

	if e.next != nil {
		return e.next.Handle(request)
	}
	return "", false
}
