// Package command demonstrates the Command pattern: units of deferred
// execution that an invoker triggers around a fixed point in its own routine,
// either self-contained or delegating to a stateless receiver.
package command

import (
	"fmt"
	"io"
	"os"
)

// Command is a self-contained unit of deferred execution.
type Command interface {
	Execute()
}

// PrintCommand handles a simple job by itself: printing its payload.
type PrintCommand struct {
	out     io.Writer
	payload string
}

// NewPrintCommand creates a self-contained command holding a literal payload.
func NewPrintCommand(out io.Writer, payload string) *PrintCommand {
	if out == nil {
		out = os.Stdout
	}
	return &PrintCommand{out: out, payload: payload}
}

func (c *PrintCommand) Execute() {
	fmt.Fprintf(c.out, "PrintCommand: I can do simple things myself, like printing (%s)\n", c.payload)
}

// Receiver performs the actual work on behalf of delegating commands.
// It is stateless; each operation only formats and emits its argument.
type Receiver struct {
	out io.Writer
}

// NewReceiver creates a receiver writing to out (os.Stdout when nil).
func NewReceiver(out io.Writer) *Receiver {
	if out == nil {
		out = os.Stdout
	}
	return &Receiver{out: out}
}

func (r *Receiver) DoSomething(task string) {
	fmt.Fprintf(r.out, "Receiver: Working on (%s.)\n", task)
}

func (r *Receiver) DoSomethingElse(task string) {
	fmt.Fprintf(r.out, "Receiver: Also working on (%s.)\n", task)
}

// ReceiverCommand delegates the complicated work to a receiver,
// carrying two textual context arguments.
type ReceiverCommand struct {
	receiver *Receiver
	a, b     string
}

// NewReceiverCommand creates a delegating command bound to a receiver.
func NewReceiverCommand(receiver *Receiver, a, b string) *ReceiverCommand {
	return &ReceiverCommand{receiver: receiver, a: a, b: b}
}

func (c *ReceiverCommand) Execute() {
	fmt.Fprintln(c.receiver.out, "ReceiverCommand: Complicated stuff should be done by a receiver.")
	c.receiver.DoSomething(c.a)
	c.receiver.DoSomethingElse(c.b)
}
