package command

import (
	"fmt"
	"io"
	"os"
)

// Invoker holds at most two optional commands and triggers them around
// a fixed point in its own routine.
type Invoker struct {
	out      io.Writer
	onStart  Command
	onFinish Command
}

// NewInvoker creates an invoker writing its own narration to out.
func NewInvoker(out io.Writer) *Invoker {
	if out == nil {
		out = os.Stdout
	}
	return &Invoker{out: out}
}

// SetOnStart registers the command executed before the important work.
// A nil command clears the slot.
func (i *Invoker) SetOnStart(cmd Command) {
	i.onStart = cmd
}

// SetOnFinish registers the command executed after the important work.
// A nil command clears the slot.
func (i *Invoker) SetOnFinish(cmd Command) {
	i.onFinish = cmd
}

// Run executes the on-start command if set, always performs the fixed
// important work, then executes the on-finish command if set.
func (i *Invoker) Run() {
	if i.onStart != nil {
		fmt.Fprintln(i.out, "Invoker: Does anybody want something done before I begin?")
		i.onStart.Execute()
	}

	fmt.Fprintln(i.out, "Invoker: ...doing something really important...")

	if i.onFinish != nil {
		fmt.Fprintln(i.out, "Invoker: Does anybody want something done after I finish?")
		i.onFinish.Execute()
	}
}
