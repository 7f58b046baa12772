package command_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/espalier/pkg/command"
)

// recorded is a test double appending a marker to a shared log on Execute.
type recorded struct {
	log    *[]string
	marker string
}

func (r *recorded) Execute() {
	*r.log = append(*r.log, r.marker)
}

func TestInvoker_RunOrder(t *testing.T) {
	var out bytes.Buffer
	var log []string

	invoker := command.NewInvoker(&out)
	invoker.SetOnStart(&recorded{log: &log, marker: "start"})
	invoker.SetOnFinish(&recorded{log: &log, marker: "finish"})

	invoker.Run()

	if len(log) != 2 || log[0] != "start" || log[1] != "finish" {
		t.Errorf("Expected execution order [start finish], got %v", log)
	}
	if !strings.Contains(out.String(), "...doing something really important...") {
		t.Errorf("Expected the fixed work line, got: %q", out.String())
	}
}

func TestInvoker_OmittedCommandsAreSkipped(t *testing.T) {
	var out bytes.Buffer
	var log []string

	invoker := command.NewInvoker(&out)
	invoker.SetOnFinish(&recorded{log: &log, marker: "finish"})

	invoker.Run()

	if len(log) != 1 || log[0] != "finish" {
		t.Errorf("Expected only the finish command, got %v", log)
	}

	// And an entirely empty invoker still does its own work.
	out.Reset()
	command.NewInvoker(&out).Run()
	if !strings.Contains(out.String(), "...doing something really important...") {
		t.Errorf("Expected the fixed work line, got: %q", out.String())
	}
}

func TestPrintCommand_EmitsPayload(t *testing.T) {
	var out bytes.Buffer
	command.NewPrintCommand(&out, "Say Hi!").Execute()

	if !strings.Contains(out.String(), "Say Hi!") {
		t.Errorf("Expected payload in output, got: %q", out.String())
	}
}

func TestReceiverCommand_DelegatesBothOperations(t *testing.T) {
	var out bytes.Buffer
	receiver := command.NewReceiver(&out)
	command.NewReceiverCommand(receiver, "Send email", "Save report").Execute()

	output := out.String()
	first := strings.Index(output, "Receiver: Working on (Send email.)")
	second := strings.Index(output, "Receiver: Also working on (Save report.)")
	if first < 0 || second < 0 {
		t.Fatalf("Expected both receiver operations, got:\n%s", output)
	}
	if first > second {
		t.Error("Receiver operations executed out of order")
	}
}

func TestDemo_FullNarration(t *testing.T) {
	var out bytes.Buffer
	if err := command.NewDemo().Run(context.Background(), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	output := out.String()
	sequence := []string{
		"Invoker: Does anybody want something done before I begin?",
		"PrintCommand: I can do simple things myself, like printing (Say Hi!)",
		"Invoker: ...doing something really important...",
		"Invoker: Does anybody want something done after I finish?",
		"ReceiverCommand: Complicated stuff should be done by a receiver.",
		"Receiver: Working on (Send email.)",
		"Receiver: Also working on (Save report.)",
	}

	last := -1
	for _, line := range sequence {
		idx := strings.Index(output, line)
		if idx < 0 {
			t.Fatalf("Missing line %q in output:\n%s", line, output)
		}
		if idx < last {
			t.Errorf("Line %q appeared out of order", line)
		}
		last = idx
	}
}
