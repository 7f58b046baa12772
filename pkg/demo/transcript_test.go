package demo_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/espalier/pkg/demo"
)

func TestRecorder_SplitsLines(t *testing.T) {
	var echo bytes.Buffer
	transcript := &demo.Transcript{RunID: "run-1", Demo: "chain"}

	rec := demo.NewRecorder(context.Background(), &echo, transcript, demo.LifecycleHooks{})

	fmt.Fprint(rec, "first ")
	fmt.Fprint(rec, "line\nsecond line\n")
	fmt.Fprint(rec, "trailing")
	rec.Flush()

	want := []string{"first line", "second line", "trailing"}
	if len(transcript.Lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(transcript.Lines), transcript.Lines)
	}
	for i, line := range want {
		if transcript.Lines[i] != line {
			t.Errorf("Line %d: expected %q, got %q", i, line, transcript.Lines[i])
		}
	}

	// Pass-through is byte-exact
	if echo.String() != "first line\nsecond line\ntrailing" {
		t.Errorf("Unexpected echo output: %q", echo.String())
	}
}

func TestRecorder_StepHooks(t *testing.T) {
	transcript := &demo.Transcript{RunID: "run-2", Demo: "command"}

	var steps []string
	hooks := demo.LifecycleHooks{
		OnStep: func(ctx context.Context, e *demo.StepEvent) {
			if e.RunID != "run-2" || e.Demo != "command" {
				t.Errorf("Unexpected event identity: %+v", e)
			}
			steps = append(steps, e.Line)
		},
	}

	// No echo writer: recording only
	rec := demo.NewRecorder(context.Background(), nil, transcript, hooks)
	fmt.Fprintln(rec, "one")
	fmt.Fprintln(rec, "two")
	rec.Flush()

	if len(steps) != 2 || steps[0] != "one" || steps[1] != "two" {
		t.Errorf("Expected steps [one two], got %v", steps)
	}
}

func TestRecorder_FlushIsIdempotent(t *testing.T) {
	transcript := &demo.Transcript{RunID: "run-3", Demo: "statebox"}
	rec := demo.NewRecorder(context.Background(), nil, transcript, demo.LifecycleHooks{})

	fmt.Fprint(rec, "only")
	rec.Flush()
	rec.Flush()

	if len(transcript.Lines) != 1 {
		t.Errorf("Expected 1 line after double flush, got %d", len(transcript.Lines))
	}
}
