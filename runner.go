package espalier

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/espalier/pkg/demo"
)

// ContentRenderer is a function that transforms a narration line before
// outputting it. This allows for TUI rendering (markdown to ANSI) without
// coupling the core package.
type ContentRenderer func(string) (string, error)

// Runner executes a single demo using the provided IO.
// This allows for easy testing and integration with different frontends
// (CLI, HTTP, etc).
type Runner struct {
	Output   io.Writer
	Renderer ContentRenderer
	Hooks    demo.LifecycleHooks
}

// NewRunner creates a new Runner. The caller must set Output
// (use os.Stdout for console demos).
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the demo, echoing each narration line to Output and
// recording a transcript. The transcript is returned even when the demo
// fails, holding the lines produced up to the failure.
func (r *Runner) Run(ctx context.Context, d demo.Demo) (*demo.Transcript, error) {
	if r.Output == nil {
		return nil, fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	transcript := &demo.Transcript{
		RunID:     uuid.NewString(),
		Demo:      d.Name(),
		StartedAt: time.Now(),
	}

	if r.Hooks.OnRunStart != nil {
		r.Hooks.OnRunStart(ctx, &demo.RunEvent{
			Timestamp: time.Now(),
			RunID:     transcript.RunID,
			Demo:      transcript.Demo,
		})
	}

	// The recorder fires OnStep per complete line; we interpose to render
	// and echo before delegating to the caller's hook.
	hooks := demo.LifecycleHooks{
		OnStep: func(ctx context.Context, e *demo.StepEvent) {
			line := e.Line
			if r.Renderer != nil {
				if rendered, err := r.Renderer(line); err == nil {
					line = rendered
				}
			}
			fmt.Fprintln(r.Output, line)

			if r.Hooks.OnStep != nil {
				r.Hooks.OnStep(ctx, e)
			}
		},
	}

	recorder := demo.NewRecorder(ctx, nil, transcript, hooks)
	err := d.Run(ctx, recorder)
	recorder.Flush()
	transcript.FinishedAt = time.Now()

	if r.Hooks.OnRunEnd != nil {
		r.Hooks.OnRunEnd(ctx, &demo.RunEvent{
			Timestamp: transcript.FinishedAt,
			RunID:     transcript.RunID,
			Demo:      transcript.Demo,
			Err:       err,
		})
	}

	if err != nil {
		return transcript, fmt.Errorf("demo %s: %w", d.Name(), err)
	}
	return transcript, nil
}
