package demo

import (
	"context"
	"time"
)

// RunEvent marks the start or end of a demo run.
type RunEvent struct {
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"run_id"`
	Demo      string    `json:"demo"`
	// Err is set on run end when the demo returned an error.
	Err error `json:"-"`
}

// StepEvent represents one completed output line of a running demo.
type StepEvent struct {
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"run_id"`
	Demo      string    `json:"demo"`
	Line      string    `json:"line"`
}

// LifecycleHooks defines callbacks for gallery observability.
// All fields are optional; nil hooks are skipped.
type LifecycleHooks struct {
	OnRunStart func(context.Context, *RunEvent)
	OnStep     func(context.Context, *StepEvent)
	OnRunEnd   func(context.Context, *RunEvent)
}
