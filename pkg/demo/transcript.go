package demo

import (
	"bytes"
	"context"
	"io"
	"time"
)

// Transcript is the recorded output of a single demo run.
type Transcript struct {
	RunID      string    `json:"run_id"`
	Demo       string    `json:"demo"`
	Lines      []string  `json:"lines"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Recorder is an io.Writer that captures demo output into a Transcript
// while passing it through to an underlying writer.
// Complete lines are appended to the transcript and surfaced via OnStep;
// a trailing partial line is held until the next write or Flush.
type Recorder struct {
	ctx        context.Context
	out        io.Writer
	transcript *Transcript
	hooks      LifecycleHooks
	partial    bytes.Buffer
}

// NewRecorder creates a Recorder for the given transcript.
// The underlying writer may be nil to record without echoing.
func NewRecorder(ctx context.Context, out io.Writer, t *Transcript, hooks LifecycleHooks) *Recorder {
	return &Recorder{
		ctx:        ctx,
		out:        out,
		transcript: t,
		hooks:      hooks,
	}
}

// Write implements io.Writer.
func (r *Recorder) Write(p []byte) (int, error) {
	if r.out != nil {
		if _, err := r.out.Write(p); err != nil {
			return 0, err
		}
	}

	r.partial.Write(p)
	for {
		data := r.partial.Bytes()
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			break
		}
		line := string(data[:idx])
		r.partial.Next(idx + 1)
		r.record(line)
	}
	return len(p), nil
}

// Flush appends any trailing partial line to the transcript.
// Call it once after the demo has finished writing.
func (r *Recorder) Flush() {
	if r.partial.Len() == 0 {
		return
	}
	line := r.partial.String()
	r.partial.Reset()
	r.record(line)
}

func (r *Recorder) record(line string) {
	r.transcript.Lines = append(r.transcript.Lines, line)
	if r.hooks.OnStep != nil {
		r.hooks.OnStep(r.ctx, &StepEvent{
			Timestamp: time.Now(),
			RunID:     r.transcript.RunID,
			Demo:      r.transcript.Demo,
			Line:      line,
		})
	}
}
