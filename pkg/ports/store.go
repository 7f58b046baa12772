package ports

import (
	"context"

	"github.com/aretw0/espalier/pkg/demo"
)

// TranscriptStore defines the interface for persisting demo run transcripts.
// This allows the HTTP surface to serve past runs regardless of backend.
type TranscriptStore interface {
	// Save persists the transcript for a given run ID.
	Save(ctx context.Context, runID string, transcript *demo.Transcript) error

	// Load retrieves the transcript for a given run ID.
	// Returns demo.ErrRunNotFound if the run does not exist.
	Load(ctx context.Context, runID string) (*demo.Transcript, error)

	// Delete removes the transcript for a given run ID.
	Delete(ctx context.Context, runID string) error

	// List returns the IDs of all stored runs.
	List(ctx context.Context) ([]string, error)
}
