// Package memory provides the in-memory TranscriptStore adapter,
// used by default and in tests.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/espalier/pkg/demo"
)

// Store implements ports.TranscriptStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*demo.Transcript
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*demo.Transcript),
	}
}

// Save persists the transcript in memory.
func (s *Store) Save(ctx context.Context, runID string, transcript *demo.Transcript) error {
	// Copy so the caller can't mutate the stored transcript by pointer.
	copied := *transcript
	copied.Lines = append([]string(nil), transcript.Lines...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[runID] = &copied
	return nil
}

// Load retrieves the transcript from memory.
func (s *Store) Load(ctx context.Context, runID string) (*demo.Transcript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	transcript, ok := s.data[runID]
	if !ok {
		return nil, demo.ErrRunNotFound
	}

	ret := *transcript
	ret.Lines = append([]string(nil), transcript.Lines...)
	return &ret, nil
}

// Delete removes the transcript.
func (s *Store) Delete(ctx context.Context, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, runID)
	return nil
}

// List returns stored run IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]string, 0, len(s.data))
	for id := range s.data {
		runs = append(runs, id)
	}
	return runs, nil
}
