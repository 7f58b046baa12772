package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/pkg/demo"
)

// RunTranscriptStoreContract runs a suite of tests to verify that a
// TranscriptStore implementation adheres to the defined interface contract.
func RunTranscriptStoreContract(t *testing.T, store TranscriptStore) {
	ctx := context.Background()
	runID := "contract-test-run-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		transcript := &demo.Transcript{
			RunID:     runID,
			Demo:      "chain",
			Lines:     []string{"Client: Who wants a Nut?", "Squirrel: The Nut is mine!"},
			StartedAt: time.Now().UTC().Truncate(time.Second),
		}

		err := store.Save(ctx, runID, transcript)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, transcript.Demo, loaded.Demo)
		assert.Equal(t, transcript.Lines, loaded.Lines)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, demo.ErrRunNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, runID, &demo.Transcript{RunID: runID, Demo: "command"})
		require.NoError(t, err)

		err = store.Delete(ctx, runID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, runID)
		assert.ErrorIs(t, err, demo.ErrRunNotFound, "Load after Delete should return ErrRunNotFound")
	})

	t.Run("List", func(t *testing.T) {
		idA := runID + "-a"
		idB := runID + "-b"
		require.NoError(t, store.Save(ctx, idA, &demo.Transcript{RunID: idA, Demo: "chain"}))
		require.NoError(t, store.Save(ctx, idB, &demo.Transcript{RunID: idB, Demo: "statebox"}))

		runs, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, runs, idA)
		assert.Contains(t, runs, idB)
	})
}
