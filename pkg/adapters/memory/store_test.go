package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/pkg/adapters/memory"
	"github.com/aretw0/espalier/pkg/demo"
	"github.com/aretw0/espalier/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunTranscriptStoreContract(t, memory.NewStore())
}

func TestMemoryStore_Isolation(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	original := &demo.Transcript{RunID: "run-1", Demo: "chain", Lines: []string{"a"}}
	require.NoError(t, store.Save(ctx, "run-1", original))

	// Mutating the saved value must not affect the store.
	original.Lines[0] = "mutated"

	loaded, err := store.Load(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, loaded.Lines)

	// Mutating the loaded value must not affect subsequent reads.
	loaded.Lines[0] = "mutated again"
	reloaded, err := store.Load(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, reloaded.Lines)
}
