package docstore

import (
	"context"
	"testing"

	"rwk-afmg/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		store, closeFn, err := Open(ctx, Config{Backend: BackendMemory}, database.Config{})
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, store)
		assert.NoError(t, closeFn())
	})

	t.Run("SQLite", func(t *testing.T) {
		store, closeFn, err := Open(ctx, Config{Backend: BackendDatabase}, database.Config{Driver: "sqlite", Name: ":memory:"})
		require.NoError(t, err)
		assert.IsType(t, &GormStore{}, store)
		assert.NoError(t, closeFn())
	})

	t.Run("Unknown", func(t *testing.T) {
		_, _, err := Open(ctx, Config{Backend: "mongo"}, database.Config{})
		assert.ErrorIs(t, err, ErrUnknownBackend)
	})
}
