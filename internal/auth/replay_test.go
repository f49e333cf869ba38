package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplens/internal/auth"
)

func TestMemoryReplayStoreSingleUse(t *testing.T) {
	store := auth.NewMemoryReplayStore()
	ctx := context.Background()

	fresh, err := store.Consume(ctx, "jti-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, fresh)

	replay, err := store.Consume(ctx, "jti-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, replay)

	other, err := store.Consume(ctx, "jti-2", time.Minute)
	require.NoError(t, err)
	assert.True(t, other)
}

func TestMemoryReplayStoreRejectsExpiredTTL(t *testing.T) {
	store := auth.NewMemoryReplayStore()

	fresh, err := store.Consume(context.Background(), "jti-1", 0)
	require.NoError(t, err)
	assert.False(t, fresh)

	fresh, err = store.Consume(context.Background(), "jti-1", -time.Second)
	require.NoError(t, err)
	assert.False(t, fresh)
}

func TestMemoryReplayStorePurgesExpiredEntries(t *testing.T) {
	store := auth.NewMemoryReplayStore()
	ctx := context.Background()

	_, err := store.Consume(ctx, "jti-1", 10*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	fresh, err := store.Consume(ctx, "jti-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, fresh)
}
