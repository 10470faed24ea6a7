package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreIncrement(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	count, resetAt, err := store.Increment(ctx, "rl:contact:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, resetAt.After(time.Now()))

	count, _, err = store.Increment(ctx, "rl:contact:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Keys are independent
	count, _, err = store.Increment(ctx, "rl:contact:5.6.7.8", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryStoreWindowReset(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	count, _, err := store.Increment(ctx, "key", 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, _, err = store.Increment(ctx, "key", 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	time.Sleep(20 * time.Millisecond)

	// A fresh window starts counting from one again
	count, resetAt, err := store.Increment(ctx, "key", 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, resetAt.After(time.Now()))
}
