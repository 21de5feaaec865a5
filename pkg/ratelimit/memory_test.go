package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.Now = func() time.Time { return now }

	ctx := context.Background()

	t.Run("counts within a window", func(t *testing.T) {
		for want := int64(1); want <= 3; want++ {
			count, reset, err := store.Incr(ctx, "login:1.2.3.4", time.Minute)
			require.NoError(t, err)
			require.Equal(t, want, count)
			require.Equal(t, now.Add(time.Minute), reset)
		}
	})

	t.Run("rolls over after the window expires", func(t *testing.T) {
		now = now.Add(time.Minute) // exactly at reset is a new window

		count, reset, err := store.Incr(ctx, "login:1.2.3.4", time.Minute)
		require.NoError(t, err)
		require.Equal(t, int64(1), count)
		require.Equal(t, now.Add(time.Minute), reset)
	})

	t.Run("keys are independent", func(t *testing.T) {
		count, _, err := store.Incr(ctx, "login:5.6.7.8", time.Minute)
		require.NoError(t, err)
		require.Equal(t, int64(1), count)
	})
}

func TestMemoryStoreSweep(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.Now = func() time.Time { return now }

	ctx := context.Background()
	_, _, err := store.Incr(ctx, "short", time.Minute)
	require.NoError(t, err)
	_, _, err = store.Incr(ctx, "long", time.Hour)
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())

	removed := store.Sweep(now.Add(2 * time.Minute))
	require.Equal(t, 1, removed)
	require.Equal(t, 1, store.Len())

	removed = store.Sweep(now.Add(2 * time.Hour))
	require.Equal(t, 1, removed)
	require.Equal(t, 0, store.Len())
}

func TestConsume(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.Now = func() time.Time { return now }

	ctx := context.Background()
	lim := Limit{Requests: 2, Window: time.Minute}

	res, err := Consume(ctx, store, "k", lim)
	require.NoError(t, err)
	require.True(t, res.Allowed)
	require.Equal(t, int64(1), res.Remaining)

	res, err = Consume(ctx, store, "k", lim)
	require.NoError(t, err)
	require.True(t, res.Allowed)
	require.Equal(t, int64(0), res.Remaining)

	res, err = Consume(ctx, store, "k", lim)
	require.NoError(t, err)
	require.False(t, res.Allowed)
	require.Equal(t, int64(0), res.Remaining)
	require.Equal(t, now.Add(time.Minute), res.Reset)
}
