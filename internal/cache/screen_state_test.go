//go:build integration

package cache_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"go-gin-event-portal/internal/cache"
	"go-gin-event-portal/internal/listing"
	"go-gin-event-portal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenState_LoadCommit(t *testing.T) {
	ctx := context.Background()
	store := cache.NewRedisScreenStateStore(getTestRdb(), "test", time.Minute)
	clearRedis(ctx)
	t.Cleanup(func() { clearRedis(ctx) })

	t.Run("Empty screen", func(t *testing.T) {
		defer clearRedis(ctx)
		_, ok, err := store.Load(ctx, "browse")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Success", func(t *testing.T) {
		defer clearRedis(ctx)
		state := listing.ScreenState{
			Page:       2,
			PageSize:   6,
			TotalPages: 3,
			Criteria:   model.FilterCriteria{SearchTerm: "jazz", Location: "Berlin"},
		}

		seq, err := store.Begin(ctx, "delete")
		require.NoError(t, err)
		ok, err := store.Commit(ctx, "delete", seq, state)
		require.NoError(t, err)
		require.True(t, ok)

		loaded, found, err := store.Load(ctx, "delete")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, state, loaded)

		ttl, err := getTestRdb().PTTL(ctx, "portal:test:screen:delete").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("Superseded commit is dropped", func(t *testing.T) {
		defer clearRedis(ctx)
		first, err := store.Begin(ctx, "browse")
		require.NoError(t, err)
		second, err := store.Begin(ctx, "browse")
		require.NoError(t, err)
		assert.Equal(t, first+1, second)

		ok, err := store.Commit(ctx, "browse", second, listing.ScreenState{Page: 2, PageSize: 6})
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Commit(ctx, "browse", first, listing.ScreenState{Page: 1, PageSize: 6})
		require.NoError(t, err)
		assert.False(t, ok)

		loaded, _, err := store.Load(ctx, "browse")
		require.NoError(t, err)
		assert.Equal(t, 2, loaded.Page)
	})
}

func TestScreenState_ScreensAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := cache.NewRedisScreenStateStore(getTestRdb(), "test", time.Minute)
	clearRedis(ctx)
	t.Cleanup(func() { clearRedis(ctx) })

	for _, screen := range []string{"browse", "update"} {
		seq, err := store.Begin(ctx, screen)
		require.NoError(t, err)
		assert.Equal(t, int64(1), seq)
	}

	seq, err := store.Begin(ctx, "browse")
	require.NoError(t, err)
	ok, err := store.Commit(ctx, "browse", seq, listing.ScreenState{Page: 4, PageSize: 6})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.Commit(ctx, "update", 1, listing.ScreenState{Page: 1, PageSize: 6})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestScreenState_ConcurrentBegin(t *testing.T) {
	ctx := context.Background()
	store := cache.NewRedisScreenStateStore(getTestRdb(), "test", time.Minute)
	clearRedis(ctx)
	t.Cleanup(func() { clearRedis(ctx) })

	const n = 20
	var wg sync.WaitGroup
	seqs := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq, err := store.Begin(ctx, "browse")
			assert.NoError(t, err)
			seqs <- seq
		}()
	}
	wg.Wait()
	close(seqs)

	seen := map[int64]bool{}
	for s := range seqs {
		assert.False(t, seen[s], "duplicate sequence %d", s)
		seen[s] = true
	}
	assert.Len(t, seen, n)

	committed := 0
	for s := range seen {
		ok, err := store.Commit(ctx, "browse", s, listing.ScreenState{Page: int(s), PageSize: 6})
		require.NoError(t, err)
		if ok {
			committed++
			assert.Equal(t, int64(n), s)
		}
	}
	assert.Equal(t, 1, committed)
}

func TestScreenState_Purge(t *testing.T) {
	ctx := context.Background()
	store := cache.NewRedisScreenStateStore(getTestRdb(), "test", time.Minute)
	other := cache.NewRedisScreenStateStore(getTestRdb(), "other", time.Minute)
	clearRedis(ctx)
	t.Cleanup(func() { clearRedis(ctx) })

	for _, s := range []listing.StateStore{store, other} {
		seq, err := s.Begin(ctx, "browse")
		require.NoError(t, err)
		_, err = s.Commit(ctx, "browse", seq, listing.ScreenState{Page: 1, PageSize: 6})
		require.NoError(t, err)
	}

	require.NoError(t, store.Purge(ctx))

	_, found, err := store.Load(ctx, "browse")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = other.Load(ctx, "browse")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestScreenState_FetchBeforePurgeStaysSuperseded(t *testing.T) {
	ctx := context.Background()
	store := cache.NewRedisScreenStateStore(getTestRdb(), "test", time.Minute)
	clearRedis(ctx)
	t.Cleanup(func() { clearRedis(ctx) })

	old, err := store.Begin(ctx, "browse")
	require.NoError(t, err)

	require.NoError(t, store.Purge(ctx))

	fresh, err := store.Begin(ctx, "browse")
	require.NoError(t, err)
	assert.Greater(t, fresh, old)

	ok, err := store.Commit(ctx, "browse", fresh, listing.ScreenState{Page: 1, PageSize: 6})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Commit(ctx, "browse", old, listing.ScreenState{
		Page:     2,
		PageSize: 6,
		Criteria: model.FilterCriteria{Location: "OldUser"},
	})
	require.NoError(t, err)
	assert.False(t, ok)

	state, found, err := store.Load(ctx, "browse")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, state.Page)
	assert.Empty(t, state.Criteria.Location)
}
