// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cache

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	store := NewRedisStore(RedisOptions{Addr: mr.Addr(), PoolSize: 5, DialTimeout: time.Second})
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("should report a missing key as a miss without error", func(t *testing.T) {
		store, _ := newMiniredisStore(t)
		_, ok, err := store.Get(ctx, "does-not-exist")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should keep keys without ttl", func(t *testing.T) {
		store, mr := newMiniredisStore(t)
		require.NoError(t, store.Set(ctx, "vuln:flask:2.0.1", "[]", 0))

		mr.FastForward(24 * time.Hour)

		val, ok, err := store.Get(ctx, "vuln:flask:2.0.1")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "[]", val)
	})

	t.Run("should expire keys after the ttl", func(t *testing.T) {
		store, mr := newMiniredisStore(t)
		require.NoError(t, store.Set(ctx, "app_name:my-app", "{}", 30*time.Second))
		assert.Equal(t, 30*time.Second, mr.TTL("app_name:my-app"))

		mr.FastForward(31 * time.Second)

		_, ok, err := store.Get(ctx, "app_name:my-app")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should reset the ttl on expire", func(t *testing.T) {
		store, mr := newMiniredisStore(t)
		require.NoError(t, store.Set(ctx, "app_name:my-app", "{}", 30*time.Second))
		mr.FastForward(20 * time.Second)

		require.NoError(t, store.Expire(ctx, "app_name:my-app", 30*time.Second))
		mr.FastForward(20 * time.Second)

		_, ok, err := store.Get(ctx, "app_name:my-app")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("should delete keys", func(t *testing.T) {
		store, mr := newMiniredisStore(t)
		require.NoError(t, store.Set(ctx, "app_name:my-app", "{}", 30*time.Second))
		require.NoError(t, store.Delete(ctx, "app_name:my-app"))
		assert.False(t, mr.Exists("app_name:my-app"))
	})

	t.Run("should return an error if redis is gone", func(t *testing.T) {
		store, mr := newMiniredisStore(t)
		mr.Close()
		_, _, err := store.Get(ctx, "app_name:my-app")
		assert.Error(t, err)
		assert.Error(t, store.Ping(ctx))
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	newStore := func(t *testing.T, size int) (*MemoryStore, *time.Time) {
		store, err := NewMemoryStore(size)
		require.NoError(t, err)
		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		store.now = func() time.Time { return now }
		return store, &now
	}

	t.Run("should keep keys without ttl", func(t *testing.T) {
		store, now := newStore(t, 10)
		require.NoError(t, store.Set(ctx, "a", "1", 0))
		*now = now.Add(365 * 24 * time.Hour)

		val, ok, err := store.Get(ctx, "a")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "1", val)
	})

	t.Run("should expire keys after the ttl", func(t *testing.T) {
		store, now := newStore(t, 10)
		require.NoError(t, store.Set(ctx, "a", "1", 30*time.Second))

		*now = now.Add(29 * time.Second)
		_, ok, _ := store.Get(ctx, "a")
		assert.True(t, ok)

		*now = now.Add(time.Second)
		_, ok, _ = store.Get(ctx, "a")
		assert.False(t, ok)
	})

	t.Run("should slide the ttl on expire", func(t *testing.T) {
		store, now := newStore(t, 10)
		require.NoError(t, store.Set(ctx, "a", "1", 30*time.Second))

		*now = now.Add(20 * time.Second)
		require.NoError(t, store.Expire(ctx, "a", 30*time.Second))
		*now = now.Add(20 * time.Second)

		_, ok, _ := store.Get(ctx, "a")
		assert.True(t, ok)
	})

	t.Run("should not resurrect an expired key on expire", func(t *testing.T) {
		store, now := newStore(t, 10)
		require.NoError(t, store.Set(ctx, "a", "1", time.Second))
		*now = now.Add(2 * time.Second)

		require.NoError(t, store.Expire(ctx, "a", time.Minute))
		_, ok, _ := store.Get(ctx, "a")
		assert.False(t, ok)
	})

	t.Run("should evict the least recently used key", func(t *testing.T) {
		store, _ := newStore(t, 2)
		require.NoError(t, store.Set(ctx, "a", "1", 0))
		require.NoError(t, store.Set(ctx, "b", "2", 0))
		_, _, _ = store.Get(ctx, "a")
		require.NoError(t, store.Set(ctx, "c", "3", 0))

		_, ok, _ := store.Get(ctx, "b")
		assert.False(t, ok)
		_, ok, _ = store.Get(ctx, "a")
		assert.True(t, ok)
	})

	t.Run("should delete keys", func(t *testing.T) {
		store, _ := newStore(t, 10)
		require.NoError(t, store.Set(ctx, "a", "1", 0))
		require.NoError(t, store.Delete(ctx, "a"))
		_, ok, _ := store.Get(ctx, "a")
		assert.False(t, ok)
	})
	t.Run("should never let a concurrent expire restore an older value", func(t *testing.T) {
		store, err := NewMemoryStore(10)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, "app_name:web", "0", time.Minute))

		done := make(chan struct{})
		var wg sync.WaitGroup
		defer func() {
			close(done)
			wg.Wait()
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					store.Expire(ctx, "app_name:web", time.Minute) // nolint:errcheck
				}
			}
		}()

		for i := 1; i <= 1000; i++ {
			want := strconv.Itoa(i)
			require.NoError(t, store.Set(ctx, "app_name:web", want, time.Minute))
			val, ok, err := store.Get(ctx, "app_name:web")
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, want, val)
		}
	})
}
