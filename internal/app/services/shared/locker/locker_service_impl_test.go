package locker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{data: make(map[string]string)}
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[key]; ok {
		return false, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	f.data[key] = string(raw)
	return true, nil
}

func (f *fakeRedisRepository) CompareAndDelete(ctx context.Context, key string, value interface{}) (bool, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return false, false, err
	}
	stored, ok := f.data[key]
	if !ok {
		return false, false, nil
	}
	if stored != string(raw) {
		return true, false, nil
	}
	delete(f.data, key)
	return true, true, nil
}

// expire drops key the way redis does once its TTL passes.
func (f *fakeRedisRepository) expire(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
}

func (f *fakeRedisRepository) holds(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok
}

func TestLockService(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRedisRepository()
	service := NewLockService(repo, zap.NewNop())

	acquired, value, err := service.TryLock(ctx, "directory:submit:u1:inquiry:h1", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)
	require.NotEmpty(t, value)

	t.Run("Second attempt is refused while held", func(t *testing.T) {
		again, _, err := service.TryLock(ctx, "directory:submit:u1:inquiry:h1", time.Minute)
		require.NoError(t, err)
		assert.False(t, again)
	})

	t.Run("Foreign value cannot release the lock", func(t *testing.T) {
		err := service.Unlock(ctx, "directory:submit:u1:inquiry:h1", "someone-else")
		assert.Error(t, err)
	})

	t.Run("Owner releases and the key becomes free", func(t *testing.T) {
		require.NoError(t, service.Unlock(ctx, "directory:submit:u1:inquiry:h1", value))

		again, _, err := service.TryLock(ctx, "directory:submit:u1:inquiry:h1", time.Minute)
		require.NoError(t, err)
		assert.True(t, again)
	})

	t.Run("Releasing a missing lock is a no-op", func(t *testing.T) {
		assert.NoError(t, service.Unlock(ctx, "missing", "anything"))
	})

	t.Run("Expired owner cannot release its successor", func(t *testing.T) {
		key := "directory:submit:u1:appointment:d1"
		_, stale, err := service.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)

		repo.expire(key)
		acquired, successor, err := service.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		assert.Error(t, service.Unlock(ctx, key, stale))
		assert.True(t, repo.holds(key), "successor keeps the lock")

		require.NoError(t, service.Unlock(ctx, key, successor))
		assert.False(t, repo.holds(key))
	})
}

func TestMemoryLockService(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	service := &memoryLockService{
		locks: make(map[string]heldLock),
		now:   func() time.Time { return current },
	}

	acquired, value, err := service.TryLock(ctx, "k", 30*time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	again, _, _ := service.TryLock(ctx, "k", 30*time.Second)
	assert.False(t, again, "held lock must refuse a second owner")

	current = current.Add(31 * time.Second)
	expired, newValue, _ := service.TryLock(ctx, "k", 30*time.Second)
	assert.True(t, expired, "expired lock can be taken over")
	assert.NotEqual(t, value, newValue)

	assert.Error(t, service.Unlock(ctx, "k", value), "stale owner cannot release")
	assert.NoError(t, service.Unlock(ctx, "k", newValue))

	t.Run("Expired locks are swept on the next attempt", func(t *testing.T) {
		for _, key := range []string{"a", "b", "c"} {
			acquired, _, err := service.TryLock(ctx, key, 10*time.Second)
			require.NoError(t, err)
			require.True(t, acquired)
		}

		current = current.Add(11 * time.Second)
		acquired, _, err := service.TryLock(ctx, "d", 10*time.Second)
		require.NoError(t, err)
		require.True(t, acquired)

		service.mu.Lock()
		defer service.mu.Unlock()
		assert.Len(t, service.locks, 1)
		assert.Contains(t, service.locks, "d")
	})
}
