package locker

import (
	"context"
	"directory-service/internal/app/contracts"
	"directory-service/internal/pkg/exceptions"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type heldLock struct {
	value     string
	expiresAt time.Time
}

type memoryLockService struct {
	mu    sync.Mutex
	locks map[string]heldLock
	now   func() time.Time
}

// NewMemoryLockService returns a lock local to this process, for single
// instance deployments and tests.
func NewMemoryLockService() contracts.LockerService {
	return &memoryLockService{
		locks: make(map[string]heldLock),
		now:   time.Now,
	}
}

func (s *memoryLockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for heldKey, held := range s.locks {
		if !now.Before(held.expiresAt) {
			delete(s.locks, heldKey)
		}
	}
	if _, ok := s.locks[key]; ok {
		return false, "", nil
	}

	lockValue := uuid.NewString()
	s.locks[key] = heldLock{value: lockValue, expiresAt: now.Add(expiration)}
	return true, lockValue, nil
}

func (s *memoryLockService) Unlock(ctx context.Context, key, lockValue string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	held, ok := s.locks[key]
	if !ok {
		return nil
	}
	if held.value != lockValue {
		return exceptions.ErrRedisUnlock(fmt.Errorf("lock not owned by this client"))
	}
	delete(s.locks, key)
	return nil
}
