package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	// CompareAndDelete removes key in one step only while it still holds value.
	// found reports whether key existed at all.
	CompareAndDelete(ctx context.Context, key string, value interface{}) (found bool, deleted bool, err error)
}
