package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, keys ...string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	AddToSet(ctx context.Context, key string, values ...interface{}) error
	RemoveFromSet(ctx context.Context, key string, values ...interface{}) error
	GetSetMembers(ctx context.Context, key string) ([]string, error)
	AddToSortedSet(ctx context.Context, key string, score float64, member string) error
	GetSortedSetMembers(ctx context.Context, key string) ([]string, error)
	RemoveFromSortedSet(ctx context.Context, key string, members ...string) error
	RemoveFromSortedSetByScore(ctx context.Context, key string, maxScore float64) error
	GetMany(ctx context.Context, keys ...string) ([]string, error)
	Expire(ctx context.Context, key string, exp time.Duration) error
	DeleteIfEquals(ctx context.Context, key, value string) (DeleteResult, error)
}

// DeleteResult reports what a compare-and-delete found at the key.
type DeleteResult int

const (
	DeleteResultMissing  DeleteResult = 0
	DeleteResultDeleted  DeleteResult = 1
	DeleteResultMismatch DeleteResult = -1
)
