package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// noopCache is used when REDIS_ENABLED is false: every read misses, every write is dropped.
type noopCache struct{}

func NewNoopCache() IRedisCache {
	return noopCache{}
}

func (noopCache) Save(context.Context, string, any, int) error {
	return nil
}

func (noopCache) Get(context.Context, string, any) error {
	return redis.Nil
}

func (noopCache) Delete(context.Context, string) error {
	return nil
}

func (noopCache) Clear(context.Context, string) error {
	return nil
}
