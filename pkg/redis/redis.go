package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrEmptyAddr = errors.New("redis: address is required")

// Redis wraps the client shared by the availability cache.
type Redis struct {
	Client *redis.Client
}

type Option func(*redis.Options)

func Password(password string) Option {
	return func(o *redis.Options) {
		o.Password = password
	}
}

func DB(db int) Option {
	return func(o *redis.Options) {
		o.DB = db
	}
}

// PoolSize caps open connections; zero keeps the client default.
func PoolSize(size int) Option {
	return func(o *redis.Options) {
		if size > 0 {
			o.PoolSize = size
		}
	}
}

// DialTimeout bounds connecting; zero keeps the client default.
func DialTimeout(timeout time.Duration) Option {
	return func(o *redis.Options) {
		if timeout > 0 {
			o.DialTimeout = timeout
		}
	}
}

// New does not dial; callers check reachability with Ping.
func New(addr string, opts ...Option) (*Redis, error) {
	if addr == "" {
		return nil, ErrEmptyAddr
	}

	options := &redis.Options{Addr: addr}
	for _, opt := range opts {
		opt(options)
	}

	return &Redis{Client: redis.NewClient(options)}, nil
}

func (r *Redis) Close() {
	if r.Client != nil {
		_ = r.Client.Close()
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping %s failed: %w", r.Client.Options().Addr, err)
	}

	return nil
}
