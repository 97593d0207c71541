package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/savioruz/futsal/pkg/logger"
)

const (
	identifier = "postgres - %s"

	_defaultMaxPoolSize  = 1
	_defaultConnAttempts = 10
	_defaultConnTimeout  = 5 * time.Second
)

// Postgres owns the booking store's connection pool.
type Postgres struct {
	maxPoolSize  int
	connAttempts int
	connTimeout  time.Duration
	logger       logger.Interface

	Pool *pgxpool.Pool
}

// New builds the pool and waits until the database answers a ping. Each
// attempt is bounded by the connection timeout, and attempts are spaced by the
// same duration.
func New(dsn string, opts ...Option) (*Postgres, error) {
	pg := &Postgres{
		maxPoolSize:  _defaultMaxPoolSize,
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
	}

	for _, opt := range opts {
		opt(pg)
	}

	if pg.connAttempts < 1 {
		pg.connAttempts = 1
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to parse config: %w", err)
	}

	if pg.maxPoolSize > 0 {
		poolConfig.MaxConns = int32(pg.maxPoolSize)
	}

	poolConfig.ConnConfig.ConnectTimeout = pg.connTimeout

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create pool: %w", err)
	}

	for attempt := 1; ; attempt++ {
		if err = ping(pool, pg.connTimeout); err == nil {
			break
		}

		if attempt >= pg.connAttempts {
			pool.Close()

			return nil, fmt.Errorf("postgres: failed to connect after %d attempts: %w", attempt, err)
		}

		pg.logf("connect", "attempt %d of %d failed: %v", attempt, pg.connAttempts, err)

		time.Sleep(pg.connTimeout)
	}

	pg.Pool = pool

	return pg, nil
}

func ping(pool *pgxpool.Pool, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return pool.Ping(ctx)
}

func (p *Postgres) logf(op, format string, args ...interface{}) {
	if p.logger == nil {
		return
	}

	p.logger.Warn(fmt.Sprintf(identifier, op)+": "+format, args...)
}

func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
}

func (p *Postgres) Ping(ctx context.Context) error {
	if err := p.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: ping failed: %w", err)
	}

	return nil
}
