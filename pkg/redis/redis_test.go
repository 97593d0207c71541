package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("applies options", func(t *testing.T) {
		r, err := New("localhost:6379",
			Password("secret"),
			DB(2),
			PoolSize(7),
			DialTimeout(2*time.Second),
		)
		require.NoError(t, err)
		defer r.Close()

		opts := r.Client.Options()
		assert.Equal(t, "localhost:6379", opts.Addr)
		assert.Equal(t, "secret", opts.Password)
		assert.Equal(t, 2, opts.DB)
		assert.Equal(t, 7, opts.PoolSize)
		assert.Equal(t, 2*time.Second, opts.DialTimeout)
	})

	t.Run("zero sizes keep client defaults", func(t *testing.T) {
		r, err := New("localhost:6379", PoolSize(0), DialTimeout(0))
		require.NoError(t, err)
		defer r.Close()

		assert.Positive(t, r.Client.Options().PoolSize)
		assert.Positive(t, r.Client.Options().DialTimeout)
	})

	t.Run("empty address", func(t *testing.T) {
		_, err := New("")

		assert.ErrorIs(t, err, ErrEmptyAddr)
	})
}

func TestRedis_Ping(t *testing.T) {
	ctx := context.Background()

	t.Run("pong", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectPing().SetVal("PONG")

		require.NoError(t, (&Redis{Client: client}).Ping(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error is wrapped", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		down := errors.New("connection refused")
		mock.ExpectPing().SetErr(down)

		err := (&Redis{Client: client}).Ping(ctx)

		assert.ErrorIs(t, err, down)
		assert.Contains(t, err.Error(), "redis: ping")
	})
}
