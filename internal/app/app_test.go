package app

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/savioruz/futsal/config"
	authService "github.com/savioruz/futsal/internal/domains/auth/service"
	"github.com/savioruz/futsal/internal/domains/bookings/dto"
	"github.com/savioruz/futsal/internal/domains/bookings/repository"
	"github.com/savioruz/futsal/pkg/helper"
	"github.com/savioruz/futsal/pkg/jwt"
	"github.com/savioruz/futsal/pkg/logger"
	log "github.com/savioruz/futsal/pkg/logger/mock"
	"github.com/savioruz/futsal/pkg/mq"
	"github.com/savioruz/futsal/pkg/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func memoryConfig() *config.Config {
	return &config.Config{
		App:      config.App{Name: "futsal-booking", Timezone: "Asia/Jakarta"},
		Cache:    config.Cache{Duration: 60},
		HTTP:     config.HTTP{Port: "3000", BasePath: "/"},
		Log:      config.Log{Level: "error"},
		Store:    config.Store{Driver: "memory"},
		Schedule: config.Schedule{DailySummary: "0 0 23 * * *"},
	}
}

func bookingFixture() repository.Booking {
	return repository.Booking{
		Name:      "Budi",
		Phone:     "081234567890",
		Date:      "2025-06-01",
		Time:      "09:00",
		Duration:  2,
		CourtType: "indoor",
		Price:     160000,
		Status:    "confirmed",
	}
}

func TestInitializeApp_MemoryDefaults(t *testing.T) {
	app, err := InitializeApp(memoryConfig())
	require.NoError(t, err)

	assert.Nil(t, app.PG)
	assert.Nil(t, app.Redis)
	assert.Equal(t, mq.NewNoopPublisher(), app.Publisher)
	assert.NotNil(t, app.Reporter)
	assert.Equal(t, ":3000", app.HTTPServer.Address())
}

func TestInitializeApp_InvalidAuthConfig(t *testing.T) {
	cfg := memoryConfig()
	cfg.Admin.AuthEnabled = true

	_, err := InitializeApp(cfg)

	assert.Error(t, err)
}

func TestProvideValidator_RegistersBookingTags(t *testing.T) {
	v, err := provideValidator()
	require.NoError(t, err)

	err = v.Struct(dto.QuoteRequest{Time: "09:15", Duration: 1})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "slot", verrs[0].Tag())
}

func TestProvideRepository_MemoryWithoutPostgres(t *testing.T) {
	repo := provideRepository(nil, helper.NewIDGenerator(), logger.NewWithWriter("error", io.Discard))

	b, err := repo.Insert(context.Background(), bookingFixture())
	require.NoError(t, err)
	assert.Positive(t, b.ID)
}

func TestProvideRedisCache_NoopWhenDisabled(t *testing.T) {
	r, err := provideRedis(memoryConfig())
	require.NoError(t, err)
	assert.Nil(t, r)

	assert.Equal(t, redis.NewNoopCache(), provideRedisCache(r, nil))
}

func TestProvideJWT(t *testing.T) {
	cfg := memoryConfig()

	j, err := provideJWT(cfg)
	require.NoError(t, err)
	assert.Nil(t, j)

	cfg.Admin.AuthEnabled = true
	cfg.JWT = config.JWT{Secret: "secret", AccessTokenExpiry: "1d"}

	j, err = provideJWT(cfg)
	require.NoError(t, err)
	require.NotNil(t, j)

	v, err := provideValidator()
	require.NoError(t, err)

	l := logger.NewWithWriter("error", io.Discard)
	assert.NotNil(t, provideAuthHandler(cfg, authService.New(cfg, j, l), l, v))

	cfg.Admin.AuthEnabled = false
	assert.Nil(t, provideAuthHandler(cfg, authService.New(cfg, j, l), l, v))
}

func TestProvideJWT_InvalidExpiry(t *testing.T) {
	cfg := memoryConfig()
	cfg.Admin.AuthEnabled = true
	cfg.JWT = config.JWT{Secret: "secret", AccessTokenExpiry: "forever"}

	_, err := provideJWT(cfg)

	assert.ErrorIs(t, err, jwt.ErrInvalidExpiry)
}

func TestInitializeApp_HTTPTimeouts(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTP.ReadTimeout = 7 * time.Second
	cfg.HTTP.WriteTimeout = 8 * time.Second
	cfg.HTTP.ShutdownTimeout = 9 * time.Second

	app, err := InitializeApp(cfg)
	require.NoError(t, err)

	fc := app.HTTPServer.FiberConfig()
	assert.Equal(t, 7*time.Second, fc.ReadTimeout)
	assert.Equal(t, 8*time.Second, fc.WriteTimeout)
	assert.Equal(t, 9*time.Second, fc.IdleTimeout)
}

func TestProvideRedis_Options(t *testing.T) {
	cfg := memoryConfig()
	cfg.Redis = config.Redis{
		Enabled:     true,
		Host:        "cache",
		Port:        6380,
		DB:          1,
		PoolSize:    4,
		DialTimeout: time.Second,
	}

	r, err := provideRedis(cfg)
	require.NoError(t, err)
	defer r.Close()

	opts := r.Client.Options()
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 1, opts.DB)
	assert.Equal(t, 4, opts.PoolSize)
	assert.Equal(t, time.Second, opts.DialTimeout)
}

func TestProvidePostgres_UsesConnectionSettings(t *testing.T) {
	cfg := memoryConfig()
	cfg.Store.Driver = "postgres"
	cfg.Pg = config.Pg{
		PoolMax:      1,
		ConnAttempts: 1,
		ConnTimeout:  50 * time.Millisecond,
		Host:         "127.0.0.1",
		Port:         1,
		User:         "futsal",
		Dbname:       "futsal",
		SSLMode:      "disable",
		Timezone:     "UTC",
	}

	start := time.Now()
	_, err := providePostgres(cfg, logger.NewWithWriter("error", io.Discard))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 1 attempts")
	assert.Less(t, time.Since(start), 5*time.Second)
}

type reporterFunc func(ctx context.Context) error

func (f reporterFunc) Report(ctx context.Context) error {
	return f(ctx)
}

func TestCron(t *testing.T) {
	t.Run("schedules the daily summary", func(t *testing.T) {
		c, err := Cron(memoryConfig(), reporterFunc(func(context.Context) error { return nil }), nil)

		require.NoError(t, err)
		assert.Len(t, c.Entries(), 1)
	})

	t.Run("empty schedule disables the job", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.Schedule.DailySummary = ""

		c, err := Cron(cfg, nil, nil)

		require.NoError(t, err)
		assert.Empty(t, c.Entries())
	})

	t.Run("invalid schedule", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.Schedule.DailySummary = "every day"

		_, err := Cron(cfg, nil, nil)

		assert.Error(t, err)
	})

	t.Run("job logs report failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockLogger := log.NewMockInterface(ctrl)
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		c, err := Cron(memoryConfig(), reporterFunc(func(context.Context) error {
			return errors.New("store unavailable")
		}), mockLogger)
		require.NoError(t, err)

		c.Entries()[0].Job.Run()
	})
}
