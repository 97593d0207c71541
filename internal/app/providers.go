package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/savioruz/futsal/config"
	"github.com/savioruz/futsal/internal/delivery/http"
	authHandler "github.com/savioruz/futsal/internal/domains/auth/handler"
	authService "github.com/savioruz/futsal/internal/domains/auth/service"
	"github.com/savioruz/futsal/internal/domains/bookings/dto"
	"github.com/savioruz/futsal/internal/domains/bookings/repository"
	"github.com/savioruz/futsal/pkg/constant"
	"github.com/savioruz/futsal/pkg/helper"
	"github.com/savioruz/futsal/pkg/httpserver"
	"github.com/savioruz/futsal/pkg/jwt"
	"github.com/savioruz/futsal/pkg/logger"
	"github.com/savioruz/futsal/pkg/mq"
	"github.com/savioruz/futsal/pkg/postgres"
	"github.com/savioruz/futsal/pkg/redis"
)

// Application represents the dependency-injected app
type Application struct {
	HTTPServer *httpserver.Server
	Logger     logger.Interface
	PG         *postgres.Postgres
	Redis      *redis.Redis
	Publisher  mq.Publisher
	Reporter   Reporter
}

func provideLogger(cfg *config.Config) logger.Interface {
	return logger.New(cfg.Log.Level)
}

func provideValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := dto.RegisterValidations(v); err != nil {
		return nil, err
	}

	return v, nil
}

// providePostgres connects only when the postgres store is selected.
func providePostgres(cfg *config.Config, l logger.Interface) (*postgres.Postgres, error) {
	if cfg.Store.Driver != constant.StoreDriverPostgres {
		return nil, nil
	}

	dsn := postgres.ConnectionBuilder(cfg.Pg.Host, cfg.Pg.Port, cfg.Pg.User, cfg.Pg.Password, cfg.Pg.Dbname, cfg.Pg.SSLMode, cfg.Pg.Timezone)

	return postgres.New(dsn,
		postgres.MaxPoolSize(cfg.Pg.PoolMax),
		postgres.ConnAttempts(cfg.Pg.ConnAttempts),
		postgres.ConnTimeout(cfg.Pg.ConnTimeout),
		postgres.Logger(l),
	)
}

func provideRepository(pg *postgres.Postgres, ids *helper.IDGenerator, l logger.Interface) repository.Repository {
	if pg == nil {
		return repository.NewMemory(ids)
	}

	return repository.NewPostgres(pg.Pool, ids, l)
}

func provideRedis(cfg *config.Config) (*redis.Redis, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}

	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)

	return redis.New(addr,
		redis.Password(cfg.Redis.Password),
		redis.DB(cfg.Redis.DB),
		redis.PoolSize(cfg.Redis.PoolSize),
		redis.DialTimeout(cfg.Redis.DialTimeout),
	)
}

func provideRedisCache(r *redis.Redis, l logger.Interface) redis.IRedisCache {
	if r == nil {
		return redis.NewNoopCache()
	}

	return redis.NewRedisCache(r.Client, l)
}

func providePublisher(cfg *config.Config) (mq.Publisher, error) {
	if !cfg.MQ.Enabled {
		return mq.NewNoopPublisher(), nil
	}

	return mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
}

// provideJWT returns nil when admin auth is off; the admin guard then lets requests through.
func provideJWT(cfg *config.Config) (*jwt.JWT, error) {
	if !cfg.Admin.AuthEnabled {
		return nil, nil
	}

	expiry, err := jwt.ParseDuration(cfg.JWT.AccessTokenExpiry)
	if err != nil {
		return nil, err
	}

	return jwt.New(cfg.App.Name, cfg.JWT.Secret, expiry)
}

func provideAuthHandler(cfg *config.Config, s authService.AuthService, l logger.Interface, v *validator.Validate) *authHandler.Handler {
	if !cfg.Admin.AuthEnabled {
		return nil
	}

	return authHandler.New(s, l, v)
}

func provideHTTPServer(cfg *config.Config, l logger.Interface, h http.Handlers) *httpserver.Server {
	server := httpserver.New(
		httpserver.Port(cfg.HTTP.Port),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
		httpserver.ErrorHandler(http.ErrorHandler),
	)

	http.NewRouter(server.App, cfg, l, h)

	return server
}
