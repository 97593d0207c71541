//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/savioruz/futsal/config"
	"github.com/savioruz/futsal/internal/delivery/http"
	"github.com/savioruz/futsal/internal/delivery/http/middleware"
	"github.com/savioruz/futsal/pkg/helper"

	authService "github.com/savioruz/futsal/internal/domains/auth/service"

	bookingHandler "github.com/savioruz/futsal/internal/domains/bookings/handler"
	bookingService "github.com/savioruz/futsal/internal/domains/bookings/service"

	courtHandler "github.com/savioruz/futsal/internal/domains/courts/handler"
	courtService "github.com/savioruz/futsal/internal/domains/courts/service"
)

var infrastructure = wire.NewSet(
	provideLogger,
	provideValidator,
	providePostgres,
	provideRedis,
	provideRedisCache,
	providePublisher,
	provideJWT,
	middleware.NewAdminGuard,
	helper.NewIDGenerator,
)

var bookingDomain = wire.NewSet(
	provideRepository,
	bookingService.New,
	bookingService.NewSummaryReporter,
	bookingHandler.New,
	wire.Bind(new(Reporter), new(*bookingService.SummaryReporter)),
)

var courtDomain = wire.NewSet(
	courtService.New,
	courtHandler.New,
)

var authDomain = wire.NewSet(
	authService.New,
	provideAuthHandler,
)

func InitializeApp(cfg *config.Config) (*Application, error) {
	wire.Build(
		infrastructure,
		bookingDomain,
		courtDomain,
		authDomain,

		wire.Struct(new(http.Handlers), "*"),

		// HTTP server
		provideHTTPServer,

		// Application
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil
}
