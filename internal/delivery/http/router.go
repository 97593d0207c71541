package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/savioruz/futsal/config"
	_ "github.com/savioruz/futsal/docs" // Swagger docs
	"github.com/savioruz/futsal/internal/delivery/http/middleware"
	"github.com/savioruz/futsal/internal/delivery/http/response"
	authHandler "github.com/savioruz/futsal/internal/domains/auth/handler"
	bookingHandler "github.com/savioruz/futsal/internal/domains/bookings/handler"
	courtHandler "github.com/savioruz/futsal/internal/domains/courts/handler"
	"github.com/savioruz/futsal/pkg/failure"
	"github.com/savioruz/futsal/pkg/logger"
)

// Handlers groups the domain handlers. Auth is nil when admin auth is disabled.
type Handlers struct {
	Auth    *authHandler.Handler
	Booking *bookingHandler.Handler
	Court   *courtHandler.Handler
}

// NewRouter initializes the HTTP router and registers the routes for the application.
// Swagger spec:
// @title Futsal Booking API
// @version 1.0
// @description Court reservations with server-side pricing and overlap checks.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	l logger.Interface,
	handlers Handlers,
) {
	// Options
	app.Use(middleware.Logger(l))
	app.Use(middleware.Recovery(l))
	app.Use(middleware.RequestID())
	app.Use(middleware.CORS(cfg))

	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	api := app.Group(cfg.HTTP.BasePath)
	{
		if handlers.Auth != nil {
			handlers.Auth.RegisterRoutes(api)
		}

		handlers.Booking.RegisterRoutes(api)
		handlers.Court.RegisterRoutes(api)
	}

	app.Use("*", func(c *fiber.Ctx) error {
		return response.WithError(c, failure.NotFound("route not found"))
	})
}

// ErrorHandler answers errors that escape the handlers, such as recovered panics
// or fiber's own errors, in the same {"message"} shape.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return response.WithError(ctx, &failure.Failure{Code: fe.Code, Message: fe.Message})
	}

	return response.WithError(ctx, err)
}
