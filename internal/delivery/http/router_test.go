package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/futsal/config"
	"github.com/savioruz/futsal/internal/delivery/http/middleware"
	"github.com/savioruz/futsal/internal/domains/bookings/dto"
	bookingHandler "github.com/savioruz/futsal/internal/domains/bookings/handler"
	"github.com/savioruz/futsal/internal/domains/bookings/mock"
	courtHandler "github.com/savioruz/futsal/internal/domains/courts/handler"
	courtService "github.com/savioruz/futsal/internal/domains/courts/service"
	"github.com/savioruz/futsal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newApp(t *testing.T, basePath string) (*fiber.App, *mock.MockBookingService) {
	t.Helper()

	cfg := &config.Config{HTTP: config.HTTP{BasePath: basePath}}
	l := logger.NewWithWriter("error", io.Discard)
	svc := mock.NewMockBookingService(gomock.NewController(t))

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	NewRouter(app, cfg, l, Handlers{
		Booking: bookingHandler.New(svc, l, validator.New(), middleware.NewAdminGuard(cfg, nil)),
		Court:   courtHandler.New(courtService.New(l), l),
	})

	return app, svc
}

func call(t *testing.T, app *fiber.App, method, target string) (*http.Response, string) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(method, target, nil), -1)
	require.NoError(t, err)

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(raw)
}

func statsFixture() dto.StatsResponse {
	return dto.StatsResponse{
		Date:          "2025-06-01",
		TotalBookings: 1,
		ByStatus:      map[string]int{"confirmed": 1},
		ByCourtType:   map[string]int{"indoor": 1},
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	app, _ := newApp(t, "/")

	resp, body := call(t, app, http.MethodGet, "/unknown")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"message":"route not found"}`, body)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestRouter_BasePath(t *testing.T) {
	app, svc := newApp(t, "/v1")

	svc.EXPECT().GetStats(gomock.Any()).Return(statsFixture(), nil)

	resp, _ := call(t, app, http.MethodGet, "/v1/bookings/stats")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, "/bookings/stats")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_Courts(t *testing.T) {
	app, _ := newApp(t, "/")

	resp, _ := call(t, app, http.MethodGet, "/courts/indoor")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_AuthRoutesAbsentWhenDisabled(t *testing.T) {
	app, _ := newApp(t, "/")

	resp, _ := call(t, app, http.MethodPost, "/auth/login")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestErrorHandler_FiberError(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/", func(*fiber.Ctx) error {
		return fiber.ErrMethodNotAllowed
	})

	resp, body := call(t, app, http.MethodGet, "/")

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Method Not Allowed"}`, body)
}

func TestErrorHandler_PanicIsInternal(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(middleware.Recovery(logger.NewWithWriter("error", io.Discard)))
	app.Get("/", func(*fiber.Ctx) error {
		panic("boom")
	})

	resp, body := call(t, app, http.MethodGet, "/")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"message":"internal server error"}`, body)
}
