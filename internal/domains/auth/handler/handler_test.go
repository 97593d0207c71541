package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/futsal/internal/domains/auth/dto"
	"github.com/savioruz/futsal/internal/domains/auth/mock"
	"github.com/savioruz/futsal/pkg/failure"
	log "github.com/savioruz/futsal/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func post(t *testing.T, app *fiber.App, body string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(raw)
}

func TestHandler_Login(t *testing.T) {
	setup := func(t *testing.T) (*fiber.App, *mock.MockAuthService, *log.MockInterface) {
		ctrl := gomock.NewController(t)
		mockService := mock.NewMockAuthService(ctrl)
		mockLogger := log.NewMockInterface(ctrl)

		app := fiber.New()
		New(mockService, mockLogger, validator.New()).RegisterRoutes(app)

		return app, mockService, mockLogger
	}

	t.Run("success", func(t *testing.T) {
		app, mockService, _ := setup(t)

		mockService.EXPECT().
			Login(gomock.Any(), dto.LoginRequest{Username: "admin", Password: "password123"}).
			Return(&dto.TokenResponse{AccessToken: "token", TokenType: "Bearer", ExpiresAt: "2025-06-02T09:00:00+07:00"}, nil)

		code, body := post(t, app, `{"username":"admin","password":"password123"}`)

		assert.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `{"access_token":"token","token_type":"Bearer","expires_at":"2025-06-02T09:00:00+07:00"}`, body)
	})

	t.Run("error: validation", func(t *testing.T) {
		app, _, mockLogger := setup(t)

		mockLogger.EXPECT().Error(gomock.Any())

		code, _ := post(t, app, `{"username":"admin"}`)

		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("error: invalid credentials", func(t *testing.T) {
		app, mockService, mockLogger := setup(t)

		mockService.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, failure.Unauthorized("invalid username or password"))
		mockLogger.EXPECT().Error(gomock.Any())

		code, body := post(t, app, `{"username":"admin","password":"password124"}`)

		assert.Equal(t, http.StatusUnauthorized, code)
		assert.JSONEq(t, `{"message":"invalid username or password"}`, body)
	})
}
