package service

import (
	"context"
	"crypto/subtle"

	"github.com/savioruz/futsal/config"
	"github.com/savioruz/futsal/internal/domains/auth/dto"
	"github.com/savioruz/futsal/pkg/constant"
	"github.com/savioruz/futsal/pkg/failure"
	"github.com/savioruz/futsal/pkg/jwt"
	"github.com/savioruz/futsal/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=../mock/service_mock.go -package=mock github.com/savioruz/futsal/internal/domains/auth/service AuthService

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
}

type authService struct {
	admin  config.Admin
	jwt    *jwt.JWT
	logger logger.Interface
}

func New(cfg *config.Config, j *jwt.JWT, l logger.Interface) AuthService {
	return &authService{
		admin:  cfg.Admin,
		jwt:    j,
		logger: l,
	}
}

const (
	identifier = "service - auth - %s"

	tokenType = "Bearer"
)

var errInvalidCredentials = failure.Unauthorized("invalid username or password")

// Login checks the credentials against the configured admin account. Unknown
// usernames and wrong passwords get the same answer.
func (s *authService) Login(_ context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.admin.Username)) != 1 {
		s.logger.Warn(identifier, "login - unknown username: "+req.Username)

		return nil, errInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn(identifier, "login - password mismatch for: "+req.Username)

		return nil, errInvalidCredentials
	}

	accessToken, expiresAt, err := s.jwt.GenerateAccessToken(req.Username, constant.UserRoleAdmin)
	if err != nil {
		s.logger.Error(identifier, "login - failed to generate access token: "+err.Error())

		return nil, failure.InternalError(err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   tokenType,
		ExpiresAt:   expiresAt.Format(constant.FullDateFormat),
	}, nil
}
