package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTypeAccess = "access_token"

var (
	ErrInvalidToken  = errors.New("jwt: invalid token")
	ErrMissingSecret = errors.New("jwt: secret key is empty")
)

type JWT struct {
	appName           string
	secretKey         string
	accessTokenExpiry time.Duration
	now               func() time.Time
}

func New(appName, secretKey string, accessExpiry time.Duration) (*JWT, error) {
	if secretKey == "" {
		return nil, ErrMissingSecret
	}

	return &JWT{
		appName:           appName,
		secretKey:         secretKey,
		accessTokenExpiry: accessExpiry,
		now:               time.Now,
	}, nil
}

// GenerateAccessToken signs an HS512 access token for the given subject.
func (j *JWT) GenerateAccessToken(username, level string) (string, time.Time, error) {
	issuedAt := j.now()
	expiresAt := issuedAt.Add(j.accessTokenExpiry)

	claims := &Claims{
		Username:  username,
		Level:     level,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    j.appName,
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	signedString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwt: failed to sign token: %w", err)
	}

	return signedString, expiresAt, nil
}

func (j *JWT) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return []byte(j.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}), jwt.WithIssuer(j.appName))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.TokenType == tokenTypeAccess {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
