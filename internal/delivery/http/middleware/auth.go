package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/futsal/pkg/constant"
	"github.com/savioruz/futsal/pkg/failure"
	"github.com/savioruz/futsal/pkg/jwt"
)

// authenticate validates the bearer token and stores the subject and level in locals.
func authenticate(c *fiber.Ctx, j *jwt.JWT) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return failure.Unauthorized("missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return failure.Unauthorized("invalid authorization header format")
	}

	claims, err := j.ValidateToken(parts[1])
	if err != nil {
		return failure.Unauthorized("invalid token")
	}

	c.Locals(constant.JwtFieldUser, claims.Username)
	c.Locals(constant.JwtFieldLevel, claims.Level)

	return nil
}
