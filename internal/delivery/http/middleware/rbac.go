package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/futsal/config"
	"github.com/savioruz/futsal/internal/delivery/http/response"
	"github.com/savioruz/futsal/pkg/constant"
	"github.com/savioruz/futsal/pkg/failure"
	"github.com/savioruz/futsal/pkg/jwt"
)

// AdminGuard protects the admin routes of the booking API.
type AdminGuard fiber.Handler

func checkRole(c *fiber.Ctx, allowedRoles ...string) error {
	role, ok := c.Locals(constant.JwtFieldLevel).(string)
	if !ok {
		return failure.Unauthorized("role information not found")
	}

	for _, allowedRole := range allowedRoles {
		if role == allowedRole {
			return nil
		}
	}

	return failure.Forbidden("insufficient permissions")
}

// NewAdminGuard requires an admin token when admin auth is enabled and lets every
// request through otherwise.
func NewAdminGuard(cfg *config.Config, j *jwt.JWT) AdminGuard {
	if !cfg.Admin.AuthEnabled || j == nil {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return func(c *fiber.Ctx) error {
		if err := authenticate(c, j); err != nil {
			return response.WithError(c, err)
		}

		if err := checkRole(c, constant.UserRoleAdmin); err != nil {
			return response.WithError(c, err)
		}

		return c.Next()
	}
}
