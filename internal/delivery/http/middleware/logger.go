package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/futsal/pkg/logger"
)

func buildRequestMessage(ctx *fiber.Ctx, duration time.Duration) string {
	var result strings.Builder

	result.WriteString(ctx.IP())
	result.WriteString(" - ")
	result.WriteString(ctx.Method())
	result.WriteString(" ")
	result.WriteString(ctx.OriginalURL())
	result.WriteString(" - ")
	result.WriteString(strconv.Itoa(ctx.Response().StatusCode()))
	result.WriteString(" ")
	result.WriteString(strconv.Itoa(len(ctx.Response().Body())))
	result.WriteString(" - ")
	result.WriteString(strconv.FormatInt(duration.Milliseconds(), 10))
	result.WriteString("ms")

	if id, ok := ctx.Locals(RequestIDKey).(string); ok {
		result.WriteString(" - ")
		result.WriteString(id)
	}

	return result.String()
}

// Logger writes one line per request; 5xx responses are logged as errors and 4xx as warnings.
func Logger(l logger.Interface) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()

		err := ctx.Next()

		msg := buildRequestMessage(ctx, time.Since(start))

		switch status := ctx.Response().StatusCode(); {
		case status >= fiber.StatusInternalServerError:
			l.Error(msg)
		case status >= fiber.StatusBadRequest:
			l.Warn(msg)
		default:
			l.Info(msg)
		}

		return err
	}
}
