package response

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/futsal/pkg/failure"
	"github.com/savioruz/futsal/pkg/gdto"
)

const internalErrorMessage = "internal server error"

// Error is the body of every failed request.
type Error struct {
	Message string `json:"message" example:"booking not found"`
}

// WithJSON writes payload as is, without an envelope.
func WithJSON(ctx *fiber.Ctx, code int, payload interface{}) error {
	return response(ctx, code, payload)
}

func WithMessage(ctx *fiber.Ctx, code int, message string) error {
	return response(ctx, code, gdto.Message{Message: message})
}

// WithError maps err to its status code. Errors without a code are reported as a
// generic 500 so internal details stay in the logs.
func WithError(ctx *fiber.Ctx, err error) error {
	code := failure.GetCode(err)

	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = internalErrorMessage
	}

	return response(ctx, code, Error{Message: msg})
}

func response(ctx *fiber.Ctx, code int, payload interface{}) error {
	if payload == nil {
		return ctx.SendStatus(code)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)

	if err := ctx.Status(code).JSON(payload); err != nil {
		return err
	}

	return nil
}
