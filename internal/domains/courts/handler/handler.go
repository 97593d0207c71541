package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/futsal/internal/delivery/http/response"
	"github.com/savioruz/futsal/internal/domains/courts/service"
	"github.com/savioruz/futsal/pkg/logger"
)

type Handler struct {
	service service.CourtService
	logger  logger.Interface
}

func New(s service.CourtService, l logger.Interface) *Handler {
	return &Handler{
		service: s,
		logger:  l,
	}
}

const (
	identifier = "http - court - %s"

	paramType = "type"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	court := r.Group("/courts")

	court.Get("/", h.GetAll)
	court.Get("/:"+paramType, h.Get)
}

// GetAll Courts godoc
// @Summary List court types
// @Description Court types with their hourly rates, bookable slots and duration limits
// @Tags courts
// @Produce json
// @Success 200 {object} dto.GetCourtsResponse
// @Failure 500 {object} response.Error
// @Router /courts [get]
func (h *Handler) GetAll(ctx *fiber.Ctx) error {
	data, err := h.service.GetAll(ctx.UserContext())
	if err != nil {
		h.logger.Error(identifier, "get all - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Get Court godoc
// @Summary Get court type
// @Tags courts
// @Produce json
// @Param type path string true "Court type" Enums(indoor, outdoor, vip)
// @Success 200 {object} dto.CourtResponse
// @Failure 404 {object} response.Error
// @Router /courts/{type} [get]
func (h *Handler) Get(ctx *fiber.Ctx) error {
	data, err := h.service.Get(ctx.UserContext(), ctx.Params(paramType))
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}
