package handler

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/futsal/internal/delivery/http/middleware"
	"github.com/savioruz/futsal/internal/delivery/http/response"
	"github.com/savioruz/futsal/internal/domains/bookings/dto"
	"github.com/savioruz/futsal/internal/domains/bookings/service"
	"github.com/savioruz/futsal/pkg/constant"
	"github.com/savioruz/futsal/pkg/failure"
	"github.com/savioruz/futsal/pkg/logger"
)

type Handler struct {
	service   service.BookingService
	logger    logger.Interface
	validator *validator.Validate
	admin     middleware.AdminGuard
}

func New(s service.BookingService, l logger.Interface, v *validator.Validate, admin middleware.AdminGuard) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
		admin:     admin,
	}
}

const (
	identifier = "http - booking - %s"

	routepath = "/bookings"

	msgCreated = "booking created"
	msgUpdated = "booking updated"
	msgDeleted = "booking deleted"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	bookings := r.Group(routepath)

	bookings.Get("/", h.GetBookings)
	bookings.Post("/", h.CreateBooking)
	bookings.Put("/", fiber.Handler(h.admin), h.UpdateBooking)
	bookings.Delete("/", fiber.Handler(h.admin), h.DeleteBooking)
	bookings.Get("/availability", h.GetAvailability)
	bookings.Get("/quote", h.GetQuote)
	bookings.Get("/stats", fiber.Handler(h.admin), h.GetStats)
	bookings.Get("/:id", h.GetBookingByID)
}

// GetBookings godoc
// @Summary List bookings
// @Description List bookings in insertion order, optionally filtered
// @Tags bookings
// @Produce json
// @Param date query string false "Booking date (YYYY-MM-DD)"
// @Param court_type query string false "Court type" Enums(indoor, outdoor, vip)
// @Param status query string false "Status" Enums(pending, confirmed, cancelled)
// @Success 200 {array} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings [get]
func (h *Handler) GetBookings(ctx *fiber.Ctx) error {
	var req dto.ListBookingsRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "list - error parsing query: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "list - validate error: "+err.Error())

		return response.WithError(ctx, failure.Validation(err))
	}

	res, err := h.service.GetBookings(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error(identifier, "list - error getting bookings: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// CreateBooking godoc
// @Summary Create booking
// @Description Create a booking; price and status are computed by the server
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} dto.BookingMessageResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings [post]
func (h *Handler) CreateBooking(ctx *fiber.Ctx) error {
	var req dto.CreateBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "create - error parsing request body: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "create - validate error: "+err.Error())

		return response.WithError(ctx, failure.Validation(err))
	}

	res, err := h.service.CreateBooking(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error(identifier, "create - error creating booking: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, dto.BookingMessageResponse{
		Message: msgCreated,
		Booking: res,
	})
}

// UpdateBooking godoc
// @Summary Update booking
// @Description Merge the provided fields into a booking; the price is recomputed
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.UpdateBookingRequest true "Update booking request"
// @Success 200 {object} dto.BookingMessageResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings [put]
// @Security BearerAuth
func (h *Handler) UpdateBooking(ctx *fiber.Ctx) error {
	var req dto.UpdateBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "update - error parsing request body: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "update - validate error: "+err.Error())

		return response.WithError(ctx, failure.Validation(err))
	}

	res, err := h.service.UpdateBooking(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error(identifier, "update - error updating booking: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, dto.BookingMessageResponse{
		Message: msgUpdated,
		Booking: res,
	})
}

// DeleteBooking godoc
// @Summary Delete booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.DeleteBookingRequest true "Delete booking request"
// @Success 200 {object} gdto.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings [delete]
// @Security BearerAuth
func (h *Handler) DeleteBooking(ctx *fiber.Ctx) error {
	var req dto.DeleteBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "delete - error parsing request body: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "delete - validate error: "+err.Error())

		return response.WithError(ctx, failure.Validation(err))
	}

	if err := h.service.DeleteBooking(ctx.UserContext(), req.ID.Int64()); err != nil {
		h.logger.Error(identifier, "delete - error deleting booking: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, msgDeleted)
}

// GetBookingByID godoc
// @Summary Get booking by ID
// @Tags bookings
// @Produce json
// @Param id path integer true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/{id} [get]
func (h *Handler) GetBookingByID(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params(constant.RequestParamID), 10, 64)
	if err != nil || id <= 0 {
		h.logger.Error(identifier, "get - invalid booking id: "+ctx.Params(constant.RequestParamID))

		return response.WithError(ctx, failure.BadRequestFromString("invalid booking id"))
	}

	res, err := h.service.GetBookingByID(ctx.UserContext(), id)
	if err != nil {
		h.logger.Error(identifier, "get - error getting booking by id: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetAvailability godoc
// @Summary Slot availability
// @Description Occupied slots and free start times for a date and court
// @Tags bookings
// @Produce json
// @Param date query string true "Booking date (YYYY-MM-DD)"
// @Param court_type query string false "Court type" Enums(indoor, outdoor, vip)
// @Param duration query integer false "Duration in hours" minimum(1) maximum(4)
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/availability [get]
func (h *Handler) GetAvailability(ctx *fiber.Ctx) error {
	var req dto.AvailabilityRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "availability - error parsing query: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "availability - validate error: "+err.Error())

		return response.WithError(ctx, failure.Validation(err))
	}

	res, err := h.service.GetAvailability(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error(identifier, "availability - error getting availability: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetQuote godoc
// @Summary Price quote
// @Tags bookings
// @Produce json
// @Param time query string true "Start time (HH:MM)"
// @Param duration query integer true "Duration in hours" minimum(1) maximum(4)
// @Param court_type query string false "Court type" Enums(indoor, outdoor, vip)
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} response.Error
// @Router /bookings/quote [get]
func (h *Handler) GetQuote(ctx *fiber.Ctx) error {
	var req dto.QuoteRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "quote - error parsing query: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "quote - validate error: "+err.Error())

		return response.WithError(ctx, failure.Validation(err))
	}

	res, err := h.service.GetQuote(ctx.UserContext(), req)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetStats godoc
// @Summary Booking stats
// @Description Totals per status and court type, upcoming bookings and confirmed revenue
// @Tags bookings
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/stats [get]
// @Security BearerAuth
func (h *Handler) GetStats(ctx *fiber.Ctx) error {
	res, err := h.service.GetStats(ctx.UserContext())
	if err != nil {
		h.logger.Error(identifier, "stats - error getting stats: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}
