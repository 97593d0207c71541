package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/savioruz/futsal/config"
	"github.com/savioruz/futsal/internal/domains/bookings/dto"
	"github.com/savioruz/futsal/internal/domains/bookings/pricing"
	"github.com/savioruz/futsal/internal/domains/bookings/repository"
	"github.com/savioruz/futsal/pkg/constant"
	"github.com/savioruz/futsal/pkg/failure"
	"github.com/savioruz/futsal/pkg/helper"
	"github.com/savioruz/futsal/pkg/logger"
	"github.com/savioruz/futsal/pkg/mq"
	"github.com/savioruz/futsal/pkg/redis"
)

//go:generate mockgen -source=service.go -destination=../mock/service_mock.go -package=mock github.com/savioruz/futsal/internal/domains/bookings/service BookingService

type BookingService interface {
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetBookings(ctx context.Context, req dto.ListBookingsRequest) ([]dto.BookingResponse, error)
	GetBookingByID(ctx context.Context, id int64) (dto.BookingResponse, error)
	UpdateBooking(ctx context.Context, req dto.UpdateBookingRequest) (dto.BookingResponse, error)
	DeleteBooking(ctx context.Context, id int64) error
	GetAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	GetQuote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	GetStats(ctx context.Context) (dto.StatsResponse, error)
}

type bookingService struct {
	repo      repository.Repository
	cache     redis.IRedisCache
	publisher mq.Publisher
	cfg       *config.Config
	logger    logger.Interface
	today     func() string
}

func New(r repository.Repository, c redis.IRedisCache, p mq.Publisher, cfg *config.Config, l logger.Interface) BookingService {
	return &bookingService{
		repo:      r,
		cache:     c,
		publisher: p,
		cfg:       cfg,
		logger:    l,
		today:     helper.TodayInAppTimezone,
	}
}

const (
	cacheBookingsKey     = "bookings"
	cacheBookingKey      = "bookings:id"
	cacheAvailabilityKey = "bookings:availability"
	cacheStatsKey        = "bookings:stats"

	identifier = "service - booking - %s"
)

var (
	errSlotTaken = failure.Conflict("the selected time overlaps an existing booking")
	errNotFound  = failure.NotFound("booking not found")
	errNoChanges = failure.BadRequestFromString("at least one field besides id is required")
)

func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	courtType, err := pricing.NormalizeCourtType(req.CourtType)
	if err != nil {
		s.logger.Error(identifier, "create - invalid court type: "+req.CourtType)

		return res, failure.BadRequest(err)
	}

	price, err := pricing.ComputePrice(req.Time, req.Duration.Int(), courtType)
	if err != nil {
		s.logger.Error(identifier, "create - error computing price: "+err.Error())

		return res, failure.BadRequest(err)
	}

	booking, err := s.repo.Insert(ctx, repository.Booking{
		Name:      req.Name,
		Phone:     req.Phone,
		Date:      req.Date,
		Time:      req.Time,
		Duration:  req.Duration.Int(),
		CourtType: courtType,
		Price:     price,
		Status:    constant.BookingStatusConfirmed,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			s.logger.Warn(identifier, "create - slot taken on "+req.Date+" at "+req.Time)

			return res, errSlotTaken
		}

		s.logger.Error(identifier, "create - error inserting booking: "+err.Error())

		return res, err
	}

	res = dto.BookingResponse{}.FromModel(booking)

	s.invalidate(ctx)
	s.publish(ctx, constant.EventBookingCreated, res.ID, &res)

	return res, nil
}

func (s *bookingService) GetBookings(ctx context.Context, req dto.ListBookingsRequest) (res []dto.BookingResponse, err error) {
	keyArgs := map[string]string{}
	keyArgs["date"] = req.Date
	keyArgs["court_type"] = req.CourtType
	keyArgs["status"] = req.Status
	cacheKey := helper.BuildCacheKey(cacheBookingsKey, "list:"+helper.GenerateUniqueKey(keyArgs))

	var cacheRes []dto.BookingResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil && cacheRes != nil {
		s.logger.Debug(identifier, "list - cache hit for key: "+cacheKey)

		return cacheRes, nil
	}

	bookings, err := s.repo.List(ctx, repository.Filter{
		Date:      req.Date,
		CourtType: req.CourtType,
		Status:    req.Status,
	})
	if err != nil {
		s.logger.Error(identifier, "list - error listing bookings: "+err.Error())

		return res, err
	}

	res = dto.FromModels(bookings)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	cacheKey := helper.BuildCacheKey(cacheBookingKey, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil && res.ID == id {
		s.logger.Debug(identifier, "get - cache hit for key: "+cacheKey)

		return res, nil
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn(identifier, "get - booking not found with ID: "+strconv.FormatInt(id, 10))

			return dto.BookingResponse{}, errNotFound
		}

		s.logger.Error(identifier, "get - error getting booking by ID: "+err.Error())

		return dto.BookingResponse{}, err
	}

	res = dto.BookingResponse{}.FromModel(booking)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, req dto.UpdateBookingRequest) (res dto.BookingResponse, err error) {
	if !req.HasChanges() {
		s.logger.Error(identifier, "update - no fields to update")

		return res, errNoChanges
	}

	booking, err := s.repo.Update(ctx, req.ID.Int64(), func(b *repository.Booking) error {
		return applyUpdate(b, req)
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			s.logger.Warn(identifier, "update - booking not found with ID: "+strconv.FormatInt(req.ID.Int64(), 10))

			return res, errNotFound
		case errors.Is(err, repository.ErrSlotTaken):
			s.logger.Warn(identifier, "update - slot taken for booking: "+strconv.FormatInt(req.ID.Int64(), 10))

			return res, errSlotTaken
		}

		s.logger.Error(identifier, "update - error updating booking: "+err.Error())

		return res, err
	}

	res = dto.BookingResponse{}.FromModel(booking)

	s.invalidate(ctx)
	s.publish(ctx, constant.EventBookingUpdated, res.ID, &res)

	return res, nil
}

// applyUpdate merges the provided fields and recomputes the price so it always
// matches time, duration and court type.
func applyUpdate(b *repository.Booking, req dto.UpdateBookingRequest) error {
	if req.Name != nil {
		b.Name = *req.Name
	}

	if req.Phone != nil {
		b.Phone = *req.Phone
	}

	if req.Date != nil {
		b.Date = *req.Date
	}

	if req.Time != nil {
		b.Time = *req.Time
	}

	if req.Duration != nil {
		b.Duration = req.Duration.Int()
	}

	if req.CourtType != nil {
		b.CourtType = *req.CourtType
	}

	if req.Status != nil {
		b.Status = *req.Status
	}

	courtType, err := pricing.NormalizeCourtType(b.CourtType)
	if err != nil {
		return failure.BadRequest(err)
	}

	b.CourtType = courtType

	price, err := pricing.ComputePrice(b.Time, b.Duration, b.CourtType)
	if err != nil {
		return failure.BadRequest(err)
	}

	b.Price = price

	return nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn(identifier, "delete - booking not found with ID: "+strconv.FormatInt(id, 10))

			return errNotFound
		}

		s.logger.Error(identifier, "delete - error deleting booking: "+err.Error())

		return err
	}

	s.invalidate(ctx)
	s.publish(ctx, constant.EventBookingDeleted, id, nil)

	return nil
}

func (s *bookingService) GetAvailability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	courtType, err := pricing.NormalizeCourtType(req.CourtType)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	duration := req.Duration
	if duration == 0 {
		duration = pricing.MinDuration
	}

	keyArgs := map[string]string{}
	keyArgs["date"] = req.Date
	keyArgs["court_type"] = courtType
	keyArgs["duration"] = strconv.Itoa(duration)
	cacheKey := helper.BuildCacheKey(cacheAvailabilityKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.AvailabilityResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil && cacheRes.Date == req.Date {
		s.logger.Debug(identifier, "availability - cache hit for key: "+cacheKey)

		return cacheRes, nil
	}

	bookings, err := s.repo.List(ctx, repository.Filter{Date: req.Date, CourtType: courtType})
	if err != nil {
		s.logger.Error(identifier, "availability - error listing bookings: "+err.Error())

		return res, err
	}

	reservations := make([]pricing.Reservation, 0, len(bookings))
	for _, b := range bookings {
		if b.Active() {
			reservations = append(reservations, b.Reservation())
		}
	}

	res = dto.AvailabilityResponse{
		Date:           req.Date,
		CourtType:      courtType,
		Duration:       duration,
		OccupiedSlots:  pricing.OccupiedSlots(reservations),
		AvailableTimes: pricing.AvailableStartTimes(duration, reservations),
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *bookingService) GetQuote(_ context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	courtType, err := pricing.NormalizeCourtType(req.CourtType)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	rate, err := pricing.HourlyRate(req.Time, courtType)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	price, err := pricing.ComputePrice(req.Time, req.Duration, courtType)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	return dto.QuoteResponse{
		Time:      req.Time,
		Duration:  req.Duration,
		CourtType: courtType,
		Rate:      rate,
		Price:     price,
	}, nil
}

func (s *bookingService) GetStats(ctx context.Context) (res dto.StatsResponse, err error) {
	today := s.today()
	cacheKey := helper.BuildCacheKey(cacheStatsKey, today)

	var cacheRes dto.StatsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil && cacheRes.Date == today {
		s.logger.Debug(identifier, "stats - cache hit for key: "+cacheKey)

		return cacheRes, nil
	}

	bookings, err := s.repo.List(ctx, repository.Filter{})
	if err != nil {
		s.logger.Error(identifier, "stats - error listing bookings: "+err.Error())

		return res, err
	}

	res = dto.StatsResponse{
		Date:          today,
		TotalBookings: len(bookings),
		ByStatus: map[string]int{
			constant.BookingStatusPending:   0,
			constant.BookingStatusConfirmed: 0,
			constant.BookingStatusCancelled: 0,
		},
		ByCourtType: map[string]int{},
	}

	for _, court := range pricing.CourtTypes() {
		res.ByCourtType[court] = 0
	}

	for _, b := range bookings {
		res.ByStatus[b.Status]++
		res.ByCourtType[b.CourtType]++

		if b.Active() && b.Date >= today {
			res.UpcomingBookings++
		}

		if b.Status == constant.BookingStatusConfirmed {
			res.ConfirmedRevenue += b.Price
		}
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *bookingService) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.Duration); err != nil {
		s.logger.Error(identifier, "failed to save cache for key "+key+": "+err.Error())
	}
}

// invalidate runs before the mutation returns so the next read sees the write.
func (s *bookingService) invalidate(ctx context.Context) {
	if err := s.cache.Clear(context.WithoutCancel(ctx), helper.BuildCacheKey(cacheBookingsKey, "*")); err != nil {
		s.logger.Error(identifier, "error clearing bookings cache: "+err.Error())
	}
}

func (s *bookingService) publish(ctx context.Context, event string, id int64, booking *dto.BookingResponse) {
	payload := dto.BookingEvent{
		Event:      event,
		ID:         id,
		Booking:    booking,
		OccurredAt: helper.NowInAppTimezone().Format(constant.FullDateFormat),
	}

	if err := s.publisher.PublishJSON(context.WithoutCancel(ctx), event, payload); err != nil {
		s.logger.Error(identifier, "failed to publish "+event+": "+err.Error())
	}
}
