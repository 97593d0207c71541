package service

import (
	"context"

	"github.com/savioruz/futsal/internal/domains/bookings/pricing"
	"github.com/savioruz/futsal/internal/domains/courts/dto"
	"github.com/savioruz/futsal/pkg/failure"
	"github.com/savioruz/futsal/pkg/logger"
)

type CourtService interface {
	GetAll(ctx context.Context) (dto.GetCourtsResponse, error)
	Get(ctx context.Context, courtType string) (dto.CourtResponse, error)
}

type courtService struct {
	logger logger.Interface
}

func New(l logger.Interface) CourtService {
	return &courtService{
		logger: l,
	}
}

const identifier = "service - court - %s"

func (s *courtService) GetAll(ctx context.Context) (res dto.GetCourtsResponse, err error) {
	res.Courts = make([]dto.CourtResponse, 0, len(pricing.CourtTypes()))

	for _, courtType := range pricing.CourtTypes() {
		court, err := s.Get(ctx, courtType)
		if err != nil {
			return res, err
		}

		res.Courts = append(res.Courts, court)
	}

	res.Slots = pricing.AllowedSlots()
	res.MinDuration = pricing.MinDuration
	res.MaxDuration = pricing.MaxDuration

	return res, nil
}

func (s *courtService) Get(_ context.Context, courtType string) (dto.CourtResponse, error) {
	rate, err := pricing.RateFor(courtType)
	if err != nil {
		s.logger.Warn(identifier, "get - unknown court type: "+courtType)

		return dto.CourtResponse{}, failure.NotFound("court type not found")
	}

	return dto.CourtResponse{}.FromRate(courtType, rate), nil
}
