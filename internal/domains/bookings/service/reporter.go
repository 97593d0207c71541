package service

import (
	"context"
	"fmt"

	"github.com/savioruz/futsal/pkg/constant"
	"github.com/savioruz/futsal/pkg/logger"
)

// SummaryReporter logs the booking stats; it runs from the daily cron job.
type SummaryReporter struct {
	service BookingService
	logger  logger.Interface
}

func NewSummaryReporter(s BookingService, l logger.Interface) *SummaryReporter {
	return &SummaryReporter{service: s, logger: l}
}

func (r *SummaryReporter) Report(ctx context.Context) error {
	stats, err := r.service.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}

	r.logger.Info(identifier, fmt.Sprintf(
		"daily summary %s - total: %d, upcoming: %d, pending: %d, confirmed: %d, cancelled: %d, confirmed revenue: %d",
		stats.Date,
		stats.TotalBookings,
		stats.UpcomingBookings,
		stats.ByStatus[constant.BookingStatusPending],
		stats.ByStatus[constant.BookingStatusConfirmed],
		stats.ByStatus[constant.BookingStatusCancelled],
		stats.ConfirmedRevenue,
	))

	return nil
}
