package app

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/savioruz/futsal/config"
	"github.com/savioruz/futsal/pkg/helper"
	"github.com/savioruz/futsal/pkg/logger"
)

type Reporter interface {
	Report(ctx context.Context) error
}

// Cron schedules the daily summary in the app timezone. An empty schedule disables it.
func Cron(cfg *config.Config, r Reporter, l logger.Interface) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds(), cron.WithLocation(helper.NowInAppTimezone().Location()))

	if cfg.Schedule.DailySummary == "" {
		return c, nil
	}

	_, err := c.AddFunc(cfg.Schedule.DailySummary, func() {
		ctx := context.WithoutCancel(context.Background())

		if err := r.Report(ctx); err != nil {
			l.Error("Cron job - DailySummary failed: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("cron: invalid daily summary schedule %q: %w", cfg.Schedule.DailySummary, err)
	}

	return c, nil
}
