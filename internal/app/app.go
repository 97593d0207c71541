package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/savioruz/futsal/config"
	"github.com/savioruz/futsal/internal/domains/bookings/repository"
	"github.com/savioruz/futsal/pkg/helper"
)

//go:generate go run github.com/google/wire/cmd/wire

func Run(cfg *config.Config) {
	helper.InitTimezone(cfg.App.Timezone)

	app, err := InitializeApp(cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize application: %v", err))
	}

	defer app.close()

	ctx := context.Background()

	if app.PG != nil {
		if err := app.PG.Ping(ctx); err != nil {
			app.Logger.Fatal(fmt.Errorf("app - Run - postgres.Ping: %w", err))
		}

		if cfg.Pg.AutoMigrate {
			if err := repository.Migrate(ctx, app.PG.Pool); err != nil {
				app.Logger.Fatal(fmt.Errorf("app - Run - repository.Migrate: %w", err))
			}
		}
	}

	if app.Redis != nil {
		if err := app.Redis.Ping(ctx); err != nil {
			app.Logger.Fatal(fmt.Errorf("app - Run - redis.Ping: %w", err))
		}
	}

	scheduler, err := Cron(cfg, app.Reporter, app.Logger)
	if err != nil {
		app.Logger.Fatal(fmt.Errorf("app - Run - Cron: %w", err))
	}

	scheduler.Start()
	defer scheduler.Stop()

	app.HTTPServer.Start()
	app.Logger.Info("app - Run - listening on %s, store: %s", app.HTTPServer.Address(), cfg.Store.Driver)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		app.Logger.Info("app - Run - signal: " + s.String())
	case err = <-app.HTTPServer.Notify():
		app.Logger.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	err = app.HTTPServer.Shutdown()
	if err != nil {
		app.Logger.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}

func (a *Application) close() {
	if err := a.Publisher.Close(); err != nil {
		a.Logger.Error(fmt.Errorf("app - close - publisher: %w", err))
	}

	if a.Redis != nil {
		a.Redis.Close()
	}

	if a.PG != nil {
		a.PG.Close()
	}
}
