package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	httpapi "github.com/koldex/weatherview/internal/api/http"
	"github.com/koldex/weatherview/internal/config"
	"github.com/koldex/weatherview/internal/forecast"
	"github.com/koldex/weatherview/internal/owm"
	"github.com/koldex/weatherview/internal/render"
	"github.com/koldex/weatherview/internal/scheduler"
	"github.com/koldex/weatherview/internal/store"
	"github.com/koldex/weatherview/internal/view"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Shared HTTP client for outbound OpenWeatherMap calls.
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	client := owm.NewClient(owm.Config{
		APIKey:  cfg.OWMAPIKey,
		BaseURL: cfg.OWMBaseURL,
		City:    cfg.City,
		Country: cfg.Country,
	}, httpClient, log)

	holder := store.NewViewHolder()
	assembler := forecast.NewAssembler(nil)
	svc := view.NewService(client, assembler, holder, cfg.City, log)

	// Each refresh also redraws the table on stdout.
	refresh := func(ctx context.Context) error {
		v, err := svc.Refresh(ctx)
		if err != nil {
			return err
		}
		return render.Table(os.Stdout, v)
	}

	sched := scheduler.New(cfg.RefreshInterval, cfg.HTTPTimeout*2, refresh, log)
	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "weatherview",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weatherview",
		})
	})

	httpapi.RegisterRoutes(app, svc, holder, sched)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error().Err(err).Msg("fiber server stopped")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
}
