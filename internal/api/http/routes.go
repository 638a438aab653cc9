package httpapi

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/koldex/weatherview/internal/store"
	"github.com/koldex/weatherview/internal/view"
)

var validate = validator.New()

// Refresher triggers a fetch cycle on demand.
type Refresher interface {
	Refresh(ctx context.Context) (view.LocalizedView, error)
}

// Source serves the latest published view.
type Source interface {
	Latest() (view.LocalizedView, error)
}

// Pauser controls the periodic refresh.
type Pauser interface {
	Pause()
	Resume()
	Paused() bool
}

// viewQuery holds query parameters for the view endpoint.
type viewQuery struct {
	Refresh string `validate:"omitempty,oneof=true false"`
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, refresher Refresher, source Source, pauser Pauser) {
	v1 := app.Group("/api/v1")

	v1.Get("/view", func(c *fiber.Ctx) error {
		q := viewQuery{Refresh: c.Query("refresh")}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if q.Refresh == "true" {
			v, err := refresher.Refresh(c.Context())
			if err != nil {
				return fiber.NewError(fiber.StatusBadGateway, "weather refresh failed")
			}
			return c.JSON(v)
		}

		v, err := source.Latest()
		if err != nil {
			if errors.Is(err, store.ErrNoData) {
				return fiber.NewError(fiber.StatusNotFound, "no weather view available yet")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load weather view")
		}
		return c.JSON(v)
	})

	v1.Post("/refresh/pause", func(c *fiber.Ctx) error {
		pauser.Pause()
		return c.JSON(fiber.Map{"paused": pauser.Paused()})
	})

	v1.Post("/refresh/resume", func(c *fiber.Ctx) error {
		pauser.Resume()
		return c.JSON(fiber.Map{"paused": pauser.Paused()})
	})
}
