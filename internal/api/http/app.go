package httpapi

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/i474232898/weather-emissions-dashboard/internal/emissions"
	"github.com/i474232898/weather-emissions-dashboard/internal/store"
	"github.com/i474232898/weather-emissions-dashboard/internal/translate"
	"github.com/i474232898/weather-emissions-dashboard/internal/weather"
)

// NewApp builds the Fiber app with the central error handler, global
// middleware and the health endpoint.
func NewApp(name string, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               name,
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			if code >= fiber.StatusInternalServerError {
				log.Error("request failed", "method", c.Method(), "path", c.Path(), "status", code, "error", err)
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": name,
		})
	})

	return app
}

// statusFor maps domain errors to HTTP status codes. fallback applies to
// anything unrecognized.
func statusFor(err error, fallback int) int {
	switch {
	case errors.Is(err, weather.ErrInvalidQuery),
		errors.Is(err, translate.ErrMissingParameters):
		return fiber.StatusBadRequest
	case errors.Is(err, weather.ErrLocationNotFound),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, emissions.ErrUnknownMake):
		return fiber.StatusNotFound
	case errors.Is(err, weather.ErrProviderFailure),
		errors.Is(err, weather.ErrMalformedProviderResponse),
		errors.Is(err, translate.ErrTranslationFailed):
		return fiber.StatusBadGateway
	default:
		return fallback
	}
}

func toHTTPError(err error, fallback int) error {
	return fiber.NewError(statusFor(err, fallback), err.Error())
}
