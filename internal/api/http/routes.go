package httpapi

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-emissions-dashboard/internal/common"
	"github.com/i474232898/weather-emissions-dashboard/internal/emissions"
	"github.com/i474232898/weather-emissions-dashboard/internal/translate"
	"github.com/i474232898/weather-emissions-dashboard/internal/weather"
)

var validate = validator.New()

// WeatherService is the part of weather.Service the routes need.
type WeatherService interface {
	FetchDashboard(ctx context.Context, q weather.Query) (weather.Report, error)
	GetLatest(q weather.Query) (weather.Report, error)
	GetRange(q weather.Query, from, to time.Time) ([]weather.Report, error)
}

// PhraseService produces a mood phrase and reports its language.
type PhraseService interface {
	GenerateWithLanguage(ctx context.Context, temp int, countryCode string) (string, string)
}

// Deps are the collaborators behind the API routes.
type Deps struct {
	Weather    WeatherService
	Resolver   weather.LocationResolver
	Translator translate.Translator
	Phrases    PhraseService
	Estimator  *emissions.Estimator
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		q, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		report, err := d.Weather.FetchDashboard(c.UserContext(), q)
		if err != nil {
			return toHTTPError(err, fiber.StatusBadGateway)
		}
		return c.JSON(report)
	})

	v1.Get("/weather/latest", func(c *fiber.Ctx) error {
		q, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		report, err := d.Weather.GetLatest(q)
		if err != nil {
			return toHTTPError(err, fiber.StatusInternalServerError)
		}
		return c.JSON(report)
	})

	v1.Get("/weather/history", func(c *fiber.Ctx) error {
		var req historyQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		q := req.Location.toQuery()
		reports, err := d.Weather.GetRange(q, req.From, req.To)
		if err != nil {
			return toHTTPError(err, fiber.StatusInternalServerError)
		}

		return c.JSON(fiber.Map{
			"query":   q.Key(),
			"from":    req.From,
			"to":      req.To,
			"reports": reports,
		})
	})

	v1.Get("/geolocation", func(c *fiber.Ctx) error {
		req := coordinatesQuery{Lat: c.Query("lat"), Lng: c.Query("lng")}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "lat and lng are required coordinates")
		}

		lat, _ := strconv.ParseFloat(req.Lat, 64)
		lng, _ := strconv.ParseFloat(req.Lng, 64)
		return c.JSON(d.Resolver.Reverse(c.UserContext(), lat, lng))
	})

	v1.Get("/translate", func(c *fiber.Ctx) error {
		req := translateQuery{Text: c.Query("text"), TargetLang: c.Query("targetLang")}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "missing parameters")
		}

		text, err := d.Translator.Translate(c.UserContext(), req.Text, req.TargetLang)
		if err != nil {
			return toHTTPError(err, fiber.StatusBadGateway)
		}
		return c.JSON(fiber.Map{"translatedText": text})
	})

	v1.Get("/phrase", func(c *fiber.Ctx) error {
		req := phraseQuery{Temp: c.Query("temp"), Country: strings.ToUpper(strings.TrimSpace(c.Query("country")))}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		temp, err := strconv.ParseFloat(req.Temp, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "temp must be a number")
		}

		text, lang := d.Phrases.GenerateWithLanguage(c.UserContext(), common.Round(temp), req.Country)
		return c.JSON(fiber.Map{"phrase": text, "language": lang})
	})

	v1.Get("/vehicle-makes", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"data":    emissions.Makes(),
		})
	})

	v1.Get("/vehicle-models", func(c *fiber.Ctx) error {
		makeID := c.Query("makeId")
		if makeID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "makeId is required")
		}

		// Unknown makes list no models.
		models, err := emissions.Models(makeID)
		if err != nil && !errors.Is(err, emissions.ErrUnknownMake) {
			return toHTTPError(err, fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{
			"success": true,
			"data":    models,
		})
	})

	v1.Post("/estimates", func(c *fiber.Ctx) error {
		var req emissions.Request
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		estimate := d.Estimator.Estimate(req)
		return c.JSON(fiber.Map{
			"success": true,
			"data":    estimate,
			"badge":   emissions.BadgeFor(estimate.Attributes.CarbonKg),
		})
	})
}

// locationQuery identifies a location by city name or by coordinates.
type locationQuery struct {
	City string `validate:"required_without=Lat"`
	Lat  string `validate:"required_with=Lng,omitempty,latitude"`
	Lng  string `validate:"required_with=Lat,omitempty,longitude"`
}

func (l locationQuery) toQuery() weather.Query {
	q := weather.Query{City: strings.TrimSpace(l.City)}
	if l.Lat != "" && l.Lng != "" {
		lat, errLat := strconv.ParseFloat(l.Lat, 64)
		lng, errLng := strconv.ParseFloat(l.Lng, 64)
		if errLat == nil && errLng == nil {
			q.Lat, q.Lng = &lat, &lng
		}
	}
	return q
}

func parseLocationQuery(c *fiber.Ctx) (weather.Query, error) {
	l := locationQuery{
		City: c.Query("city"),
		Lat:  c.Query("lat"),
		Lng:  c.Query("lng"),
	}
	if err := validate.Struct(l); err != nil {
		return weather.Query{}, err
	}

	q := l.toQuery()
	if err := q.Validate(); err != nil {
		return weather.Query{}, err
	}
	return q, nil
}

type coordinatesQuery struct {
	Lat string `validate:"required,latitude"`
	Lng string `validate:"required,longitude"`
}

type translateQuery struct {
	Text       string `validate:"required"`
	TargetLang string `validate:"required,bcp47_language_tag"`
}

type phraseQuery struct {
	Temp    string `validate:"required,numeric"`
	Country string `validate:"omitempty,iso3166_1_alpha2"`
}

// historyQuery holds query parameters for the history endpoint.
type historyQuery struct {
	Location locationQuery
	From     time.Time `validate:"required"`
	To       time.Time `validate:"required,gtefield=From"`
}

func (h *historyQuery) bind(c *fiber.Ctx) error {
	h.Location = locationQuery{
		City: c.Query("city"),
		Lat:  c.Query("lat"),
		Lng:  c.Query("lng"),
	}

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return errors.New("from and to query parameters are required")
	}

	from, err := parseTime(fromStr)
	if err != nil {
		return err
	}
	to, err := parseTime(toStr)
	if err != nil {
		return err
	}

	h.From = from
	h.To = to
	return nil
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}
