package owm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/koldex/weatherview/internal/forecast"
)

// Config holds everything the client needs to talk to OpenWeatherMap for one
// configured place. Passed in at construction; the client keeps no other
// state.
type Config struct {
	APIKey  string
	BaseURL string // e.g. "https://api.openweathermap.org/data/2.5"
	City    string
	Country string
}

// Client fetches current weather and the 3-hour-step forecast from
// OpenWeatherMap and normalizes both into forecast Readings.
type Client struct {
	cfg        Config
	httpClient *http.Client
	backoff    BackoffConfig
	currentCB  *gobreaker.CircuitBreaker
	forecastCB *gobreaker.CircuitBreaker
	log        zerolog.Logger
}

// NewClient creates a Client with per-endpoint circuit breakers.
func NewClient(cfg Config, httpClient *http.Client, log zerolog.Logger) *Client {
	breaker := func(name string) *gobreaker.CircuitBreaker {
		return gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		})
	}

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		backoff: BackoffConfig{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
		currentCB:  breaker("owm-current"),
		forecastCB: breaker("owm-forecast"),
		log:        log.With().Str("component", "owm").Logger(),
	}
}

// currentPayload mirrors the fields we use from /weather.
type currentPayload struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// forecastPayload mirrors the fields we use from /forecast. The list arrives
// in ascending 3-hour steps.
type forecastPayload struct {
	List []currentPayload `json:"list"`
}

// Current fetches the live snapshot for the configured place.
func (c *Client) Current(ctx context.Context) (forecast.Reading, error) {
	resp, err := c.get(ctx, "/weather", c.currentCB)
	if err != nil {
		return forecast.Reading{}, fmt.Errorf("fetch current weather: %w", err)
	}
	defer resp.Body.Close()

	var payload currentPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return forecast.Reading{}, fmt.Errorf("decode current weather: %w", err)
	}

	r, ok := toReading(payload)
	if !ok {
		return forecast.Reading{}, fmt.Errorf("current weather payload missing required fields")
	}
	return r, nil
}

// Forecast fetches the multi-day series for the configured place. Entries
// missing their timestamp or condition are skipped rather than failing the
// whole series; callers already tolerate a short series.
func (c *Client) Forecast(ctx context.Context) (forecast.Series, error) {
	resp, err := c.get(ctx, "/forecast", c.forecastCB)
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	defer resp.Body.Close()

	var payload forecastPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode forecast: %w", err)
	}

	series := make(forecast.Series, 0, len(payload.List))
	for _, entry := range payload.List {
		r, ok := toReading(entry)
		if !ok {
			c.log.Warn().Int64("dt", entry.Dt).Msg("skipping partial forecast sample")
			continue
		}
		series = append(series, r)
	}
	return series, nil
}

func (c *Client) get(ctx context.Context, path string, cb *gobreaker.CircuitBreaker) (*http.Response, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("openweathermap api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("appid", c.cfg.APIKey)
		values.Set("units", "metric")

		q := c.cfg.City
		if c.cfg.Country != "" {
			q = fmt.Sprintf("%s,%s", c.cfg.City, c.cfg.Country)
		}
		values.Set("q", q)

		u := fmt.Sprintf("%s%s?%s", c.cfg.BaseURL, path, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	return doRequestWithResilience(ctx, c.httpClient, c.backoff, cb, buildRequest)
}

// toReading normalizes one payload entry. A missing timestamp or condition
// marks the sample as partial.
func toReading(p currentPayload) (forecast.Reading, bool) {
	if p.Dt == 0 || len(p.Weather) == 0 || p.Weather[0].Description == "" {
		return forecast.Reading{}, false
	}
	return forecast.Reading{
		Timestamp:   time.Unix(p.Dt, 0),
		Temperature: p.Main.Temp,
		Humidity:    p.Main.Humidity,
		WindSpeed:   p.Wind.Speed,
		Condition:   p.Weather[0].Description,
	}, true
}
