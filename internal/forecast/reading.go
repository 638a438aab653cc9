package forecast

import (
	"time"
)

// Reading is one normalized weather sample at a point in time.
// Values are metric: temperature in Celsius, wind speed in m/s.
// A Reading is never mutated after construction.
type Reading struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperatureC"`
	Humidity    int       `json:"humidityPercent"`
	WindSpeed   float64   `json:"windSpeedMs"`

	// Condition is the raw English description from the provider
	// (e.g. "clear sky"); translation happens at render time.
	Condition string `json:"condition"`
}

// Series is one forecast response: Readings ordered ascending by Timestamp,
// nominally at 3-hour steps. Callers must supply an ascending-sorted series;
// nothing here sorts. Samples are located by time comparison, never by index
// arithmetic, so gaps and irregular steps are tolerated.
type Series []Reading
