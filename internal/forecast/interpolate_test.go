package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func sampleSeries() Series {
	return Series{
		{Timestamp: t0, Temperature: 10, Humidity: 50, WindSpeed: 2.0, Condition: "clear sky"},
		{Timestamp: t0.Add(3 * time.Hour), Temperature: 16, Humidity: 60, WindSpeed: 3.0, Condition: "rain"},
		{Timestamp: t0.Add(6 * time.Hour), Temperature: 12, Humidity: 80, WindSpeed: 5.5, Condition: "rain"},
	}
}

func TestInterpolateEmptySeries(t *testing.T) {
	_, ok := Interpolate(nil, t0)
	assert.False(t, ok)

	_, ok = Interpolate(Series{}, t0.Add(time.Hour))
	assert.False(t, ok)
}

func TestInterpolateIdentityAtSamplePoints(t *testing.T) {
	series := sampleSeries()
	for _, want := range series {
		got, ok := Interpolate(series, want.Timestamp)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestInterpolateClampsToSeriesEnds(t *testing.T) {
	series := sampleSeries()

	got, ok := Interpolate(series, t0.Add(-2*time.Hour))
	require.True(t, ok)
	assert.Equal(t, series[0], got, "target before first sample returns first sample unchanged")

	got, ok = Interpolate(series, t0.Add(24*time.Hour))
	require.True(t, ok)
	assert.Equal(t, series[len(series)-1], got, "target past last sample returns last sample unchanged")
}

func TestInterpolateLinearBlend(t *testing.T) {
	series := sampleSeries()

	got, ok := Interpolate(series, t0.Add(time.Hour))
	require.True(t, ok)

	assert.Equal(t, t0.Add(time.Hour), got.Timestamp)
	assert.InDelta(t, 12.0, got.Temperature, 1e-9)
	assert.InDelta(t, 2.3333, got.WindSpeed, 1e-4)
	assert.Equal(t, 53, got.Humidity)
	assert.Equal(t, "clear sky", got.Condition, "factor below one half keeps the earlier condition")
}

func TestInterpolateTemperatureStaysBetweenBounds(t *testing.T) {
	series := sampleSeries()
	for target := t0.Add(time.Minute); target.Before(t0.Add(3 * time.Hour)); target = target.Add(17 * time.Minute) {
		got, ok := Interpolate(series, target)
		require.True(t, ok)
		assert.Greater(t, got.Temperature, 10.0)
		assert.Less(t, got.Temperature, 16.0)
	}
}

func TestInterpolateHumidityTruncates(t *testing.T) {
	series := Series{
		{Timestamp: t0, Humidity: 60},
		{Timestamp: t0.Add(100 * time.Minute), Humidity: 61},
	}

	// factor 0.99: the blend lands at 60.99 and must truncate, not round.
	got, ok := Interpolate(series, t0.Add(99*time.Minute))
	require.True(t, ok)
	assert.Equal(t, 60, got.Humidity)
}

func TestInterpolateConditionTieGoesToLater(t *testing.T) {
	series := Series{
		{Timestamp: t0, Condition: "clear sky"},
		{Timestamp: t0.Add(2 * time.Hour), Condition: "rain"},
	}

	got, ok := Interpolate(series, t0.Add(time.Hour))
	require.True(t, ok)
	assert.Equal(t, "rain", got.Condition, "factor exactly one half takes the later condition")

	got, ok = Interpolate(series, t0.Add(time.Hour-time.Second))
	require.True(t, ok)
	assert.Equal(t, "clear sky", got.Condition)
}

func TestInterpolateIgnoresNominalStep(t *testing.T) {
	// Uneven spacing: the engine locates samples by time, not index.
	series := Series{
		{Timestamp: t0, Temperature: 0},
		{Timestamp: t0.Add(30 * time.Minute), Temperature: 10},
		{Timestamp: t0.Add(8 * time.Hour), Temperature: 20},
	}

	got, ok := Interpolate(series, t0.Add(15*time.Minute))
	require.True(t, ok)
	assert.InDelta(t, 5.0, got.Temperature, 1e-9)
}
