package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koldex/weatherview/internal/forecast"
)

type stubFetcher struct {
	current     forecast.Reading
	currentErr  error
	series      forecast.Series
	forecastErr error
}

func (s *stubFetcher) Current(context.Context) (forecast.Reading, error) {
	return s.current, s.currentErr
}

func (s *stubFetcher) Forecast(context.Context) (forecast.Series, error) {
	return s.series, s.forecastErr
}

type captureSink struct {
	views []LocalizedView
}

func (c *captureSink) Set(v LocalizedView) { c.views = append(c.views, v) }

func TestRefreshPublishesView(t *testing.T) {
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
	fetcher := &stubFetcher{
		current: forecast.Reading{Timestamp: now, Temperature: 4, Humidity: 70, WindSpeed: 6, Condition: "rain"},
		series: forecast.Series{
			{Timestamp: now, Temperature: 4, Humidity: 70, WindSpeed: 6, Condition: "rain"},
			{Timestamp: now.Add(3 * time.Hour), Temperature: 6, Humidity: 65, WindSpeed: 5, Condition: "clear sky"},
		},
	}
	sink := &captureSink{}
	svc := NewService(fetcher, forecast.NewAssembler(func() time.Time { return now }), sink, "Helsinki", zerolog.Nop())

	got, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Helsinki", got.City)
	assert.Equal(t, now, got.FetchedAt)
	assert.Equal(t, forecast.LabelNow, got.Current.Label)
	assert.Equal(t, "Sadetta", got.Current.Description, "condition text is localized")
	require.NotEmpty(t, got.Rows)
	assert.Equal(t, forecast.LabelPlus1h, got.Rows[0].Label)

	require.Len(t, sink.views, 1)
	assert.Equal(t, got, sink.views[0])
}

func TestRefreshFailsWithoutCurrent(t *testing.T) {
	fetcher := &stubFetcher{currentErr: errors.New("boom")}
	sink := &captureSink{}
	svc := NewService(fetcher, forecast.NewAssembler(nil), sink, "Helsinki", zerolog.Nop())

	_, err := svc.Refresh(context.Background())
	assert.Error(t, err)
	assert.Empty(t, sink.views, "a failed cycle must not overwrite the last good view")
}

func TestRefreshToleratesForecastFailure(t *testing.T) {
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
	fetcher := &stubFetcher{
		current:     forecast.Reading{Timestamp: now, Temperature: 4, Condition: "mist"},
		forecastErr: errors.New("upstream down"),
	}
	svc := NewService(fetcher, forecast.NewAssembler(func() time.Time { return now }), nil, "Helsinki", zerolog.Nop())

	got, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sumua", got.Current.Description)
	assert.Empty(t, got.Rows)
}
