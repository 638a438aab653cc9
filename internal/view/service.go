package view

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/koldex/weatherview/internal/forecast"
)

// Fetcher is the remote-weather collaborator: one live snapshot plus the
// multi-day 3-hour-step series.
type Fetcher interface {
	Current(ctx context.Context) (forecast.Reading, error)
	Forecast(ctx context.Context) (forecast.Series, error)
}

// Sink receives each freshly built view. The store's holder implements it.
type Sink interface {
	Set(LocalizedView)
}

// Service runs one fetch cycle: current + forecast fetched concurrently,
// assembled into the time-anchored view, localized, and published to the
// sink. Each cycle works on its own freshly built series; nothing is shared
// across cycles.
type Service struct {
	fetcher   Fetcher
	assembler *forecast.Assembler
	sink      Sink
	city      string
	log       zerolog.Logger
}

// NewService creates a Service.
func NewService(fetcher Fetcher, assembler *forecast.Assembler, sink Sink, city string, log zerolog.Logger) *Service {
	return &Service{
		fetcher:   fetcher,
		assembler: assembler,
		sink:      sink,
		city:      city,
		log:       log.With().Str("component", "view").Logger(),
	}
}

// Refresh fetches, assembles and publishes a new view. The current snapshot
// is required; a failed forecast fetch degrades to a view with no rows
// rather than failing the cycle.
func (s *Service) Refresh(ctx context.Context) (LocalizedView, error) {
	var (
		wg          sync.WaitGroup
		current     forecast.Reading
		currentErr  error
		series      forecast.Series
		forecastErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		current, currentErr = s.fetcher.Current(ctx)
	}()
	go func() {
		defer wg.Done()
		series, forecastErr = s.fetcher.Forecast(ctx)
	}()
	wg.Wait()

	if currentErr != nil {
		return LocalizedView{}, fmt.Errorf("refresh: %w", currentErr)
	}
	if forecastErr != nil {
		s.log.Warn().Err(forecastErr).Msg("forecast fetch failed, rendering current conditions only")
		series = nil
	}

	assembled := s.assembler.Assemble(current, series)
	localized := Localize(s.city, assembled, s.assembler.Now())

	if s.sink != nil {
		s.sink.Set(localized)
	}
	s.log.Info().
		Str("city", s.city).
		Int("rows", len(localized.Rows)).
		Msg("view refreshed")
	return localized, nil
}
