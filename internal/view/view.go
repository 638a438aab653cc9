package view

import (
	"time"

	"github.com/koldex/weatherview/internal/forecast"
	"github.com/koldex/weatherview/internal/locale"
)

// Entry is one display-ready line of the weather view.
type Entry struct {
	Label       string    `json:"label"`
	Time        time.Time `json:"time"`
	Temperature float64   `json:"temperatureC"`
	Humidity    int       `json:"humidityPercent"`
	WindSpeed   float64   `json:"windSpeedMs"`
	Description string    `json:"description"`
}

// LocalizedView is the assembled forecast with condition text translated,
// ready for the table renderer and the HTTP API.
type LocalizedView struct {
	City      string    `json:"city"`
	FetchedAt time.Time `json:"fetchedAt"`
	Current   Entry     `json:"current"`
	Rows      []Entry   `json:"rows"`
}

// Localize turns an assembled View into its display form.
func Localize(city string, v forecast.View, fetchedAt time.Time) LocalizedView {
	out := LocalizedView{
		City:      city,
		FetchedAt: fetchedAt,
		Current:   toEntry(forecast.LabelNow, v.Current),
		Rows:      make([]Entry, 0, len(v.Rows)),
	}
	for _, row := range v.Rows {
		out.Rows = append(out.Rows, toEntry(row.Label, row.Reading))
	}
	return out
}

func toEntry(label string, r forecast.Reading) Entry {
	return Entry{
		Label:       label,
		Time:        r.Timestamp,
		Temperature: r.Temperature,
		Humidity:    r.Humidity,
		WindSpeed:   r.WindSpeed,
		Description: locale.Translate(r.Condition),
	}
}
