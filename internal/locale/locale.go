// Package locale translates OpenWeatherMap's English condition descriptions
// into Finnish display text.
package locale

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// conditions maps the lowercase English descriptions OWM emits to their
// Finnish display form.
var conditions = map[string]string{
	"clear sky":        "Selkeää",
	"few clouds":       "Melkein selkeää",
	"scattered clouds": "Puolipilvistä",
	"broken clouds":    "Pilvistä",
	"overcast clouds":  "Pilvistä",
	"mist":             "Sumua",
	"fog":              "Sumua",
	"haze":             "Utua",
	"drizzle":          "Tihkusadetta",
	"light rain":       "Kevyttä sadetta",
	"moderate rain":    "Sadetta",
	"heavy rain":       "Rankkasadetta",
	"rain":             "Sadetta",
	"shower rain":      "Sadekuuroja",
	"thunderstorm":     "Ukkosta",
	"light snow":       "Kevyttä lumisadetta",
	"snow":             "Lunta",
	"heavy snow":       "Runsasta lumisadetta",
	"sleet":            "Räntää",
}

var titleCaser = cases.Title(language.English)

// Translate returns the Finnish display text for an OWM condition
// description. Unmapped descriptions fall back to the original text
// title-cased, so new provider wordings still render readably.
func Translate(condition string) string {
	if fi, ok := conditions[strings.ToLower(condition)]; ok {
		return fi
	}
	return titleCaser.String(condition)
}
