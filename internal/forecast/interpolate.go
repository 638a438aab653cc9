package forecast

import (
	"time"
)

// Interpolate answers "what is the weather at target" for an arbitrary instant
// by linear interpolation between the two samples bounding it. The second
// return value is false only when the series is empty.
//
// Rules:
//   - A sample whose timestamp equals target is returned unchanged.
//   - A target outside the series range degrades to the nearest end sample.
//   - Temperature and wind speed blend linearly; humidity blends linearly and
//     is then truncated toward zero, not rounded.
//   - Condition is never blended: the temporally nearer sample wins, and a
//     target exactly halfway takes the later sample's condition.
func Interpolate(series Series, target time.Time) (Reading, bool) {
	if len(series) == 0 {
		return Reading{}, false
	}

	var before, after *Reading
	for i := range series {
		r := &series[i]
		if !r.Timestamp.After(target) {
			before = r
			continue
		}
		after = r
		break
	}

	switch {
	case before == nil:
		// Target precedes the whole series.
		return *after, true
	case after == nil:
		// Target is at or past the last sample.
		return *before, true
	case before.Timestamp.Equal(target):
		return *before, true
	}

	span := after.Timestamp.Sub(before.Timestamp)
	factor := float64(target.Sub(before.Timestamp)) / float64(span)

	blended := Reading{
		Timestamp:   target,
		Temperature: before.Temperature + (after.Temperature-before.Temperature)*factor,
		WindSpeed:   before.WindSpeed + (after.WindSpeed-before.WindSpeed)*factor,
		Humidity:    int(float64(before.Humidity) + float64(after.Humidity-before.Humidity)*factor),
	}
	if factor < 0.5 {
		blended.Condition = before.Condition
	} else {
		blended.Condition = after.Condition
	}
	return blended, true
}
