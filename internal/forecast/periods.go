package forecast

import (
	"time"
)

// Local anchor hours for the named periods of the current day.
const (
	AfternoonHour = 15
	EveningHour   = 20
)

// Hour-of-day buckets used when classifying tomorrow's samples.
const (
	morningBucketStart   = 6
	afternoonBucketStart = 12
	afternoonBucketEnd   = 18
)

// maxAnchorLead caps how far ahead a same-day anchor may be before we stop
// trusting interpolation for it.
const maxAnchorLead = 12 * time.Hour

// AtOffset synthesizes the reading at now plus the given offset.
// Used for the near-term "+1h / +2h / +3h" rows.
func AtOffset(series Series, offset time.Duration, now time.Time) (Reading, bool) {
	return Interpolate(series, now.Add(offset))
}

// AtTodayAnchor synthesizes the reading for today at the given local hour
// (e.g. AfternoonHour, EveningHour). The anchor is resolved in now's
// location. No reading is produced when the anchor has already passed, or
// when it is more than 12 hours away; the two gates are independent.
func AtTodayAnchor(series Series, hour int, now time.Time) (Reading, bool) {
	anchor := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !anchor.After(now) {
		return Reading{}, false
	}
	if anchor.Sub(now) > maxAnchorLead {
		return Reading{}, false
	}
	return Interpolate(series, anchor)
}

// TomorrowOutlook carries the representative raw samples picked for
// tomorrow's morning and afternoon.
type TomorrowOutlook struct {
	Morning      Reading
	HasMorning   bool
	Afternoon    Reading
	HasAfternoon bool
}

// TomorrowSamples scans the series in order and picks actual samples for
// tomorrow, relative to now in local time: the first sample with local hour
// in [6,12) becomes the morning, the first with local hour in [12,18) the
// afternoon. No interpolation; first match wins per bucket, and the scan
// stops once both buckets are filled.
func TomorrowSamples(series Series, now time.Time) TomorrowOutlook {
	loc := now.Location()
	y, m, d := now.AddDate(0, 0, 1).Date()

	var out TomorrowOutlook
	for _, r := range series {
		local := r.Timestamp.In(loc)
		ry, rm, rd := local.Date()
		if ry != y || rm != m || rd != d {
			continue
		}
		switch h := local.Hour(); {
		case h >= morningBucketStart && h < afternoonBucketStart:
			if !out.HasMorning {
				out.Morning = r
				out.HasMorning = true
			}
		case h >= afternoonBucketStart && h < afternoonBucketEnd:
			if !out.HasAfternoon {
				out.Afternoon = r
				out.HasAfternoon = true
			}
		}
		if out.HasMorning && out.HasAfternoon {
			break
		}
	}
	return out
}
