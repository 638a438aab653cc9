package forecast

import (
	"time"
)

// Row labels as shown to the user. The Finnish period names follow the
// original UI wording.
const (
	LabelNow               = "Nyt"
	LabelPlus1h            = "+1h"
	LabelPlus2h            = "+2h"
	LabelPlus3h            = "+3h"
	LabelAfternoon         = "Iltapäivä"
	LabelEvening           = "Ilta"
	LabelTomorrowMorning   = "Aamu"
	LabelTomorrowAfternoon = "Iltapäivä"
)

// Row is one labeled entry of the assembled view.
type Row struct {
	Label   string
	Reading Reading
}

// View is the complete time-anchored picture built from one fetch cycle:
// the live snapshot plus the near-term and next-day rows that applied at
// assembly time.
type View struct {
	Current Reading
	Rows    []Row
}

// Assembler builds Views from a current reading and a forecast series.
// Now is injected so period selection can be pinned in tests; the zero
// value uses the system clock.
type Assembler struct {
	Now func() time.Time
}

// NewAssembler returns an Assembler using the given clock, or the system
// clock when now is nil.
func NewAssembler(now func() time.Time) *Assembler {
	if now == nil {
		now = time.Now
	}
	return &Assembler{Now: now}
}

// Assemble emits the current reading verbatim, then in order: the +1h/+2h/+3h
// interpolated rows, today's afternoon and evening rows when their anchors
// are still ahead and within range, and tomorrow's morning and afternoon
// sample rows. A row whose selection rule produced nothing is omitted, so an
// empty or short series degrades to fewer rows rather than an error.
func (a *Assembler) Assemble(current Reading, series Series) View {
	now := a.Now()
	view := View{Current: current}

	offsets := []struct {
		label  string
		offset time.Duration
	}{
		{LabelPlus1h, 1 * time.Hour},
		{LabelPlus2h, 2 * time.Hour},
		{LabelPlus3h, 3 * time.Hour},
	}
	for _, o := range offsets {
		if r, ok := AtOffset(series, o.offset, now); ok {
			view.Rows = append(view.Rows, Row{Label: o.label, Reading: r})
		}
	}

	if r, ok := AtTodayAnchor(series, AfternoonHour, now); ok {
		view.Rows = append(view.Rows, Row{Label: LabelAfternoon, Reading: r})
	}
	if r, ok := AtTodayAnchor(series, EveningHour, now); ok {
		view.Rows = append(view.Rows, Row{Label: LabelEvening, Reading: r})
	}

	tomorrow := TomorrowSamples(series, now)
	if tomorrow.HasMorning {
		view.Rows = append(view.Rows, Row{Label: LabelTomorrowMorning, Reading: tomorrow.Morning})
	}
	if tomorrow.HasAfternoon {
		view.Rows = append(view.Rows, Row{Label: LabelTomorrowAfternoon, Reading: tomorrow.Afternoon})
	}
	return view
}
