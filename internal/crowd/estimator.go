// Package crowd provides the crowd-level heuristic used to shape itinerary prompts.
package crowd

import (
	"time"

	"github.com/jonathan/travel-planner/internal/types"
)

// durationDays maps the coarse duration labels produced by the trip form
// to canonical day counts. Labels must match exactly.
var durationDays = map[string]int{
	"weekend-getaway-(1-3-days)": 3,
	"short-trip-(4-7-days)":      7,
	"medium-trip-(1-2-weeks)":    14,
	"long-trip-(2+-weeks)":       21,
}

// DefaultDurationDays is used when the duration label is unrecognized.
const DefaultDurationDays = 3

// Estimate derives a crowd level and a resolved day count from the
// departure date and duration label. Weekend departures estimate "high",
// weekdays "moderate". Only the departure day is considered, not the full
// trip span. An unparseable date is treated as a weekday.
func Estimate(departureDate, duration string) types.CrowdEstimate {
	level := types.CrowdModerate
	if t, err := time.Parse("2006-01-02", departureDate); err == nil {
		wd := t.UTC().Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			level = types.CrowdHigh
		}
	}

	days, ok := durationDays[duration]
	if !ok {
		days = DefaultDurationDays
	}

	return types.CrowdEstimate{
		CrowdLevel:   level,
		DurationDays: days,
	}
}
