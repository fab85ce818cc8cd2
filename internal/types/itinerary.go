// Package types provides type definitions for structured data used throughout the travel planner system.
package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// TripPreferences is the immutable input to the itinerary pipeline,
// constructed entirely by the caller.
type TripPreferences struct {
	Origin        string `json:"origin" validate:"required"`
	Destination   string `json:"destination" validate:"required"`
	MaxPrice      string `json:"maxPrice" validate:"required"`
	DepartureDate string `json:"departureDate" validate:"required"`
	Duration      string `json:"duration" validate:"required"`
}

// Validate checks that all required preference fields are present.
func (p *TripPreferences) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// WeatherDay is one normalized forecast entry per calendar day.
// Temperature is in °F; RainProbability is an approximate 0-100 figure.
type WeatherDay struct {
	Date            string  `json:"date,omitempty"`
	Temperature     float64 `json:"temperature"`
	Condition       string  `json:"condition"`
	RainProbability float64 `json:"rainProbability"`
}

// CrowdEstimate is the crowd heuristic derived from the departure date
// and the coarse duration label.
type CrowdEstimate struct {
	CrowdLevel   string `json:"crowdLevel"`
	DurationDays int    `json:"durationDays"`
}

// Crowd level values produced by the estimator.
const (
	CrowdHigh     = "high"
	CrowdModerate = "moderate"
)

// Activity is a single scheduled item within a daily plan.
type Activity struct {
	Time        string  `json:"time"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Cost        float64 `json:"cost"`
}

// DailyPlan is one day of the generated itinerary. Weather is a pointer so
// that an omitted field can be distinguished from a zero value and
// backfilled from the already-fetched forecast.
type DailyPlan struct {
	Day        int         `json:"day"`
	Date       string      `json:"date"`
	Weather    *WeatherDay `json:"weather,omitempty"`
	Activities []Activity  `json:"activities"`
}

// GeneratedItinerary is the structured multi-day plan produced by the
// generative model and repaired by the parser.
type GeneratedItinerary struct {
	Destination  string      `json:"destination"`
	StartDate    string      `json:"startDate"`
	DurationDays int         `json:"durationDays"`
	TotalCost    float64     `json:"totalCost"`
	CrowdLevel   string      `json:"crowdLevel,omitempty"`
	DailyPlans   []DailyPlan `json:"dailyPlans"`
}

// ItineraryResult is a tagged variant: either a structured itinerary or a
// raw-text fallback when the model output was not valid JSON. Exactly one
// of Structured and RawText is set.
type ItineraryResult struct {
	Structured *GeneratedItinerary
	RawText    string

	// SchemaViolations holds advisory schema validation findings for a
	// structured result. A non-empty slice does not invalidate the result;
	// shape drift is pushed to the caller.
	SchemaViolations []string
}

// IsStructured reports whether the result carries a parsed itinerary.
func (r *ItineraryResult) IsStructured() bool {
	return r.Structured != nil
}

// rawFallback is the wire shape of a degraded parse.
type rawFallback struct {
	RawText string `json:"rawText"`
}

// MarshalJSON renders either the structured itinerary or the raw-text
// fallback object, matching what API consumers expect to branch on.
func (r *ItineraryResult) MarshalJSON() ([]byte, error) {
	if r.Structured != nil {
		return json.Marshal(r.Structured)
	}
	return json.Marshal(rawFallback{RawText: r.RawText})
}

// UnmarshalJSON restores the tagged variant from its wire shape.
func (r *ItineraryResult) UnmarshalJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if _, ok := probe["rawText"]; ok && len(probe) == 1 {
		var fb rawFallback
		if err := json.Unmarshal(data, &fb); err != nil {
			return err
		}
		r.RawText = fb.RawText
		r.Structured = nil
		return nil
	}
	var it GeneratedItinerary
	if err := json.Unmarshal(data, &it); err != nil {
		return err
	}
	r.Structured = &it
	return nil
}
