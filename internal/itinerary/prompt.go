// Package itinerary implements the generation pipeline: prompt construction,
// model invocation, response parsing and repair.
package itinerary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/travel-planner/internal/prompts"
	"github.com/jonathan/travel-planner/internal/types"
)

// BuildPrompt composes the generation prompt from trip preferences, the
// normalized forecast and the crowd estimate. The JSON structure spelled
// out in the template is a contract with the parser; field names must not
// drift between the two.
func BuildPrompt(prefs types.TripPreferences, weatherDays []types.WeatherDay, est types.CrowdEstimate) string {
	lines := make([]string, 0, len(weatherDays))
	for _, w := range weatherDays {
		lines = append(lines, fmt.Sprintf("%s: %g°F, %s, %g%% rain",
			w.Date, w.Temperature, w.Condition, w.RainProbability))
	}

	template := prompts.MustGet("itinerary.json", "generate-itinerary")
	return prompts.Format(template, map[string]string{
		"Origin":         prefs.Origin,
		"Destination":    prefs.Destination,
		"MaxPrice":       prefs.MaxPrice,
		"DepartureDate":  prefs.DepartureDate,
		"Duration":       prefs.Duration,
		"DurationDays":   strconv.Itoa(est.DurationDays),
		"WeatherSummary": strings.Join(lines, "; "),
		"CrowdLevel":     est.CrowdLevel,
	})
}
