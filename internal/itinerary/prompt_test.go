package itinerary

import (
	"testing"

	"github.com/jonathan/travel-planner/internal/types"
	"github.com/stretchr/testify/assert"
)

func testPrefs() types.TripPreferences {
	return types.TripPreferences{
		Origin:        "JFK",
		Destination:   "Tokyo",
		MaxPrice:      "1000",
		DepartureDate: "2025-06-14",
		Duration:      "weekend-getaway-(1-3-days)",
	}
}

func TestBuildPrompt_StatesTripParameters(t *testing.T) {
	est := types.CrowdEstimate{CrowdLevel: types.CrowdHigh, DurationDays: 3}
	prompt := BuildPrompt(testPrefs(), testWeatherDays(), est)

	assert.Contains(t, prompt, "from JFK to Tokyo")
	assert.Contains(t, prompt, "budget of 1000 dollars")
	assert.Contains(t, prompt, "departing on 2025-06-14")
	assert.Contains(t, prompt, "weekend-getaway-(1-3-days) (3 days)")
}

func TestBuildPrompt_EnumeratesWeatherDays(t *testing.T) {
	est := types.CrowdEstimate{CrowdLevel: types.CrowdHigh, DurationDays: 3}
	prompt := BuildPrompt(testPrefs(), testWeatherDays(), est)

	assert.Contains(t, prompt, "2025-06-14: 72°F, Clear, 0% rain; 2025-06-15: 81°F, Rain, 60% rain")
}

func TestBuildPrompt_StatesConstraintsAndCrowdLevel(t *testing.T) {
	est := types.CrowdEstimate{CrowdLevel: types.CrowdHigh, DurationDays: 3}
	prompt := BuildPrompt(testPrefs(), testWeatherDays(), est)

	assert.Contains(t, prompt, "Avoid outdoor activities if rain probability > 50% or temperature < 32°F or > 90°F")
	assert.Contains(t, prompt, "Crowd levels: high")
}

func TestBuildPrompt_SpellsOutTargetSchema(t *testing.T) {
	est := types.CrowdEstimate{CrowdLevel: types.CrowdModerate, DurationDays: 7}
	prompt := BuildPrompt(testPrefs(), nil, est)

	// Field names here are a contract with the parser.
	for _, field := range []string{
		`"destination"`, `"startDate"`, `"durationDays"`, `"totalCost"`,
		`"crowdLevel"`, `"dailyPlans"`, `"day"`, `"date"`, `"weather"`,
		`"temperature"`, `"condition"`, `"rainProbability"`, `"activities"`,
		`"time"`, `"description"`, `"location"`, `"cost"`,
	} {
		assert.Contains(t, prompt, field)
	}
}
