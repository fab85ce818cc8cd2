package itinerary

import (
	"testing"

	"github.com/jonathan/travel-planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWeatherDays() []types.WeatherDay {
	return []types.WeatherDay{
		{Date: "2025-06-14", Temperature: 72, Condition: "Clear", RainProbability: 0},
		{Date: "2025-06-15", Temperature: 81, Condition: "Rain", RainProbability: 60},
	}
}

func TestParse_FencedJSONWithBackfill(t *testing.T) {
	raw := "```json\n{\"destination\":\"Paris\",\"dailyPlans\":[{\"day\":1}]}\n```"

	result := Parse(raw, testWeatherDays(), types.CrowdHigh)

	require.True(t, result.IsStructured())
	assert.Equal(t, "Paris", result.Structured.Destination)

	require.Len(t, result.Structured.DailyPlans, 1)
	weather := result.Structured.DailyPlans[0].Weather
	require.NotNil(t, weather)
	assert.Equal(t, "2025-06-14", weather.Date)
	assert.Equal(t, 72.0, weather.Temperature)
}

func TestParse_NonJSONReturnsRawFallback(t *testing.T) {
	raw := "Sorry, I cannot help"

	result := Parse(raw, testWeatherDays(), types.CrowdModerate)

	assert.False(t, result.IsStructured())
	assert.Equal(t, "Sorry, I cannot help", result.RawText)
	assert.Nil(t, result.Structured)
}

func TestParse_BackfillNeverOverwritesModelWeather(t *testing.T) {
	raw := `{"destination":"Paris","dailyPlans":[{"day":1,"weather":{"temperature":55,"condition":"Fog","rainProbability":10}}]}`

	result := Parse(raw, testWeatherDays(), types.CrowdHigh)

	require.True(t, result.IsStructured())
	weather := result.Structured.DailyPlans[0].Weather
	require.NotNil(t, weather)
	assert.Equal(t, 55.0, weather.Temperature)
	assert.Equal(t, "Fog", weather.Condition)
}

func TestParse_CrowdLevelBackfilledWhenAbsent(t *testing.T) {
	raw := `{"destination":"Paris","dailyPlans":[{"day":1}]}`

	result := Parse(raw, testWeatherDays(), types.CrowdHigh)

	require.True(t, result.IsStructured())
	assert.Equal(t, types.CrowdHigh, result.Structured.CrowdLevel)
}

func TestParse_CrowdLevelNotOverwritten(t *testing.T) {
	raw := `{"destination":"Paris","crowdLevel":"moderate","dailyPlans":[{"day":1}]}`

	result := Parse(raw, testWeatherDays(), types.CrowdHigh)

	require.True(t, result.IsStructured())
	assert.Equal(t, types.CrowdModerate, result.Structured.CrowdLevel)
}

func TestParse_NoDailyPlansMeansNoBackfill(t *testing.T) {
	raw := `{"destination":"Paris"}`

	result := Parse(raw, testWeatherDays(), types.CrowdHigh)

	require.True(t, result.IsStructured())
	assert.Empty(t, result.Structured.CrowdLevel)
	assert.Nil(t, result.Structured.DailyPlans)
}

func TestParse_BackfillBeyondForecastLeavesWeatherNil(t *testing.T) {
	// A three-day plan with only two forecast entries: day 3 has nothing
	// to backfill from.
	raw := `{"destination":"Paris","dailyPlans":[{"day":1},{"day":2},{"day":3}]}`

	result := Parse(raw, testWeatherDays(), types.CrowdHigh)

	require.True(t, result.IsStructured())
	require.Len(t, result.Structured.DailyPlans, 3)
	assert.NotNil(t, result.Structured.DailyPlans[0].Weather)
	assert.NotNil(t, result.Structured.DailyPlans[1].Weather)
	assert.Nil(t, result.Structured.DailyPlans[2].Weather)
}

func TestParse_SchemaViolationsAreAdvisory(t *testing.T) {
	// Valid JSON missing required fields still parses and passes through.
	raw := `{"dailyPlans":[{"day":1}]}`

	result := Parse(raw, testWeatherDays(), types.CrowdHigh)

	require.True(t, result.IsStructured())
	assert.NotEmpty(t, result.SchemaViolations)
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.in))
		})
	}
}
