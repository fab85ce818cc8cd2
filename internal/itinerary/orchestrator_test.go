package itinerary

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/travel-planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWeather records calls and returns canned forecasts.
type fakeWeather struct {
	calls    int
	lastCity string
	lastDays int
	result   []types.WeatherDay
	err      error
}

func (f *fakeWeather) Forecast(_ context.Context, city, _ string, days int) ([]types.WeatherDay, error) {
	f.calls++
	f.lastCity = city
	f.lastDays = days
	return f.result, f.err
}

// fakeModel records calls and returns canned text.
type fakeModel struct {
	calls      int
	lastPrompt string
	result     string
	err        error
}

func (f *fakeModel) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.result, f.err
}

func (f *fakeModel) Close() error { return nil }

func TestGenerate_MissingFieldFailsBeforeAnyNetworkCall(t *testing.T) {
	weather := &fakeWeather{}
	model := &fakeModel{}
	orch := NewOrchestrator(weather, model)

	prefs := testPrefs()
	prefs.MaxPrice = ""

	_, err := orch.Generate(context.Background(), prefs)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, weather.calls)
	assert.Equal(t, 0, model.calls)
}

func TestGenerate_WeatherFailureAbortsBeforeModel(t *testing.T) {
	weather := &fakeWeather{err: errors.New("connection refused")}
	model := &fakeModel{}
	orch := NewOrchestrator(weather, model)

	_, err := orch.Generate(context.Background(), testPrefs())

	var werr *WeatherUnavailableError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, 1, weather.calls)
	assert.Equal(t, 0, model.calls)
}

func TestGenerate_ModelErrorPropagates(t *testing.T) {
	weather := &fakeWeather{result: testWeatherDays()}
	model := &fakeModel{err: errors.New("backend overloaded")}
	orch := NewOrchestrator(weather, model)

	_, err := orch.Generate(context.Background(), testPrefs())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend overloaded")
}

func TestGenerate_EndToEndWeekendGetaway(t *testing.T) {
	// 2025-06-14 is a Saturday: crowd level high, three days of weather.
	weather := &fakeWeather{result: testWeatherDays()}
	model := &fakeModel{result: "```json\n{\"destination\":\"Tokyo\",\"dailyPlans\":[{\"day\":1},{\"day\":2}]}\n```"}
	orch := NewOrchestrator(weather, model)

	result, err := orch.Generate(context.Background(), testPrefs())
	require.NoError(t, err)

	assert.Equal(t, 1, weather.calls)
	assert.Equal(t, "Tokyo", weather.lastCity)
	assert.Equal(t, 3, weather.lastDays)

	require.Equal(t, 1, model.calls)
	assert.True(t, strings.Contains(model.lastPrompt, "Crowd levels: high"))

	require.True(t, result.IsStructured())
	assert.Equal(t, "Tokyo", result.Structured.Destination)
	assert.Equal(t, types.CrowdHigh, result.Structured.CrowdLevel)
	require.NotNil(t, result.Structured.DailyPlans[0].Weather)
	assert.Equal(t, "2025-06-14", result.Structured.DailyPlans[0].Weather.Date)
}

func TestGenerate_DegradedParseIsNotAnError(t *testing.T) {
	weather := &fakeWeather{result: testWeatherDays()}
	model := &fakeModel{result: "I'd be happy to plan your trip! First, tell me..."}
	orch := NewOrchestrator(weather, model)

	result, err := orch.Generate(context.Background(), testPrefs())
	require.NoError(t, err)
	assert.False(t, result.IsStructured())
	assert.Equal(t, model.result, result.RawText)
}
