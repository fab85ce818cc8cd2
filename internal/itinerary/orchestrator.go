package itinerary

import (
	"context"

	"github.com/jonathan/travel-planner/internal/crowd"
	"github.com/jonathan/travel-planner/internal/llm"
	"github.com/jonathan/travel-planner/internal/types"
)

// WeatherFetcher supplies the normalized multi-day forecast for a city.
type WeatherFetcher interface {
	Forecast(ctx context.Context, city, startDate string, days int) ([]types.WeatherDay, error)
}

// Orchestrator runs the generation pipeline as a strictly sequential chain:
// crowd estimate, forecast fetch, prompt construction, model invocation,
// parse and repair. Each request is an independent execution; nothing is
// cached or shared across requests.
type Orchestrator struct {
	weather WeatherFetcher
	model   llm.Client
}

// NewOrchestrator wires the pipeline's collaborators.
func NewOrchestrator(weather WeatherFetcher, model llm.Client) *Orchestrator {
	return &Orchestrator{
		weather: weather,
		model:   model,
	}
}

// Generate produces an itinerary for the given preferences. It fails fast
// on incomplete preferences before any network call, aborts when the
// forecast is unavailable, and propagates auth/generation failures from the
// model client. A model response that is not valid JSON is not an error;
// the result degrades to a raw-text fallback.
func (o *Orchestrator) Generate(ctx context.Context, prefs types.TripPreferences) (*types.ItineraryResult, error) {
	if err := prefs.Validate(); err != nil {
		return nil, &ValidationError{Cause: err}
	}

	est := crowd.Estimate(prefs.DepartureDate, prefs.Duration)

	weatherDays, err := o.weather.Forecast(ctx, prefs.Destination, prefs.DepartureDate, est.DurationDays)
	if err != nil {
		return nil, &WeatherUnavailableError{Cause: err}
	}

	prompt := BuildPrompt(prefs, weatherDays, est)

	raw, err := o.model.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return Parse(raw, weatherDays, est.CrowdLevel), nil
}
