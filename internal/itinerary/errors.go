package itinerary

import "fmt"

// ValidationError indicates the caller supplied incomplete trip
// preferences. No network activity happens before this check.
type ValidationError struct {
	Cause error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("missing required preferences: %v", e.Cause)
	}
	return "missing required preferences"
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// WeatherUnavailableError indicates the forecast could not be fetched.
// The pipeline aborts rather than generate a weather-blind itinerary.
type WeatherUnavailableError struct {
	Cause error
}

func (e *WeatherUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("weather unavailable: %v", e.Cause)
	}
	return "weather unavailable"
}

func (e *WeatherUnavailableError) Unwrap() error {
	return e.Cause
}
