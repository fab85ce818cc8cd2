package weather

import "fmt"

// Error represents a forecast fetch or decode failure. The pipeline treats
// any weather error as fatal: an itinerary cannot be generated without the
// forecast.
type Error struct {
	City    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("weather fetch error for %s: %s: %v", e.City, e.Message, e.Cause)
	}
	return fmt.Sprintf("weather fetch error for %s: %s", e.City, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
