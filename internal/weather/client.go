// Package weather provides the forecast client used by the itinerary pipeline.
// It normalizes a provider's 3-hour samples into one entry per calendar day.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jonathan/travel-planner/internal/types"
)

// DefaultBaseURL is the provider's 5-day/3-hour forecast endpoint.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/forecast"

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 15 * time.Second

// samplesPerDay is the provider's 3-hour sample granularity.
const samplesPerDay = 8

// Options configures the client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches and normalizes multi-day forecasts.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a forecast client for the given provider API key.
func NewClient(apiKey string, opts *Options) *Client {
	if opts == nil {
		opts = &Options{}
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
	}
}

// forecastSample is a single timestamped provider sample.
type forecastSample struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Rain *struct {
		ThreeHour float64 `json:"3h"`
	} `json:"rain,omitempty"`
}

// forecastResponse is the provider's flat sample list.
type forecastResponse struct {
	List []forecastSample `json:"list"`
}

// Forecast fetches the forecast for a city and normalizes it to at most
// `days` entries, one per calendar day starting at startDate (ISO date).
// Samples dated before startDate are dropped; the first chronological
// sample of each remaining day wins. The provider's rolling window may
// yield fewer distinct dates than requested.
func (c *Client) Forecast(ctx context.Context, city, startDate string, days int) ([]types.WeatherDay, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "imperial")
	q.Set("cnt", strconv.Itoa(days*samplesPerDay))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &Error{City: city, Message: "failed to create request", Cause: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{City: city, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &Error{City: city, Message: fmt.Sprintf("provider status %d: %s", resp.StatusCode, string(body))}
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &Error{City: city, Message: "failed to decode forecast response", Cause: err}
	}

	return normalize(payload.List, startDate, days), nil
}

// normalize groups samples by UTC calendar date, keeping the first sample
// per date in encounter order and truncating to the requested day count.
func normalize(samples []forecastSample, startDate string, days int) []types.WeatherDay {
	seen := make(map[string]bool, days)
	result := make([]types.WeatherDay, 0, days)

	for _, s := range samples {
		date := time.Unix(s.Dt, 0).UTC().Format("2006-01-02")
		if date < startDate {
			continue
		}
		if seen[date] {
			continue
		}
		seen[date] = true

		condition := ""
		if len(s.Weather) > 0 {
			condition = s.Weather[0].Main
		}
		rain := 0.0
		if s.Rain != nil {
			// Heuristic conversion of precipitation volume to an
			// approximate probability figure.
			rain = s.Rain.ThreeHour * 10
		}

		result = append(result, types.WeatherDay{
			Date:            date,
			Temperature:     s.Main.Temp,
			Condition:       condition,
			RainProbability: rain,
		})
		if len(result) == days {
			break
		}
	}

	return result
}
