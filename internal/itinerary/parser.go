package itinerary

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/jonathan/travel-planner/internal/schemas"
	"github.com/jonathan/travel-planner/internal/types"
)

// stripCodeFence removes markdown code block wrappers from model output.
// Models often wrap JSON in ```json ... ``` blocks even when instructed not to.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// Parse turns raw model output into an ItineraryResult. Invalid JSON
// degrades to a raw-text fallback rather than an error; a validly parsed
// object that drifts from the expected shape passes through with advisory
// schema violations attached.
//
// Backfill is additive only: a daily plan missing its weather gets the
// forecast entry at the same index, and a missing top-level crowd level
// gets the computed one. Fields the model did supply are never overwritten.
func Parse(raw string, weatherDays []types.WeatherDay, crowdLevel string) *types.ItineraryResult {
	clean := stripCodeFence(raw)

	var it types.GeneratedItinerary
	if err := json.Unmarshal([]byte(clean), &it); err != nil {
		log.Printf("[itinerary] falling back to raw text: %v", err)
		return &types.ItineraryResult{RawText: raw}
	}

	if it.DailyPlans != nil {
		for i := range it.DailyPlans {
			if it.DailyPlans[i].Weather == nil && i < len(weatherDays) {
				w := weatherDays[i]
				it.DailyPlans[i].Weather = &w
			}
		}
		if it.CrowdLevel == "" {
			it.CrowdLevel = crowdLevel
		}
	}

	return &types.ItineraryResult{
		Structured:       &it,
		SchemaViolations: schemaViolations(&it),
	}
}

// schemaViolations validates the repaired itinerary against the embedded
// schema. Violations are advisory; shape drift is an accepted failure mode
// surfaced to the caller, never a rejection.
func schemaViolations(it *types.GeneratedItinerary) []string {
	doc, err := json.Marshal(it)
	if err != nil {
		return nil
	}

	verr := schemas.ValidateJSONString(schemas.ItinerarySchema(), string(doc))
	if verr == nil {
		return nil
	}

	var ve *schemas.ValidationError
	if errors.As(verr, &ve) {
		return ve.Violations()
	}
	log.Printf("[itinerary] schema validation unavailable: %v", verr)
	return nil
}
