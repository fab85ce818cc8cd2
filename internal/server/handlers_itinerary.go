package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jonathan/travel-planner/internal/itinerary"
	"github.com/jonathan/travel-planner/internal/llm"
	"github.com/jonathan/travel-planner/internal/types"
)

// ItineraryGenerator runs the generation pipeline for one request.
type ItineraryGenerator interface {
	Generate(ctx context.Context, prefs types.TripPreferences) (*types.ItineraryResult, error)
}

// handleGenerateItinerary runs the full generation pipeline for the posted
// trip preferences.
func (s *Server) handleGenerateItinerary(w http.ResponseWriter, r *http.Request) {
	var prefs types.TripPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]string{
			"message": "Missing required preferences",
		})
		return
	}

	result, err := s.generator.Generate(r.Context(), prefs)
	if err != nil {
		var validationErr *itinerary.ValidationError
		if errors.As(err, &validationErr) {
			s.jsonResponse(w, http.StatusBadRequest, map[string]string{
				"message": "Missing required preferences",
			})
			return
		}

		log.Printf("[itinerary] generation failed: %v", err)

		response := map[string]any{
			"success": false,
			"message": "Failed to generate itinerary",
		}
		// Only the model provider's response body is surfaced to the caller.
		// Other upstream causes (weather, auth) stay in the logs.
		var genErr *llm.GenerationError
		if errors.As(err, &genErr) && genErr.Body != "" {
			response["details"] = genErr.Body
		}

		s.jsonResponse(w, http.StatusInternalServerError, response)
		return
	}

	response := map[string]any{
		"success":   true,
		"itinerary": result,
	}
	if len(result.SchemaViolations) > 0 {
		log.Printf("[itinerary] schema violations: %v", result.SchemaViolations)
		response["schemaViolations"] = result.SchemaViolations
	}

	s.jsonResponse(w, http.StatusOK, response)
}
