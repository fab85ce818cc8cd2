package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/travel-planner/internal/db"
	"github.com/jonathan/travel-planner/internal/server/middleware"
	"github.com/jonathan/travel-planner/internal/types"
)

// PDFRenderer renders a saved trip into a PDF document.
type PDFRenderer interface {
	RenderTrip(ctx context.Context, trip *db.Trip) ([]byte, error)
}

// handleCreateTrip saves a trip for the authenticated user.
func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	trip, err := s.db.CreateTrip(r.Context(), userID, req.Destination, req.Duration,
		req.Budget, req.Companions, req.Activities)
	if err != nil {
		log.Printf("[trips] create failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save trip")
		return
	}

	s.jsonResponse(w, http.StatusCreated, trip)
}

// handleListTrips returns the authenticated user's saved trips.
func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	trips, err := s.db.ListTrips(r.Context(), userID)
	if err != nil {
		log.Printf("[trips] list failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list trips")
		return
	}
	if trips == nil {
		trips = []db.Trip{}
	}

	s.jsonResponse(w, http.StatusOK, trips)
}

// handleGetTrip returns a single trip owned by the authenticated user.
func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	trip, ok := s.tripFromRequest(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, trip)
}

// handleDeleteTrip deletes a trip owned by the authenticated user.
func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	tripID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	deleted, err := s.db.DeleteTrip(r.Context(), userID, tripID)
	if err != nil {
		log.Printf("[trips] delete failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete trip")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Trip not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Trip deleted"})
}

// handleTripPDF renders a trip owned by the authenticated user as a PDF.
func (s *Server) handleTripPDF(w http.ResponseWriter, r *http.Request) {
	trip, ok := s.tripFromRequest(w, r)
	if !ok {
		return
	}

	pdfBytes, err := s.pdfRenderer.RenderTrip(r.Context(), trip)
	if err != nil {
		log.Printf("[trips] pdf render failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "trip-"+trip.Destination+".pdf"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfBytes); err != nil {
		log.Printf("[trips] pdf write failed: %v", err)
	}
}

// tripFromRequest resolves the {id} path value to a trip owned by the
// authenticated user, writing the error response on failure.
func (s *Server) tripFromRequest(w http.ResponseWriter, r *http.Request) (*db.Trip, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	tripID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid trip ID")
		return nil, false
	}

	trip, err := s.db.GetTrip(r.Context(), userID, tripID)
	if err != nil {
		log.Printf("[trips] get failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get trip")
		return nil, false
	}
	if trip == nil {
		s.errorResponse(w, http.StatusNotFound, "Trip not found")
		return nil, false
	}

	return trip, true
}
