package server

import (
	"log"
	"net/http"

	"github.com/jonathan/travel-planner/internal/db"
	"github.com/jonathan/travel-planner/internal/server/middleware"
	"golang.org/x/sync/errgroup"
)

// overviewResponse aggregates a user's saved data for the dashboard.
type overviewResponse struct {
	Trips     []db.Trip           `json:"trips"`
	Documents []db.TravelDocument `json:"documents"`
}

// handleOverview fetches the authenticated user's trips and wallet
// documents concurrently.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var overview overviewResponse
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		trips, err := s.db.ListTrips(ctx, userID)
		if err != nil {
			return err
		}
		overview.Trips = trips
		return nil
	})
	g.Go(func() error {
		docs, err := s.db.ListDocuments(ctx, userID)
		if err != nil {
			return err
		}
		overview.Documents = docs
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("[overview] fetch failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load overview")
		return
	}

	if overview.Trips == nil {
		overview.Trips = []db.Trip{}
	}
	if overview.Documents == nil {
		overview.Documents = []db.TravelDocument{}
	}

	s.jsonResponse(w, http.StatusOK, overview)
}
