package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/travel-planner/internal/db"
	"github.com/jonathan/travel-planner/internal/server/middleware"
	"github.com/jonathan/travel-planner/internal/types"
)

// detailsFromRequest maps the type-specific request fields onto the stored
// details blob.
func detailsFromRequest(req *types.DocumentRequest) db.DocumentDetails {
	return db.DocumentDetails{
		Country:           req.Country,
		Embassy:           req.Embassy,
		Issuer:            req.Issuer,
		VaccineType:       req.VaccineType,
		DoseDates:         req.DoseDates,
		InsuranceProvider: req.InsuranceProvider,
		PolicyNumber:      req.PolicyNumber,
		CoverageDetails:   req.CoverageDetails,
	}
}

// handleCreateDocument adds a document to the authenticated user's wallet.
func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	doc, err := s.db.CreateDocument(r.Context(), userID, req.Type, req.Number,
		req.ExpiryDate, detailsFromRequest(&req))
	if err != nil {
		log.Printf("[wallet] create failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save document")
		return
	}

	s.jsonResponse(w, http.StatusCreated, doc)
}

// handleListDocuments returns the authenticated user's wallet documents.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	docs, err := s.db.ListDocuments(r.Context(), userID)
	if err != nil {
		log.Printf("[wallet] list failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}
	if docs == nil {
		docs = []db.TravelDocument{}
	}

	s.jsonResponse(w, http.StatusOK, docs)
}

// handleGetDocument returns a single wallet document owned by the
// authenticated user.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	docID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document ID")
		return
	}

	doc, err := s.db.GetDocument(r.Context(), userID, docID)
	if err != nil {
		log.Printf("[wallet] get failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get document")
		return
	}
	if doc == nil {
		s.errorResponse(w, http.StatusNotFound, "Document not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, doc)
}

// handleUpdateDocument replaces a wallet document owned by the
// authenticated user.
func (s *Server) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	docID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document ID")
		return
	}

	var req types.DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	doc, err := s.db.UpdateDocument(r.Context(), userID, docID, req.Type, req.Number,
		req.ExpiryDate, detailsFromRequest(&req))
	if err != nil {
		log.Printf("[wallet] update failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update document")
		return
	}
	if doc == nil {
		s.errorResponse(w, http.StatusNotFound, "Document not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, doc)
}

// handleDeleteDocument removes a wallet document owned by the
// authenticated user.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	docID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document ID")
		return
	}

	deleted, err := s.db.DeleteDocument(r.Context(), userID, docID)
	if err != nil {
		log.Printf("[wallet] delete failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete document")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Document not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Document deleted"})
}
