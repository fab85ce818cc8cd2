package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/travel-planner/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walletMux(s *Server) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/travel-wallet/documents", s.handleCreateDocument)
	mux.HandleFunc("GET /api/travel-wallet/documents", s.handleListDocuments)
	mux.HandleFunc("GET /api/travel-wallet/documents/{id}", s.handleGetDocument)
	mux.HandleFunc("PUT /api/travel-wallet/documents/{id}", s.handleUpdateDocument)
	mux.HandleFunc("DELETE /api/travel-wallet/documents/{id}", s.handleDeleteDocument)
	return mux
}

func TestHandleCreateDocument_VisaWithEmbassy(t *testing.T) {
	userID := uuid.New()
	mock := &mockDB{
		createDocument: func(_ context.Context, uid uuid.UUID, docType, number, expiryDate string, details db.DocumentDetails) (*db.TravelDocument, error) {
			assert.Equal(t, userID, uid)
			assert.Equal(t, "visa", docType)
			require.NotNil(t, details.Embassy)
			assert.Equal(t, "US Embassy Tokyo", details.Embassy.Name)
			return &db.TravelDocument{
				ID:         uuid.New(),
				UserID:     uid,
				Type:       docType,
				Number:     number,
				ExpiryDate: expiryDate,
				Details:    details,
			}, nil
		},
	}
	s := &Server{db: mock}

	body := `{"type":"visa","number":"V1234567","expiryDate":"2027-03-01","country":"Japan","embassy":{"name":"US Embassy Tokyo"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/travel-wallet/documents", strings.NewReader(body))
	req = setUserIDInContext(req, userID)
	w := httptest.NewRecorder()

	walletMux(s).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var doc db.TravelDocument
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "V1234567", doc.Number)
}

func TestHandleCreateDocument_UnknownType(t *testing.T) {
	s := &Server{db: &mockDB{}}

	body := `{"type":"boarding-pass","number":"123","expiryDate":"2027-03-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/travel-wallet/documents", strings.NewReader(body))
	req = setUserIDInContext(req, uuid.New())
	w := httptest.NewRecorder()

	walletMux(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleUpdateDocument_NotFound(t *testing.T) {
	mock := &mockDB{
		updateDocument: func(_ context.Context, _, _ uuid.UUID, _, _, _ string, _ db.DocumentDetails) (*db.TravelDocument, error) {
			return nil, nil
		},
	}
	s := &Server{db: mock}

	body := `{"type":"passport","number":"P123","expiryDate":"2030-01-01"}`
	req := httptest.NewRequest(http.MethodPut, "/api/travel-wallet/documents/"+uuid.New().String(), strings.NewReader(body))
	req = setUserIDInContext(req, uuid.New())
	w := httptest.NewRecorder()

	walletMux(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleListDocuments_EmptyIsJSONArray(t *testing.T) {
	mock := &mockDB{
		listDocuments: func(_ context.Context, _ uuid.UUID) ([]db.TravelDocument, error) {
			return nil, nil
		},
	}
	s := &Server{db: mock}

	req := httptest.NewRequest(http.MethodGet, "/api/travel-wallet/documents", nil)
	req = setUserIDInContext(req, uuid.New())
	w := httptest.NewRecorder()

	walletMux(s).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestHandleDeleteDocument_NotFound(t *testing.T) {
	mock := &mockDB{
		deleteDocument: func(_ context.Context, _, _ uuid.UUID) (bool, error) {
			return false, nil
		},
	}
	s := &Server{db: mock}

	req := httptest.NewRequest(http.MethodDelete, "/api/travel-wallet/documents/"+uuid.New().String(), nil)
	req = setUserIDInContext(req, uuid.New())
	w := httptest.NewRecorder()

	walletMux(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
