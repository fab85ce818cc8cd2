package server

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonathan/travel-planner/internal/db"
)

// DBClient is the storage interface the server depends on. *db.DB satisfies
// it; tests substitute mocks.
type DBClient interface {
	// Users
	CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)

	// Trips
	CreateTrip(ctx context.Context, userID uuid.UUID, destination, duration, budget, companions string, activities []string) (*db.Trip, error)
	GetTrip(ctx context.Context, userID, tripID uuid.UUID) (*db.Trip, error)
	ListTrips(ctx context.Context, userID uuid.UUID) ([]db.Trip, error)
	DeleteTrip(ctx context.Context, userID, tripID uuid.UUID) (bool, error)

	// Wallet documents
	CreateDocument(ctx context.Context, userID uuid.UUID, docType, number, expiryDate string, details db.DocumentDetails) (*db.TravelDocument, error)
	GetDocument(ctx context.Context, userID, docID uuid.UUID) (*db.TravelDocument, error)
	ListDocuments(ctx context.Context, userID uuid.UUID) ([]db.TravelDocument, error)
	UpdateDocument(ctx context.Context, userID, docID uuid.UUID, docType, number, expiryDate string, details db.DocumentDetails) (*db.TravelDocument, error)
	DeleteDocument(ctx context.Context, userID, docID uuid.UUID) (bool, error)
}
