package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/travel-planner/internal/types"
)

// User represents a traveler account row
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Trip represents a saved trip row
type Trip struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Destination string    `json:"destination"`
	Duration    string    `json:"duration"`
	Budget      string    `json:"budget"`
	Companions  string    `json:"companions"`
	Activities  []string  `json:"activities"`
	CreatedAt   time.Time `json:"created_at"`
}

// DocumentDetails holds the type-specific fields of a wallet document,
// stored as a JSONB column.
type DocumentDetails struct {
	Country string         `json:"country,omitempty"`
	Embassy *types.Embassy `json:"embassy,omitempty"`
	Issuer  string         `json:"issuer,omitempty"`

	VaccineType string   `json:"vaccineType,omitempty"`
	DoseDates   []string `json:"doseDates,omitempty"`

	InsuranceProvider string `json:"insuranceProvider,omitempty"`
	PolicyNumber      string `json:"policyNumber,omitempty"`
	CoverageDetails   string `json:"coverageDetails,omitempty"`
}

// TravelDocument represents a wallet document row
type TravelDocument struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	Type       string          `json:"type"`
	Number     string          `json:"number"`
	ExpiryDate string          `json:"expiryDate"`
	Details    DocumentDetails `json:"details"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
