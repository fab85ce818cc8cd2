package types

import "github.com/go-playground/validator/v10"

// CreateTripRequest is the payload for saving a trip record.
// All fields are required; activities must contain at least one entry.
type CreateTripRequest struct {
	Destination string   `json:"destination" validate:"required"`
	Duration    string   `json:"duration" validate:"required"`
	Budget      string   `json:"budget" validate:"required"`
	Companions  string   `json:"companions" validate:"required"`
	Activities  []string `json:"activities" validate:"required,min=1"`
}

// Validate validates the CreateTripRequest using the validator.
func (r *CreateTripRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Recognized travel document types for the wallet.
const (
	DocPassport            = "passport"
	DocVisa                = "visa"
	DocCreditCard          = "creditCard"
	DocVaccination         = "vaccination"
	DocDrivingLicense      = "drivingLicense"
	DocInternationalPermit = "internationalPermit"
	DocNationalID          = "nationalId"
	DocInsurance           = "insurance"
)

// Embassy holds contact details attached to visa documents.
type Embassy struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// DocumentRequest is the payload for creating or updating a wallet document.
type DocumentRequest struct {
	Type       string `json:"type" validate:"required,oneof=passport visa creditCard vaccination drivingLicense internationalPermit nationalId insurance"`
	Number     string `json:"number" validate:"required"`
	ExpiryDate string `json:"expiryDate" validate:"required"`

	Country string   `json:"country,omitempty"`
	Embassy *Embassy `json:"embassy,omitempty"`
	Issuer  string   `json:"issuer,omitempty"`

	// Vaccination details.
	VaccineType string   `json:"vaccineType,omitempty"`
	DoseDates   []string `json:"doseDates,omitempty"`

	// Insurance details.
	InsuranceProvider string `json:"insuranceProvider,omitempty"`
	PolicyNumber      string `json:"policyNumber,omitempty"`
	CoverageDetails   string `json:"coverageDetails,omitempty"`
}

// Validate validates the DocumentRequest using the validator.
func (r *DocumentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
