package dto

import "time"

// CreateComplianceEventRequest body for POST /api/compliance.
type CreateComplianceEventRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	ClientID    string   `json:"client_id" validate:"required"`
	DueDate     string   `json:"due_date" validate:"required"` // YYYY-MM-DD
	Priority    string   `json:"priority" validate:"omitempty,oneof=low medium high"`
	Notes       string   `json:"notes"`
	DocumentIDs []string `json:"document_ids,omitempty"`
}

// UpdateComplianceEventRequest body for PUT /api/compliance/:id. Status moves
// are validated against the lifecycle enum.
type UpdateComplianceEventRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	DueDate     string   `json:"due_date" validate:"required"`
	Status      string   `json:"status" validate:"omitempty,oneof=pending in_progress completed overdue"`
	Priority    string   `json:"priority" validate:"omitempty,oneof=low medium high"`
	Notes       string   `json:"notes"`
	DocumentIDs []string `json:"document_ids,omitempty"`
}

// ComplianceEventResponse event plus the computed display bucket.
type ComplianceEventResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	ClientID     string    `json:"client_id"`
	ClientName   string    `json:"client_name,omitempty"`
	DueDate      string    `json:"due_date"`
	DaysUntilDue int       `json:"days_until_due"`
	Bucket       string    `json:"bucket"` // overdue|due_today|due_soon|upcoming
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	Notes        string    `json:"notes,omitempty"`
	DocumentIDs  []string  `json:"document_ids,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateAnniversaryRequest body for POST /api/anniversaries.
type CreateAnniversaryRequest struct {
	Title           string `json:"title" validate:"required"`
	ClientID        string `json:"client_id" validate:"required"`
	LastServiceDate string `json:"last_service_date" validate:"required"` // YYYY-MM-DD
	FrequencyMonths int    `json:"frequency_months" validate:"required,min=1,max=120"`
	Notes           string `json:"notes"`
}

// UpdateAnniversaryRequest body for PUT /api/anniversaries/:id.
type UpdateAnniversaryRequest struct {
	Title           string `json:"title" validate:"required"`
	LastServiceDate string `json:"last_service_date" validate:"required"`
	FrequencyMonths int    `json:"frequency_months" validate:"required,min=1,max=120"`
	Status          string `json:"status" validate:"omitempty,oneof=upcoming acknowledged celebrated"`
	Notes           string `json:"notes"`
}

// AnniversaryResponse anniversary plus the derived next date and bucket.
type AnniversaryResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	ClientID        string    `json:"client_id"`
	ClientName      string    `json:"client_name,omitempty"`
	LastServiceDate string    `json:"last_service_date"`
	FrequencyMonths int       `json:"frequency_months"`
	NextServiceDate string    `json:"next_service_date"`
	DaysUntilDue    int       `json:"days_until_due"`
	Bucket          string    `json:"bucket"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateCertificationRequest body for POST /api/certifications.
type CreateCertificationRequest struct {
	Title       string `json:"title" validate:"required"`
	ClientID    string `json:"client_id" validate:"required"`
	IssuingBody string `json:"issuing_body"`
	IssuedDate  string `json:"issued_date" validate:"required"` // YYYY-MM-DD
	ExpiryDate  string `json:"expiry_date" validate:"required"`
	Notes       string `json:"notes"`
}

// UpdateCertificationRequest body for PUT /api/certifications/:id.
type UpdateCertificationRequest struct {
	Title       string `json:"title" validate:"required"`
	IssuingBody string `json:"issuing_body"`
	IssuedDate  string `json:"issued_date" validate:"required"`
	ExpiryDate  string `json:"expiry_date" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof=active expired renewal_pending"`
	Notes       string `json:"notes"`
}

// CertificationResponse certification plus the computed expiry bucket.
type CertificationResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	ClientID      string    `json:"client_id"`
	ClientName    string    `json:"client_name,omitempty"`
	IssuingBody   string    `json:"issuing_body,omitempty"`
	IssuedDate    string    `json:"issued_date"`
	ExpiryDate    string    `json:"expiry_date"`
	DaysToExpiry  int       `json:"days_to_expiry"`
	Bucket        string    `json:"bucket"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
