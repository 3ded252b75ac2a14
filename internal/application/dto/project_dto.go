package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest body for POST /api/projects.
type CreateProjectRequest struct {
	Title            string          `json:"title" validate:"required"`
	ClientID         string          `json:"client_id" validate:"required"`
	StartDate        string          `json:"start_date" validate:"required"` // YYYY-MM-DD
	EndDate          string          `json:"end_date,omitempty"`
	Value            decimal.Decimal `json:"value"`
	SubcontractorIDs []string        `json:"subcontractor_ids,omitempty"`
}

// UpdateProjectRequest body for PUT /api/projects/:id.
type UpdateProjectRequest struct {
	Title             string          `json:"title" validate:"required"`
	StartDate         string          `json:"start_date" validate:"required"`
	EndDate           string          `json:"end_date,omitempty"`
	Status            string          `json:"status" validate:"omitempty,oneof=active completed on_hold cancelled"`
	CompletionPercent int             `json:"completion_percent" validate:"min=0,max=100"`
	Value             decimal.Decimal `json:"value"`
	SubcontractorIDs  []string        `json:"subcontractor_ids,omitempty"`
}

// ProjectResponse project in responses.
type ProjectResponse struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	ClientID          string          `json:"client_id"`
	ClientName        string          `json:"client_name,omitempty"`
	StartDate         string          `json:"start_date"`
	EndDate           string          `json:"end_date,omitempty"`
	Status            string          `json:"status"`
	CompletionPercent int             `json:"completion_percent"`
	Value             decimal.Decimal `json:"value"`
	SubcontractorIDs  []string        `json:"subcontractor_ids,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// CreateSubcontractorRequest body for POST /api/subcontractors.
type CreateSubcontractorRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
}

// UpdateSubcontractorRequest body for PUT /api/subcontractors/:id.
type UpdateSubcontractorRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
	Status    string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// SubcontractorResponse subcontractor plus linked project count.
type SubcontractorResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Specialty    string    `json:"specialty,omitempty"`
	Status       string    `json:"status"`
	ProjectCount int       `json:"project_count"`
	CreatedAt    time.Time `json:"created_at"`
}
