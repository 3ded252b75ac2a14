package entity

import "time"

// Subcontractor is an external specialist linked to projects. ProjectCount is
// computed on read, never stored.
type Subcontractor struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Specialty    string
	Status       string // active | inactive
	ProjectCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
