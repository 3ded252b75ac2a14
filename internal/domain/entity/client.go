package entity

import "time"

// Client statuses.
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
)

// Client represents a customer organization of the consultancy.
type Client struct {
	ID              string
	Name            string
	Industry        string
	ContactPerson   string
	Email           string
	Phone           string
	Address         string
	Website         string
	TaxID           string // KRA PIN
	Status          string // active | inactive
	LastServiceDate *time.Time
	LastServiceDesc string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
