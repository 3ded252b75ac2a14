package dto

import "time"

// CreateClientRequest body for POST /api/clients.
type CreateClientRequest struct {
	Name          string `json:"name" validate:"required"`
	Industry      string `json:"industry"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Website       string `json:"website" validate:"omitempty,url"`
	TaxID         string `json:"tax_id" validate:"required"`
	Notes         string `json:"notes"`
}

// UpdateClientRequest body for PUT /api/clients/:id. Same shape as create plus
// status and last-service metadata.
type UpdateClientRequest struct {
	Name            string     `json:"name" validate:"required"`
	Industry        string     `json:"industry"`
	ContactPerson   string     `json:"contact_person"`
	Email           string     `json:"email" validate:"omitempty,email"`
	Phone           string     `json:"phone"`
	Address         string     `json:"address"`
	Website         string     `json:"website" validate:"omitempty,url"`
	TaxID           string     `json:"tax_id" validate:"required"`
	Status          string     `json:"status" validate:"omitempty,oneof=active inactive"`
	LastServiceDate *time.Time `json:"last_service_date,omitempty"`
	LastServiceDesc string     `json:"last_service_desc,omitempty"`
	Notes           string     `json:"notes"`
}

// ClientResponse client in responses.
type ClientResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Industry        string     `json:"industry,omitempty"`
	ContactPerson   string     `json:"contact_person,omitempty"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Address         string     `json:"address,omitempty"`
	Website         string     `json:"website,omitempty"`
	TaxID           string     `json:"tax_id"`
	Status          string     `json:"status"`
	LastServiceDate *time.Time `json:"last_service_date,omitempty"`
	LastServiceDesc string     `json:"last_service_desc,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
