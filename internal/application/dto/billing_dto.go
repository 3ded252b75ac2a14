package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body for POST /api/invoices.
// Number is optional; when empty one is generated as INV-<year>-<4 digits>.
type CreateInvoiceRequest struct {
	ClientID  string               `json:"client_id" validate:"required"`
	Number    string               `json:"number,omitempty"`
	IssueDate string               `json:"issue_date,omitempty"` // YYYY-MM-DD, defaults to today
	DueDate   string               `json:"due_date,omitempty"`   // YYYY-MM-DD, defaults to issue + term
	Notes     string               `json:"notes,omitempty"`
	Items     []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
}

// InvoiceItemRequest one billed line.
type InvoiceItemRequest struct {
	Description string          `json:"description" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitAmount  decimal.Decimal `json:"unit_amount"`
}

// UpdateInvoiceStatusRequest body for PATCH /api/invoices/:id/status.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft sent viewed paid cancelled"`
}

// InvoiceResponse invoice with detail. DisplayStatus mirrors Status except for
// sent/viewed invoices past their due date, which read "overdue".
type InvoiceResponse struct {
	ID            string                `json:"id"`
	Number        string                `json:"number"`
	ClientID      string                `json:"client_id"`
	ClientName    string                `json:"client_name,omitempty"`
	IssueDate     string                `json:"issue_date"`
	DueDate       string                `json:"due_date"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	Tax           decimal.Decimal       `json:"tax"`
	Total         decimal.Decimal       `json:"total"`
	Status        string                `json:"status"`
	DisplayStatus string                `json:"display_status"`
	Notes         string                `json:"notes,omitempty"`
	Items         []InvoiceItemResponse `json:"items"`
	CreatedAt     time.Time             `json:"created_at"`
}

// InvoiceItemResponse one line in the response.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitAmount  decimal.Decimal `json:"unit_amount"`
	LineTotal   decimal.Decimal `json:"line_total"`
}
