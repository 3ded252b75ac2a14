package repository

import (
	"context"

	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
)

// InvoiceFilter narrows invoice listings.
type InvoiceFilter struct {
	Status   string
	ClientID string
	Limit    int
	Offset   int
}

// InvoiceRepository is the persistence port for Invoice headers and items.
type InvoiceRepository interface {
	// Create persists the header and its items. Returns domain.ErrDuplicate on
	// an invoice number collision.
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	List(ctx context.Context, filter InvoiceFilter) ([]*entity.Invoice, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
