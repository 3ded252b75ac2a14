package billing

import (
	"context"

	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
)

// FirmDetails appears in the invoice PDF header.
type FirmDetails struct {
	Name     string
	TaxID    string
	Address  string
	Email    string
	Currency string // ISO 4217 code, e.g. KES
}

// InvoicePDFGenerator renders an invoice into PDF bytes.
// Implemented by infrastructure/pdf.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, client *entity.Client, firm FirmDetails) ([]byte, error)
}
