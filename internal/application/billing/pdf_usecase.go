package billing

import (
	"context"
	"fmt"

	"github.com/wanjiru-dev/consultpro-api/internal/domain"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/repository"
)

// PDFUseCase renders an invoice as a downloadable PDF.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	generator   InvoicePDFGenerator
	firm        FirmDetails
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	generator InvoicePDFGenerator,
	firm FirmDetails,
) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, clientRepo: clientRepo, generator: generator, firm: firm}
}

// DownloadInvoicePDF loads the invoice and its client and renders the PDF.
// Returns (pdfBytes, filename, nil) on success, domain.ErrNotFound when
// invoice or client is missing.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	client, err := uc.clientRepo.GetByID(ctx, inv.ClientID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load client: %w", err)
	}
	if client == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, inv, client, uc.firm)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: render: %w", err)
	}
	return pdfBytes, fmt.Sprintf("%s.pdf", inv.Number), nil
}
