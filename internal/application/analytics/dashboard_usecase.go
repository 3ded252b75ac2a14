// Package analytics contains the reporting use cases behind the dashboard.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wanjiru-dev/consultpro-api/internal/application/dto"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/repository"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/schedule"
)

// DashboardUseCase builds the summary for the dashboard landing page.
// Read-only; everything is delegated to ReportRepository queries.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
	now        func() time.Time
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo, now: time.Now}
}

// GetSummary runs the dashboard queries concurrently and collects the figures.
// The cutoff for "expiring/due soon" counts is today + 30 days.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()
	cutoff := now.AddDate(0, 0, schedule.DueSoonWindowDays)

	type intResult struct {
		n   int
		err error
	}
	type decResult struct {
		d   decimal.Decimal
		err error
	}

	clientsCh := make(chan intResult, 1)
	projectsCh := make(chan intResult, 1)
	invoicesCh := make(chan decResult, 1)
	docsCh := make(chan intResult, 1)
	complianceCh := make(chan intResult, 1)
	anniversariesCh := make(chan intResult, 1)

	go func() {
		n, err := uc.reportRepo.CountClientsByStatus(ctx, entity.ClientStatusActive)
		clientsCh <- intResult{n, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountProjectsByStatus(ctx, entity.ProjectStatusActive)
		projectsCh <- intResult{n, err}
	}()
	go func() {
		d, err := uc.reportRepo.OutstandingInvoiceTotal(ctx)
		invoicesCh <- decResult{d, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountDocumentsExpiringBefore(ctx, cutoff)
		docsCh <- intResult{n, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountComplianceDueBefore(ctx, cutoff)
		complianceCh <- intResult{n, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountAnniversariesDueBefore(ctx, cutoff)
		anniversariesCh <- intResult{n, err}
	}()

	clients := <-clientsCh
	projects := <-projectsCh
	invoices := <-invoicesCh
	docs := <-docsCh
	compliance := <-complianceCh
	anniversaries := <-anniversariesCh

	for _, err := range []error{clients.err, projects.err, invoices.err, docs.err, compliance.err, anniversaries.err} {
		if err != nil {
			return nil, err
		}
	}

	return &dto.DashboardSummaryDTO{
		ActiveClients:       clients.n,
		ActiveProjects:      projects.n,
		OutstandingInvoices: invoices.d,
		DocumentsExpiring:   docs.n,
		ComplianceDue:       compliance.n,
		AnniversariesDue:    anniversaries.n,
	}, nil
}
