package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implements the read-only dashboard queries.
type ReportRepo struct {
	q Querier
}

// NewReportRepository builds the adapter. Pass a pool or tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// CountClientsByStatus returns the number of clients in the given status.
func (r *ReportRepo) CountClientsByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM clients WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

// CountProjectsByStatus returns the number of projects in the given status.
func (r *ReportRepo) CountProjectsByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM projects WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

// OutstandingInvoiceTotal sums totals of sent and viewed invoices.
func (r *ReportRepo) OutstandingInvoiceTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(total), 0) FROM invoices WHERE status IN ($1, $2)`
	err := r.q.QueryRow(ctx, query, entity.InvoiceStatusSent, entity.InvoiceStatusViewed).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum outstanding invoices: %w", err)
	}
	return total, nil
}

// CountDocumentsExpiringBefore counts documents with an expiry date before cutoff.
func (r *ReportRepo) CountDocumentsExpiringBefore(ctx context.Context, cutoff time.Time) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM documents WHERE expiry_date IS NOT NULL AND expiry_date < $1`
	if err := r.q.QueryRow(ctx, query, cutoff).Scan(&n); err != nil {
		return 0, fmt.Errorf("count expiring documents: %w", err)
	}
	return n, nil
}

// CountComplianceDueBefore counts non-completed compliance events due before cutoff.
func (r *ReportRepo) CountComplianceDueBefore(ctx context.Context, cutoff time.Time) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM compliance_events WHERE status <> $1 AND due_date < $2`
	if err := r.q.QueryRow(ctx, query, entity.ComplianceStatusCompleted, cutoff).Scan(&n); err != nil {
		return 0, fmt.Errorf("count compliance due: %w", err)
	}
	return n, nil
}

// CountAnniversariesDueBefore counts anniversaries whose derived next service
// date falls before cutoff.
func (r *ReportRepo) CountAnniversariesDueBefore(ctx context.Context, cutoff time.Time) (int, error) {
	var n int
	query := `
		SELECT COUNT(*) FROM anniversaries
		WHERE status <> $1
		  AND last_service_date + make_interval(months => frequency_months) < $2`
	if err := r.q.QueryRow(ctx, query, entity.AnniversaryStatusCelebrated, cutoff).Scan(&n); err != nil {
		return 0, fmt.Errorf("count anniversaries due: %w", err)
	}
	return n, nil
}
