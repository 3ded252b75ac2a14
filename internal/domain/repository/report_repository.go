package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReportRepository defines the read-only queries behind the dashboard.
// Implementations never modify data.
type ReportRepository interface {
	// CountClientsByStatus returns the number of clients in the given status.
	CountClientsByStatus(ctx context.Context, status string) (int, error)
	// CountProjectsByStatus returns the number of projects in the given status.
	CountProjectsByStatus(ctx context.Context, status string) (int, error)
	// OutstandingInvoiceTotal sums totals of sent and viewed invoices.
	OutstandingInvoiceTotal(ctx context.Context) (decimal.Decimal, error)
	// CountDocumentsExpiringBefore counts documents with an expiry date before cutoff.
	CountDocumentsExpiringBefore(ctx context.Context, cutoff time.Time) (int, error)
	// CountComplianceDueBefore counts non-completed compliance events due before cutoff.
	CountComplianceDueBefore(ctx context.Context, cutoff time.Time) (int, error)
	// CountAnniversariesDueBefore counts anniversaries whose derived next service
	// date (last service date + frequency months) falls before cutoff.
	CountAnniversariesDueBefore(ctx context.Context, cutoff time.Time) (int, error)
}
