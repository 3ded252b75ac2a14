package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO the figures behind the dashboard landing page.
type DashboardSummaryDTO struct {
	ActiveClients       int             `json:"active_clients"`
	ActiveProjects      int             `json:"active_projects"`
	OutstandingInvoices decimal.Decimal `json:"outstanding_invoices"`
	DocumentsExpiring   int             `json:"documents_expiring_30d"`
	ComplianceDue       int             `json:"compliance_due_30d"`
	AnniversariesDue    int             `json:"anniversaries_due_30d"`
}
