package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice lifecycle statuses. "overdue" is never stored: it is a display bucket
// computed at read time for sent/viewed invoices past their due date.
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusSent      = "sent"
	InvoiceStatusViewed    = "viewed"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

// VATRate is the fixed regional VAT rate (16%).
var VATRate = decimal.NewFromFloat(0.16)

// Invoice is an invoice header with computed totals.
type Invoice struct {
	ID        string
	Number    string
	ClientID  string
	IssueDate time.Time
	DueDate   time.Time
	Subtotal  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
	Status    string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []InvoiceItem
}

// InvoiceItem is one billed line: quantity x unit amount.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	Description string
	Quantity    decimal.Decimal
	UnitAmount  decimal.Decimal
	LineTotal   decimal.Decimal
}

// invoiceTransitions lists the allowed user-triggered status moves.
var invoiceTransitions = map[string][]string{
	InvoiceStatusDraft:  {InvoiceStatusSent, InvoiceStatusCancelled},
	InvoiceStatusSent:   {InvoiceStatusViewed, InvoiceStatusPaid, InvoiceStatusCancelled},
	InvoiceStatusViewed: {InvoiceStatusPaid, InvoiceStatusCancelled},
}

// CanTransitionInvoice reports whether moving an invoice from one status to
// another is allowed. Paid and cancelled are terminal.
func CanTransitionInvoice(from, to string) bool {
	for _, next := range invoiceTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
