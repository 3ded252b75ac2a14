// Package billing implements the invoice composer: line items, 16% VAT totals,
// number generation and lifecycle transitions.
package billing

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wanjiru-dev/consultpro-api/internal/application/dto"
	"github.com/wanjiru-dev/consultpro-api/internal/domain"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/repository"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/schedule"
	"github.com/wanjiru-dev/consultpro-api/pkg/validate"
)

// maxNumberRetries bounds how often a colliding generated invoice number is
// re-rolled before giving up. Numbers carry a random 4-digit suffix, so a
// handful of retries is plenty outside of pathological data.
const maxNumberRetries = 5

// InvoiceUseCase creation, listing, status transitions and deletion.
type InvoiceUseCase struct {
	repo       repository.InvoiceRepository
	clientRepo repository.ClientRepository
	dueDays    int
	now        func() time.Time
}

// NewInvoiceUseCase builds the use case. dueDays is the default payment term
// applied when a request omits the due date.
func NewInvoiceUseCase(repo repository.InvoiceRepository, clientRepo repository.ClientRepository, dueDays int) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, clientRepo: clientRepo, dueDays: dueDays, now: time.Now}
}

// ComputeTotals returns subtotal, tax and total for a set of items:
// subtotal = Σ quantity×amount, tax = subtotal×0.16, total = subtotal+tax,
// all rounded to 2 decimals.
func ComputeTotals(items []entity.InvoiceItem) (subtotal, tax, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Quantity.Mul(it.UnitAmount))
	}
	subtotal = subtotal.Round(2)
	tax = subtotal.Mul(entity.VATRate).Round(2)
	total = subtotal.Add(tax)
	return subtotal, tax, total
}

// Create validates the items, computes totals and persists header + items.
// A missing number is generated as INV-<year>-<4 random digits>; collisions
// with the unique index are retried with a fresh suffix.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	issueDate, err := parseDateOr(in.IssueDate, now)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := parseDateOr(in.DueDate, issueDate.AddDate(0, 0, uc.dueDays))
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	one := decimal.NewFromInt(1)
	items := make([]entity.InvoiceItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity.LessThan(one) || it.UnitAmount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.InvoiceItem{
			ID:          uuid.New().String(),
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitAmount:  it.UnitAmount,
			LineTotal:   it.Quantity.Mul(it.UnitAmount).Round(2),
		})
	}
	subtotal, tax, total := ComputeTotals(items)

	invoice := &entity.Invoice{
		ID:        uuid.New().String(),
		Number:    in.Number,
		ClientID:  in.ClientID,
		IssueDate: issueDate,
		DueDate:   dueDate,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     total,
		Status:    entity.InvoiceStatusDraft,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
		Items:     items,
	}
	for i := range invoice.Items {
		invoice.Items[i].InvoiceID = invoice.ID
	}

	generated := invoice.Number == ""
	for attempt := 0; ; attempt++ {
		if generated {
			invoice.Number = GenerateNumber(issueDate.Year())
		}
		err = uc.repo.Create(ctx, invoice)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		// Caller-supplied numbers are not re-rolled.
		if !generated || attempt >= maxNumberRetries {
			return nil, domain.ErrDuplicate
		}
	}

	return uc.toResponse(invoice, client.Name, now), nil
}

// GenerateNumber builds an invoice number from the year and a random 4-digit
// suffix. Uniqueness is enforced by the DB index, not here.
func GenerateNumber(year int) string {
	return fmt.Sprintf("INV-%d-%04d", year, rand.Intn(10000))
}

// GetByID fetches one invoice with items and the client name.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	clientName := ""
	if client, err := uc.clientRepo.GetByID(ctx, invoice.ClientID); err == nil && client != nil {
		clientName = client.Name
	}
	return uc.toResponse(invoice, clientName, uc.now()), nil
}

// List returns invoices filtered by status and client.
func (uc *InvoiceUseCase) List(ctx context.Context, status, clientID string, page dto.PageRequest) ([]*dto.InvoiceResponse, error) {
	if !validate.OneOf(status,
		entity.InvoiceStatusDraft, entity.InvoiceStatusSent, entity.InvoiceStatusViewed,
		entity.InvoiceStatusPaid, entity.InvoiceStatusCancelled) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	list, err := uc.repo.List(ctx, repository.InvoiceFilter{
		Status:   status,
		ClientID: clientID,
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return nil, err
	}
	now := uc.now()
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, uc.toResponse(inv, "", now))
	}
	return out, nil
}

// UpdateStatus applies a user-triggered lifecycle transition. Moves not in the
// transition table return ErrInvalidTransition.
func (uc *InvoiceUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateInvoiceStatusRequest) (*dto.InvoiceResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	invoice, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransitionInvoice(invoice.Status, in.Status) {
		return nil, domain.ErrInvalidTransition
	}
	if err := uc.repo.UpdateStatus(ctx, id, in.Status); err != nil {
		return nil, err
	}
	invoice.Status = in.Status
	return uc.toResponse(invoice, "", uc.now()), nil
}

// Delete removes a draft invoice. Anything past draft is kept for the books.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	invoice, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	if invoice.Status != entity.InvoiceStatusDraft {
		return domain.ErrConflict
	}
	return uc.repo.Delete(ctx, id)
}

// DisplayStatus is the read-time bucket: sent/viewed invoices past their due
// date read "overdue"; everything else mirrors the stored status.
func DisplayStatus(inv *entity.Invoice, now time.Time) string {
	if inv.Status == entity.InvoiceStatusSent || inv.Status == entity.InvoiceStatusViewed {
		if schedule.IsOverdue(inv.DueDate, now) {
			return "overdue"
		}
	}
	return inv.Status
}

func (uc *InvoiceUseCase) toResponse(inv *entity.Invoice, clientName string, now time.Time) *dto.InvoiceResponse {
	items := make([]dto.InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.InvoiceItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitAmount:  it.UnitAmount,
			LineTotal:   it.LineTotal,
		})
	}
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		Number:        inv.Number,
		ClientID:      inv.ClientID,
		ClientName:    clientName,
		IssueDate:     inv.IssueDate.Format("2006-01-02"),
		DueDate:       inv.DueDate.Format("2006-01-02"),
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Total:         inv.Total,
		Status:        inv.Status,
		DisplayStatus: DisplayStatus(inv, now),
		Notes:         inv.Notes,
		Items:         items,
		CreatedAt:     inv.CreatedAt,
	}
}

func parseDateOr(s string, def time.Time) (time.Time, error) {
	if s == "" {
		return def, nil
	}
	return time.Parse("2006-01-02", s)
}
