package billing_test

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanjiru-dev/consultpro-api/internal/application/billing"
	"github.com/wanjiru-dev/consultpro-api/internal/application/dto"
	"github.com/wanjiru-dev/consultpro-api/internal/domain"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	byID     map[string]*entity.Invoice
	byNumber map[string]string // number -> id, backs the unique index
	creates  int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{byID: map[string]*entity.Invoice{}, byNumber: map[string]string{}}
}

func (r *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	r.creates++
	if _, dup := r.byNumber[inv.Number]; dup {
		return domain.ErrDuplicate
	}
	cp := *inv
	r.byID[inv.ID] = &cp
	r.byNumber[inv.Number] = inv.ID
	return nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	inv, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) List(_ context.Context, filter repository.InvoiceFilter) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.byID {
		if filter.Status != "" && inv.Status != filter.Status {
			continue
		}
		if filter.ClientID != "" && inv.ClientID != filter.ClientID {
			continue
		}
		cp := *inv
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) UpdateStatus(_ context.Context, id, status string) error {
	inv, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	inv.Status = status
	return nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id string) error {
	inv, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.byNumber, inv.Number)
	delete(r.byID, id)
	return nil
}

type fakeClientRepo struct {
	byID map[string]*entity.Client
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	r := &fakeClientRepo{byID: map[string]*entity.Client{}}
	for _, c := range clients {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	return r.byID[id], nil
}

func (r *fakeClientRepo) GetByTaxID(_ context.Context, taxID string) (*entity.Client, error) {
	for _, c := range r.byID {
		if c.TaxID == taxID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) List(_ context.Context, _ repository.ClientFilter) ([]*entity.Client, error) {
	return nil, nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeClientRepo) CountLinkedRecords(_ context.Context, _ string) (int, error) {
	return 0, nil
}

const testClientID = "11111111-1111-1111-1111-111111111111"

func newTestUseCase() (*billing.InvoiceUseCase, *fakeInvoiceRepo) {
	repo := newFakeInvoiceRepo()
	clients := newFakeClientRepo(&entity.Client{
		ID:     testClientID,
		Name:   "Unga Group",
		TaxID:  "P051234567X",
		Status: entity.ClientStatusActive,
	})
	return billing.NewInvoiceUseCase(repo, clients, 30), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Totals
// ──────────────────────────────────────────────────────────────────────────────

// Two units at 50,000 each: subtotal 100,000, VAT 16,000, total 116,000.
func TestComputeTotals_TwoUnitsAtFiftyThousand(t *testing.T) {
	subtotal, tax, total := billing.ComputeTotals([]entity.InvoiceItem{
		{
			Description: "Market entry study",
			Quantity:    decimal.NewFromInt(2),
			UnitAmount:  decimal.NewFromInt(50_000),
		},
	})

	assert.True(t, subtotal.Equal(decimal.NewFromInt(100_000)), "subtotal: %s", subtotal)
	assert.True(t, tax.Equal(decimal.NewFromInt(16_000)), "tax: %s", tax)
	assert.True(t, total.Equal(decimal.NewFromInt(116_000)), "total: %s", total)
}

func TestComputeTotals_RoundsToTwoDecimals(t *testing.T) {
	subtotal, tax, total := billing.ComputeTotals([]entity.InvoiceItem{
		{
			Quantity:   decimal.NewFromInt(3),
			UnitAmount: decimal.RequireFromString("33.335"),
		},
	})

	assert.Equal(t, "100.01", subtotal.StringFixed(2))
	assert.Equal(t, "16.00", tax.StringFixed(2))
	assert.Equal(t, "116.01", total.StringFixed(2))
}

func TestComputeTotals_EmptyItemsAreZero(t *testing.T) {
	subtotal, tax, total := billing.ComputeTotals(nil)
	assert.True(t, subtotal.IsZero())
	assert.True(t, tax.IsZero())
	assert.True(t, total.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ComputesTotalsAndStartsAsDraft(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
		ClientID: testClientID,
		Items: []dto.InvoiceItemRequest{
			{Description: "Advisory retainer", Quantity: decimal.NewFromInt(2), UnitAmount: decimal.NewFromInt(50_000)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusDraft, resp.Status)
	assert.Equal(t, "Unga Group", resp.ClientName)
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(100_000)))
	assert.True(t, resp.Tax.Equal(decimal.NewFromInt(16_000)))
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(116_000)))
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].LineTotal.Equal(decimal.NewFromInt(100_000)))
}

func TestCreate_GeneratesNumberWhenOmitted(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
		ClientID:  testClientID,
		IssueDate: "2025-06-10",
		Items: []dto.InvoiceItemRequest{
			{Description: "Audit support", Quantity: decimal.NewFromInt(1), UnitAmount: decimal.NewFromInt(10_000)},
		},
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^INV-2025-\d{4}$`), resp.Number)
}

func TestCreate_KeepsCallerSuppliedNumber(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
		ClientID: testClientID,
		Number:   "INV-2025-CUSTOM",
		Items: []dto.InvoiceItemRequest{
			{Description: "Workshop", Quantity: decimal.NewFromInt(1), UnitAmount: decimal.NewFromInt(5_000)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-CUSTOM", resp.Number)
}

func TestCreate_DuplicateCallerNumberIsNotRerolled(t *testing.T) {
	uc, repo := newTestUseCase()
	in := dto.CreateInvoiceRequest{
		ClientID: testClientID,
		Number:   "INV-2025-0001",
		Items: []dto.InvoiceItemRequest{
			{Description: "Workshop", Quantity: decimal.NewFromInt(1), UnitAmount: decimal.NewFromInt(5_000)},
		},
	}

	_, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	creates := repo.creates
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, creates+1, repo.creates, "a caller-supplied number must not be retried")
}

func TestCreate_RejectsZeroQuantity(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
		ClientID: testClientID,
		Items: []dto.InvoiceItemRequest{
			{Description: "Nothing", Quantity: decimal.Zero, UnitAmount: decimal.NewFromInt(5_000)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_RejectsUnknownClient(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
		ClientID: "22222222-2222-2222-2222-222222222222",
		Items: []dto.InvoiceItemRequest{
			{Description: "Advisory", Quantity: decimal.NewFromInt(1), UnitAmount: decimal.NewFromInt(5_000)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_RejectsMissingItems(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{ClientID: testClientID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Number generation
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateNumber_Format(t *testing.T) {
	for i := 0; i < 50; i++ {
		n := billing.GenerateNumber(2025)
		require.True(t, strings.HasPrefix(n, "INV-2025-"), "number: %s", n)
		require.Len(t, n, len("INV-2025-0000"), "suffix must be zero-padded to 4 digits: %s", n)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Lifecycle
// ──────────────────────────────────────────────────────────────────────────────

func createDraft(t *testing.T, uc *billing.InvoiceUseCase) *dto.InvoiceResponse {
	t.Helper()
	resp, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
		ClientID: testClientID,
		Items: []dto.InvoiceItemRequest{
			{Description: "Advisory", Quantity: decimal.NewFromInt(1), UnitAmount: decimal.NewFromInt(10_000)},
		},
	})
	require.NoError(t, err)
	return resp
}

func TestUpdateStatus_DraftToSent(t *testing.T) {
	uc, _ := newTestUseCase()
	draft := createDraft(t, uc)

	resp, err := uc.UpdateStatus(context.Background(), draft.ID, dto.UpdateInvoiceStatusRequest{Status: entity.InvoiceStatusSent})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusSent, resp.Status)
}

func TestUpdateStatus_DraftToPaidIsRejected(t *testing.T) {
	uc, _ := newTestUseCase()
	draft := createDraft(t, uc)

	_, err := uc.UpdateStatus(context.Background(), draft.ID, dto.UpdateInvoiceStatusRequest{Status: entity.InvoiceStatusPaid})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateStatus_PaidIsTerminal(t *testing.T) {
	uc, _ := newTestUseCase()
	draft := createDraft(t, uc)

	ctx := context.Background()
	_, err := uc.UpdateStatus(ctx, draft.ID, dto.UpdateInvoiceStatusRequest{Status: entity.InvoiceStatusSent})
	require.NoError(t, err)
	_, err = uc.UpdateStatus(ctx, draft.ID, dto.UpdateInvoiceStatusRequest{Status: entity.InvoiceStatusPaid})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, draft.ID, dto.UpdateInvoiceStatusRequest{Status: entity.InvoiceStatusCancelled})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestDelete_OnlyDrafts(t *testing.T) {
	uc, _ := newTestUseCase()
	draft := createDraft(t, uc)

	ctx := context.Background()
	_, err := uc.UpdateStatus(ctx, draft.ID, dto.UpdateInvoiceStatusRequest{Status: entity.InvoiceStatusSent})
	require.NoError(t, err)

	err = uc.Delete(ctx, draft.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "sent invoices must not be deletable")

	second := createDraft(t, uc)
	assert.NoError(t, uc.Delete(ctx, second.ID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Display status
// ──────────────────────────────────────────────────────────────────────────────

func TestDisplayStatus_SentPastDueReadsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)
	inv := &entity.Invoice{
		Status:  entity.InvoiceStatusSent,
		DueDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "overdue", billing.DisplayStatus(inv, now))
}

func TestDisplayStatus_DraftPastDueStaysDraft(t *testing.T) {
	now := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)
	inv := &entity.Invoice{
		Status:  entity.InvoiceStatusDraft,
		DueDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, entity.InvoiceStatusDraft, billing.DisplayStatus(inv, now))
}

func TestDisplayStatus_PaidNeverReadsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)
	inv := &entity.Invoice{
		Status:  entity.InvoiceStatusPaid,
		DueDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, entity.InvoiceStatusPaid, billing.DisplayStatus(inv, now))
}
