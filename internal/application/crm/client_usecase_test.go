package crm_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanjiru-dev/consultpro-api/internal/application/crm"
	"github.com/wanjiru-dev/consultpro-api/internal/application/dto"
	"github.com/wanjiru-dev/consultpro-api/internal/domain"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fake mirroring the Postgres adapter's contract: (nil, nil) when a
// row is missing, substring search over name, email and tax id.
// ──────────────────────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	byID   map[string]*entity.Client
	linked map[string]int // client id -> linked record count
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{byID: map[string]*entity.Client{}, linked: map[string]int{}}
}

func (r *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) GetByTaxID(_ context.Context, taxID string) (*entity.Client, error) {
	for _, c := range r.byID {
		if c.TaxID == taxID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) List(_ context.Context, filter repository.ClientFilter) ([]*entity.Client, error) {
	q := strings.ToLower(filter.Query)
	var out []*entity.Client
	for _, c := range r.byID {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Email), q) &&
			!strings.Contains(strings.ToLower(c.TaxID), q) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeClientRepo) CountLinkedRecords(_ context.Context, id string) (int, error) {
	return r.linked[id], nil
}

func create(t *testing.T, uc *crm.ClientUseCase, name, email, taxID string) *dto.ClientResponse {
	t.Helper()
	resp, err := uc.Create(context.Background(), dto.CreateClientRequest{
		Name:  name,
		Email: email,
		TaxID: taxID,
	})
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_NewClientsStartActive(t *testing.T) {
	uc := crm.NewClientUseCase(newFakeClientRepo())

	resp := create(t, uc, "Unga Group", "finance@unga.co.ke", "P051234567X")
	assert.Equal(t, entity.ClientStatusActive, resp.Status)
	assert.NotEmpty(t, resp.ID)
}

func TestCreate_DuplicateTaxIDIsRejected(t *testing.T) {
	uc := crm.NewClientUseCase(newFakeClientRepo())
	create(t, uc, "Unga Group", "finance@unga.co.ke", "P051234567X")

	_, err := uc.Create(context.Background(), dto.CreateClientRequest{
		Name:  "Unga Group Duplicate",
		TaxID: "P051234567X",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_RequiresNameAndTaxID(t *testing.T) {
	uc := crm.NewClientUseCase(newFakeClientRepo())

	_, err := uc.Create(context.Background(), dto.CreateClientRequest{Name: "No Tax ID"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateClientRequest{TaxID: "P000000000A"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Search
// ──────────────────────────────────────────────────────────────────────────────

func TestList_QueryMatchesNameEmailAndTaxID(t *testing.T) {
	uc := crm.NewClientUseCase(newFakeClientRepo())
	create(t, uc, "Unga Group", "finance@unga.co.ke", "P051234567X")
	create(t, uc, "Bidco Africa", "accounts@bidco.co.ke", "P059876543Y")

	ctx := context.Background()

	byName, err := uc.List(ctx, "unga", "", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Unga Group", byName[0].Name)

	byEmail, err := uc.List(ctx, "accounts@bidco", "", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "Bidco Africa", byEmail[0].Name)

	byTaxID, err := uc.List(ctx, "P0598", "", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, byTaxID, 1)
	assert.Equal(t, "Bidco Africa", byTaxID[0].Name)

	all, err := uc.List(ctx, "", "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestList_UnknownStatusIsRejected(t *testing.T) {
	uc := crm.NewClientUseCase(newFakeClientRepo())

	_, err := uc.List(context.Background(), "", "archived", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_TaxIDChangeToExistingOneIsRejected(t *testing.T) {
	uc := crm.NewClientUseCase(newFakeClientRepo())
	create(t, uc, "Unga Group", "finance@unga.co.ke", "P051234567X")
	bidco := create(t, uc, "Bidco Africa", "accounts@bidco.co.ke", "P059876543Y")

	_, err := uc.Update(context.Background(), bidco.ID, dto.UpdateClientRequest{
		Name:  "Bidco Africa",
		TaxID: "P051234567X",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdate_UnknownClientReturnsNotFound(t *testing.T) {
	uc := crm.NewClientUseCase(newFakeClientRepo())

	_, err := uc.Update(context.Background(), "missing", dto.UpdateClientRequest{
		Name:  "Ghost",
		TaxID: "P000000000A",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete guard
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_RefusedWhileRecordsReferenceTheClient(t *testing.T) {
	repo := newFakeClientRepo()
	uc := crm.NewClientUseCase(repo)
	client := create(t, uc, "Unga Group", "finance@unga.co.ke", "P051234567X")

	repo.linked[client.ID] = 3
	err := uc.Delete(context.Background(), client.ID)
	assert.ErrorIs(t, err, domain.ErrClientInUse)

	// Still present after the refused delete.
	got, err := uc.GetByID(context.Background(), client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, got.ID)
}

func TestDelete_SucceedsWithoutLinkedRecords(t *testing.T) {
	uc := crm.NewClientUseCase(newFakeClientRepo())
	client := create(t, uc, "Unga Group", "finance@unga.co.ke", "P051234567X")

	require.NoError(t, uc.Delete(context.Background(), client.ID))

	_, err := uc.GetByID(context.Background(), client.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_UnknownClientReturnsNotFound(t *testing.T) {
	uc := crm.NewClientUseCase(newFakeClientRepo())
	err := uc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
