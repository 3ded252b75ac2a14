package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanjiru-dev/consultpro-api/internal/application/crm"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/repository"
	apphttp "github.com/wanjiru-dev/consultpro-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Minimal in-memory client repo for wiring a real handler stack.
// ──────────────────────────────────────────────────────────────────────────────

type memClientRepo struct {
	byID   map[string]*entity.Client
	linked map[string]int
}

func newMemClientRepo() *memClientRepo {
	return &memClientRepo{byID: map[string]*entity.Client{}, linked: map[string]int{}}
}

func (r *memClientRepo) Create(_ context.Context, c *entity.Client) error { r.byID[c.ID] = c; return nil }
func (r *memClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	return r.byID[id], nil
}
func (r *memClientRepo) GetByTaxID(_ context.Context, taxID string) (*entity.Client, error) {
	for _, c := range r.byID {
		if c.TaxID == taxID {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memClientRepo) List(_ context.Context, filter repository.ClientFilter) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}
func (r *memClientRepo) Update(_ context.Context, c *entity.Client) error { r.byID[c.ID] = c; return nil }
func (r *memClientRepo) Delete(_ context.Context, id string) error        { delete(r.byID, id); return nil }
func (r *memClientRepo) CountLinkedRecords(_ context.Context, id string) (int, error) {
	return r.linked[id], nil
}

func buildClientApp(repo *memClientRepo) *fiber.App {
	app := fiber.New()
	h := apphttp.NewClientHandler(crm.NewClientUseCase(repo))
	app.Post("/api/clients", h.Create)
	app.Get("/api/clients/:id", h.GetByID)
	app.Delete("/api/clients/:id", h.Delete)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Handler tests
// ──────────────────────────────────────────────────────────────────────────────

func TestClientHandler_CreateReturns201(t *testing.T) {
	app := buildClientApp(newMemClientRepo())

	resp := postJSON(t, app, "/api/clients",
		`{"name":"Unga Group","tax_id":"P051234567X","email":"finance@unga.co.ke"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Unga Group", body["name"])
	assert.Equal(t, "active", body["status"], "new clients start active")
}

func TestClientHandler_CreateWithoutTaxIDReturns400(t *testing.T) {
	app := buildClientApp(newMemClientRepo())

	resp := postJSON(t, app, "/api/clients", `{"name":"No Tax ID"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestClientHandler_DuplicateTaxIDReturns409(t *testing.T) {
	app := buildClientApp(newMemClientRepo())

	first := postJSON(t, app, "/api/clients", `{"name":"Unga Group","tax_id":"P051234567X"}`)
	first.Body.Close()

	resp := postJSON(t, app, "/api/clients", `{"name":"Duplicate","tax_id":"P051234567X"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "DUPLICATE")
}

func TestClientHandler_GetUnknownReturns404(t *testing.T) {
	app := buildClientApp(newMemClientRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/clients/missing", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClientHandler_DeleteGuardedReturns409(t *testing.T) {
	repo := newMemClientRepo()
	app := buildClientApp(repo)

	created := postJSON(t, app, "/api/clients", `{"name":"Unga Group","tax_id":"P051234567X"}`)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(created.Body).Decode(&body))
	created.Body.Close()
	id := body["id"].(string)

	repo.linked[id] = 2

	req := httptest.NewRequest(http.MethodDelete, "/api/clients/"+id, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "CLIENT_IN_USE")

	_, stillThere := repo.byID[id]
	assert.True(t, stillThere, "guarded delete must leave the client in place")
}
