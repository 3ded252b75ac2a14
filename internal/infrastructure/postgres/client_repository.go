package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wanjiru-dev/consultpro-api/internal/domain"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, name, industry, contact_person, email, phone, address, website,
	tax_id, status, last_service_date, last_service_desc, notes, created_at, updated_at`

// ClientRepo implements ClientRepository (usable with pool or tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository builds the adapter. Pass a pool or tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persists a new client.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Industry, c.ContactPerson, c.Email, c.Phone, c.Address, c.Website,
		c.TaxID, c.Status, c.LastServiceDate, c.LastServiceDesc, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID fetches a client by ID. Returns (nil, nil) when missing.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// GetByTaxID fetches a client by tax id. Returns (nil, nil) when missing.
func (r *ClientRepo) GetByTaxID(ctx context.Context, taxID string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE tax_id = $1`
	c, err := scanClient(r.q.QueryRow(ctx, query, taxID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by tax_id: %w", err)
	}
	return c, nil
}

// List searches the directory with pagination. The query term matches name,
// email or tax id case-insensitively.
func (r *ClientRepo) List(ctx context.Context, f repository.ClientFilter) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + ` FROM clients
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' OR tax_id ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR status = $2)
		ORDER BY name LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, f.Query, f.Status, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update rewrites a client row.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, industry = $3, contact_person = $4, email = $5, phone = $6,
			address = $7, website = $8, tax_id = $9, status = $10, last_service_date = $11,
			last_service_desc = $12, notes = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Industry, c.ContactPerson, c.Email, c.Phone,
		c.Address, c.Website, c.TaxID, c.Status, c.LastServiceDate,
		c.LastServiceDesc, c.Notes, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete removes a client by ID.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

// CountLinkedRecords counts rows in dependent tables still referencing the
// client; the delete guard refuses while this is non-zero.
func (r *ClientRepo) CountLinkedRecords(ctx context.Context, id string) (int, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM documents WHERE client_id = $1) +
			(SELECT COUNT(*) FROM invoices WHERE client_id = $1) +
			(SELECT COUNT(*) FROM projects WHERE client_id = $1) +
			(SELECT COUNT(*) FROM compliance_events WHERE client_id = $1) +
			(SELECT COUNT(*) FROM anniversaries WHERE client_id = $1) +
			(SELECT COUNT(*) FROM certifications WHERE client_id = $1)`
	var n int
	if err := r.q.QueryRow(ctx, query, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("count linked records: %w", err)
	}
	return n, nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.Name, &c.Industry, &c.ContactPerson, &c.Email, &c.Phone, &c.Address, &c.Website,
		&c.TaxID, &c.Status, &c.LastServiceDate, &c.LastServiceDesc, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
