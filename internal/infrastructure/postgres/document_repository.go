package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

const documentColumns = `id, title, description, file_name, storage_key, file_type, file_size,
	category, COALESCE(client_id, ''), COALESCE(project_id, ''), COALESCE(invoice_id, ''),
	COALESCE(subcontractor_id, ''), expires_at, tags, uploaded_by, created_at, updated_at`

// DocumentRepo implements DocumentRepository (usable with pool or tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository builds the adapter. Pass a pool or tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persists a document metadata row. Optional associations are stored as
// NULL so foreign keys hold.
func (r *DocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	query := `
		INSERT INTO documents
			(id, title, description, file_name, storage_key, file_type, file_size, category,
			 client_id, project_id, invoice_id, subcontractor_id, expires_at, tags, uploaded_by,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''), $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.Title, d.Description, d.FileName, d.StorageKey, d.FileType, d.FileSize, d.Category,
		d.ClientID, d.ProjectID, d.InvoiceID, d.SubcontractorID, d.ExpiresAt, d.Tags, d.UploadedBy,
		d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID fetches a document by ID. Returns (nil, nil) when missing.
func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	d, err := scanDocument(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

// List returns documents newest first, filtered by category and client.
func (r *DocumentRepo) List(ctx context.Context, f repository.DocumentFilter) ([]*entity.Document, error) {
	query := `
		SELECT ` + documentColumns + ` FROM documents
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR client_id = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, f.Category, f.ClientID, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// ListExpiringWithin returns documents whose expiry date falls in the next
// given days, soonest first.
func (r *DocumentRepo) ListExpiringWithin(ctx context.Context, days int) ([]*entity.Document, error) {
	query := `
		SELECT ` + documentColumns + ` FROM documents
		WHERE expires_at IS NOT NULL
		  AND expires_at <= now() + make_interval(days => $1)
		ORDER BY expires_at`
	rows, err := r.q.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("list expiring documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Delete removes a metadata row by ID.
func (r *DocumentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var d entity.Document
	err := row.Scan(
		&d.ID, &d.Title, &d.Description, &d.FileName, &d.StorageKey, &d.FileType, &d.FileSize,
		&d.Category, &d.ClientID, &d.ProjectID, &d.InvoiceID, &d.SubcontractorID,
		&d.ExpiresAt, &d.Tags, &d.UploadedBy, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
