package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/repository"
)

var _ repository.CertificationRepository = (*CertificationRepo)(nil)

const certificationColumns = `id, title, client_id, issuing_body, issued_date, expiry_date,
	status, notes, created_at, updated_at`

// CertificationRepo implements CertificationRepository.
type CertificationRepo struct {
	q Querier
}

// NewCertificationRepository builds the adapter. Pass a pool or tx (Querier).
func NewCertificationRepository(q Querier) *CertificationRepo {
	return &CertificationRepo{q: q}
}

// Create persists a certification.
func (r *CertificationRepo) Create(ctx context.Context, c *entity.Certification) error {
	query := `
		INSERT INTO certifications (` + certificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Title, c.ClientID, c.IssuingBody, c.IssuedDate, c.ExpiryDate,
		c.Status, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert certification: %w", err)
	}
	return nil
}

// GetByID fetches a certification by ID. Returns (nil, nil) when missing.
func (r *CertificationRepo) GetByID(ctx context.Context, id string) (*entity.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications WHERE id = $1`
	c, err := scanCertification(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get certification: %w", err)
	}
	return c, nil
}

// List returns certifications ordered by expiry date, soonest first.
func (r *CertificationRepo) List(ctx context.Context, clientID string, limit, offset int) ([]*entity.Certification, error) {
	query := `
		SELECT ` + certificationColumns + ` FROM certifications
		WHERE ($1 = '' OR client_id = $1)
		ORDER BY expiry_date
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list certifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Certification
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan certification: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update rewrites a certification row.
func (r *CertificationRepo) Update(ctx context.Context, c *entity.Certification) error {
	query := `
		UPDATE certifications SET title = $2, issuing_body = $3, issued_date = $4,
			expiry_date = $5, status = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Title, c.IssuingBody, c.IssuedDate, c.ExpiryDate, c.Status, c.Notes, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update certification: %w", err)
	}
	return nil
}

// Delete removes a certification by ID.
func (r *CertificationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete certification: %w", err)
	}
	return nil
}

func scanCertification(row pgx.Row) (*entity.Certification, error) {
	var c entity.Certification
	err := row.Scan(
		&c.ID, &c.Title, &c.ClientID, &c.IssuingBody, &c.IssuedDate, &c.ExpiryDate,
		&c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
