package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/repository"
)

var _ repository.AnniversaryRepository = (*AnniversaryRepo)(nil)

const anniversaryColumns = `id, title, client_id, last_service_date, frequency_months,
	status, notes, created_at, updated_at`

// AnniversaryRepo implements AnniversaryRepository.
type AnniversaryRepo struct {
	q Querier
}

// NewAnniversaryRepository builds the adapter. Pass a pool or tx (Querier).
func NewAnniversaryRepository(q Querier) *AnniversaryRepo {
	return &AnniversaryRepo{q: q}
}

// Create persists an anniversary.
func (r *AnniversaryRepo) Create(ctx context.Context, a *entity.Anniversary) error {
	query := `
		INSERT INTO anniversaries (` + anniversaryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Title, a.ClientID, a.LastServiceDate, a.FrequencyMonths,
		a.Status, a.Notes, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert anniversary: %w", err)
	}
	return nil
}

// GetByID fetches an anniversary by ID. Returns (nil, nil) when missing.
func (r *AnniversaryRepo) GetByID(ctx context.Context, id string) (*entity.Anniversary, error) {
	query := `SELECT ` + anniversaryColumns + ` FROM anniversaries WHERE id = $1`
	a, err := scanAnniversary(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get anniversary: %w", err)
	}
	return a, nil
}

// List returns anniversaries ordered by the derived next service date.
func (r *AnniversaryRepo) List(ctx context.Context, clientID string, limit, offset int) ([]*entity.Anniversary, error) {
	query := `
		SELECT ` + anniversaryColumns + ` FROM anniversaries
		WHERE ($1 = '' OR client_id = $1)
		ORDER BY last_service_date + make_interval(months => frequency_months)
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list anniversaries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Anniversary
	for rows.Next() {
		a, err := scanAnniversary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan anniversary: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Update rewrites an anniversary row.
func (r *AnniversaryRepo) Update(ctx context.Context, a *entity.Anniversary) error {
	query := `
		UPDATE anniversaries SET title = $2, last_service_date = $3, frequency_months = $4,
			status = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Title, a.LastServiceDate, a.FrequencyMonths, a.Status, a.Notes, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update anniversary: %w", err)
	}
	return nil
}

// Delete removes an anniversary by ID.
func (r *AnniversaryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM anniversaries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete anniversary: %w", err)
	}
	return nil
}

func scanAnniversary(row pgx.Row) (*entity.Anniversary, error) {
	var a entity.Anniversary
	err := row.Scan(
		&a.ID, &a.Title, &a.ClientID, &a.LastServiceDate, &a.FrequencyMonths,
		&a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
