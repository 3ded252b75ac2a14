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

var _ repository.SubcontractorRepository = (*SubcontractorRepo)(nil)

// Reads join the link table so ProjectCount comes back with every row.
const subcontractorSelect = `
	SELECT s.id, s.name, s.email, s.phone, s.specialty, s.status,
		(SELECT COUNT(*) FROM project_subcontractors ps WHERE ps.subcontractor_id = s.id) AS project_count,
		s.created_at, s.updated_at
	FROM subcontractors s`

// SubcontractorRepo implements SubcontractorRepository.
type SubcontractorRepo struct {
	q Querier
}

// NewSubcontractorRepository builds the adapter. Pass a pool or tx (Querier).
func NewSubcontractorRepository(q Querier) *SubcontractorRepo {
	return &SubcontractorRepo{q: q}
}

// Create persists a subcontractor. A duplicate email maps to ErrDuplicate.
func (r *SubcontractorRepo) Create(ctx context.Context, s *entity.Subcontractor) error {
	query := `
		INSERT INTO subcontractors (id, name, email, phone, specialty, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.Email, s.Phone, s.Specialty, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert subcontractor: %w", err)
	}
	return nil
}

// GetByID fetches a subcontractor by ID. Returns (nil, nil) when missing.
func (r *SubcontractorRepo) GetByID(ctx context.Context, id string) (*entity.Subcontractor, error) {
	s, err := scanSubcontractor(r.q.QueryRow(ctx, subcontractorSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcontractor: %w", err)
	}
	return s, nil
}

// List returns subcontractors ordered by name.
func (r *SubcontractorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Subcontractor, error) {
	rows, err := r.q.Query(ctx, subcontractorSelect+` ORDER BY s.name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list subcontractors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subcontractor
	for rows.Next() {
		s, err := scanSubcontractor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subcontractor: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update rewrites a subcontractor row.
func (r *SubcontractorRepo) Update(ctx context.Context, s *entity.Subcontractor) error {
	query := `
		UPDATE subcontractors SET name = $2, email = $3, phone = $4, specialty = $5,
			status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.Email, s.Phone, s.Specialty, s.Status, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update subcontractor: %w", err)
	}
	return nil
}

// Delete removes a subcontractor by ID.
func (r *SubcontractorRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM subcontractors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subcontractor: %w", err)
	}
	return nil
}

func scanSubcontractor(row pgx.Row) (*entity.Subcontractor, error) {
	var s entity.Subcontractor
	err := row.Scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.Specialty, &s.Status,
		&s.ProjectCount, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
