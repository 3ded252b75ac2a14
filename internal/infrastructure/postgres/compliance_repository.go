package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/repository"
)

var _ repository.ComplianceEventRepository = (*ComplianceEventRepo)(nil)

const complianceColumns = `id, title, description, client_id, due_date, status, priority,
	notes, document_ids, created_at, updated_at`

// ComplianceEventRepo implements ComplianceEventRepository.
type ComplianceEventRepo struct {
	q Querier
}

// NewComplianceEventRepository builds the adapter. Pass a pool or tx (Querier).
func NewComplianceEventRepository(q Querier) *ComplianceEventRepo {
	return &ComplianceEventRepo{q: q}
}

// Create persists a compliance event.
func (r *ComplianceEventRepo) Create(ctx context.Context, e *entity.ComplianceEvent) error {
	query := `
		INSERT INTO compliance_events (` + complianceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Title, e.Description, e.ClientID, e.DueDate, e.Status, e.Priority,
		e.Notes, e.DocumentIDs, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert compliance event: %w", err)
	}
	return nil
}

// GetByID fetches an event by ID. Returns (nil, nil) when missing.
func (r *ComplianceEventRepo) GetByID(ctx context.Context, id string) (*entity.ComplianceEvent, error) {
	query := `SELECT ` + complianceColumns + ` FROM compliance_events WHERE id = $1`
	e, err := scanComplianceEvent(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compliance event: %w", err)
	}
	return e, nil
}

// List returns events ordered by due date, filtered by status, client and priority.
func (r *ComplianceEventRepo) List(ctx context.Context, f repository.ComplianceFilter) ([]*entity.ComplianceEvent, error) {
	query := `
		SELECT ` + complianceColumns + ` FROM compliance_events
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR client_id = $2)
		  AND ($3 = '' OR priority = $3)
		ORDER BY due_date LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(ctx, query, f.Status, f.ClientID, f.Priority, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list compliance events: %w", err)
	}
	defer rows.Close()
	var list []*entity.ComplianceEvent
	for rows.Next() {
		e, err := scanComplianceEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan compliance event: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update rewrites an event row.
func (r *ComplianceEventRepo) Update(ctx context.Context, e *entity.ComplianceEvent) error {
	query := `
		UPDATE compliance_events SET title = $2, description = $3, due_date = $4, status = $5,
			priority = $6, notes = $7, document_ids = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Title, e.Description, e.DueDate, e.Status, e.Priority, e.Notes, e.DocumentIDs, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update compliance event: %w", err)
	}
	return nil
}

// Delete removes an event by ID.
func (r *ComplianceEventRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM compliance_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete compliance event: %w", err)
	}
	return nil
}

func scanComplianceEvent(row pgx.Row) (*entity.ComplianceEvent, error) {
	var e entity.ComplianceEvent
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.ClientID, &e.DueDate, &e.Status, &e.Priority,
		&e.Notes, &e.DocumentIDs, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
