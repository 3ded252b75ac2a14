package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

const projectColumns = `id, title, client_id, start_date, end_date, status,
	completion_percent, value, created_at, updated_at`

// ProjectRepo implements ProjectRepository. Subcontractor links live in the
// project_subcontractors table and are replaced wholesale on assignment.
type ProjectRepo struct {
	q      Querier
	runner *TxRunner
}

// NewProjectRepository builds the adapter over the pool.
func NewProjectRepository(q Querier, runner *TxRunner) *ProjectRepo {
	return &ProjectRepo{q: q, runner: runner}
}

// Create persists a project.
func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Title, p.ClientID, p.StartDate, p.EndDate, p.Status,
		p.CompletionPercent, p.Value, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID fetches a project with its subcontractor links. Returns (nil, nil)
// when missing.
func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	if err := r.loadSubcontractors(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns projects newest first. Subcontractor links are loaded per row.
func (r *ProjectRepo) List(ctx context.Context, filter repository.ProjectFilter) ([]*entity.Project, error) {
	query := `
		SELECT ` + projectColumns + ` FROM projects
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR client_id = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, filter.Status, filter.ClientID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range list {
		if err := r.loadSubcontractors(ctx, p); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update rewrites a project row.
func (r *ProjectRepo) Update(ctx context.Context, p *entity.Project) error {
	query := `
		UPDATE projects SET title = $2, start_date = $3, end_date = $4, status = $5,
			completion_percent = $6, value = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Title, p.StartDate, p.EndDate, p.Status,
		p.CompletionPercent, p.Value, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes a project and its subcontractor links in one transaction.
func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	return r.runner.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, `DELETE FROM project_subcontractors WHERE project_id = $1`, id); err != nil {
			return fmt.Errorf("delete project links: %w", err)
		}
		if _, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		return nil
	})
}

// SetSubcontractors replaces the project's subcontractor assignments.
func (r *ProjectRepo) SetSubcontractors(ctx context.Context, projectID string, subcontractorIDs []string) error {
	return r.runner.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, `DELETE FROM project_subcontractors WHERE project_id = $1`, projectID); err != nil {
			return fmt.Errorf("clear project links: %w", err)
		}
		for _, sid := range subcontractorIDs {
			_, err := q.Exec(ctx,
				`INSERT INTO project_subcontractors (project_id, subcontractor_id) VALUES ($1, $2)`,
				projectID, sid,
			)
			if err != nil {
				return fmt.Errorf("link subcontractor %s: %w", sid, err)
			}
		}
		return nil
	})
}

func (r *ProjectRepo) loadSubcontractors(ctx context.Context, p *entity.Project) error {
	rows, err := r.q.Query(ctx,
		`SELECT subcontractor_id FROM project_subcontractors WHERE project_id = $1 ORDER BY subcontractor_id`,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("load project links: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scan project link: %w", err)
		}
		p.SubcontractorIDs = append(p.SubcontractorIDs, id)
	}
	return rows.Err()
}

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.ClientID, &p.StartDate, &p.EndDate, &p.Status,
		&p.CompletionPercent, &p.Value, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
