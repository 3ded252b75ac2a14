package repository

import (
	"context"

	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
)

// ProjectFilter narrows project listings.
type ProjectFilter struct {
	Status   string
	ClientID string
	Limit    int
	Offset   int
}

// ProjectRepository is the persistence port for Project.
type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]*entity.Project, error)
	Update(ctx context.Context, p *entity.Project) error
	Delete(ctx context.Context, id string) error
	SetSubcontractors(ctx context.Context, projectID string, subcontractorIDs []string) error
}

// SubcontractorRepository is the persistence port for Subcontractor.
// List and GetByID populate ProjectCount from the project link table.
type SubcontractorRepository interface {
	Create(ctx context.Context, s *entity.Subcontractor) error
	GetByID(ctx context.Context, id string) (*entity.Subcontractor, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Subcontractor, error)
	Update(ctx context.Context, s *entity.Subcontractor) error
	Delete(ctx context.Context, id string) error
}
