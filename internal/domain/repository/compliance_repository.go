package repository

import (
	"context"

	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
)

// ComplianceFilter narrows compliance event listings.
type ComplianceFilter struct {
	Status   string
	ClientID string
	Priority string
	Limit    int
	Offset   int
}

// ComplianceEventRepository is the persistence port for ComplianceEvent.
type ComplianceEventRepository interface {
	Create(ctx context.Context, event *entity.ComplianceEvent) error
	GetByID(ctx context.Context, id string) (*entity.ComplianceEvent, error)
	List(ctx context.Context, filter ComplianceFilter) ([]*entity.ComplianceEvent, error)
	Update(ctx context.Context, event *entity.ComplianceEvent) error
	Delete(ctx context.Context, id string) error
}

// AnniversaryRepository is the persistence port for Anniversary.
type AnniversaryRepository interface {
	Create(ctx context.Context, a *entity.Anniversary) error
	GetByID(ctx context.Context, id string) (*entity.Anniversary, error)
	List(ctx context.Context, clientID string, limit, offset int) ([]*entity.Anniversary, error)
	Update(ctx context.Context, a *entity.Anniversary) error
	Delete(ctx context.Context, id string) error
}

// CertificationRepository is the persistence port for Certification.
type CertificationRepository interface {
	Create(ctx context.Context, c *entity.Certification) error
	GetByID(ctx context.Context, id string) (*entity.Certification, error)
	List(ctx context.Context, clientID string, limit, offset int) ([]*entity.Certification, error)
	Update(ctx context.Context, c *entity.Certification) error
	Delete(ctx context.Context, id string) error
}
