package repository

import (
	"context"

	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
)

// DocumentFilter narrows document listings.
type DocumentFilter struct {
	Category string
	ClientID string
	Limit    int
	Offset   int
}

// DocumentRepository is the persistence port for Document metadata.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	GetByID(ctx context.Context, id string) (*entity.Document, error)
	List(ctx context.Context, filter DocumentFilter) ([]*entity.Document, error)
	ListExpiringWithin(ctx context.Context, days int) ([]*entity.Document, error)
	Delete(ctx context.Context, id string) error
}
