package repository

import (
	"context"

	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
)

// ClientFilter narrows client listings. Query matches name, email or tax id
// case-insensitively as a substring.
type ClientFilter struct {
	Query  string
	Status string
	Limit  int
	Offset int
}

// ClientRepository is the persistence port for Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	GetByTaxID(ctx context.Context, taxID string) (*entity.Client, error)
	List(ctx context.Context, filter ClientFilter) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) error
	// CountLinkedRecords returns the number of documents, invoices, projects,
	// compliance events, anniversaries and certifications referencing the client.
	CountLinkedRecords(ctx context.Context, id string) (int, error)
}
