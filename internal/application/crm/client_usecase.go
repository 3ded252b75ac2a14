// Package crm holds the client-directory use cases.
package crm

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wanjiru-dev/consultpro-api/internal/application/dto"
	"github.com/wanjiru-dev/consultpro-api/internal/domain"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/repository"
	"github.com/wanjiru-dev/consultpro-api/pkg/validate"
)

// ClientUseCase CRUD and search over the client directory.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase builds the use case.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create registers a new client. Tax ids are unique across the directory.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByTaxID(ctx, in.TaxID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Industry:      in.Industry,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		Website:       in.Website,
		TaxID:         in.TaxID,
		Status:        entity.ClientStatusActive,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID fetches one client.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List searches the directory. The query matches name, email or tax id as a
// case-insensitive substring.
func (uc *ClientUseCase) List(ctx context.Context, query, status string, page dto.PageRequest) ([]*dto.ClientResponse, error) {
	if !validate.OneOf(status, entity.ClientStatusActive, entity.ClientStatusInactive) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	list, err := uc.repo.List(ctx, repository.ClientFilter{
		Query:  query,
		Status: status,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Update applies an admin edit to a client.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.TaxID != client.TaxID {
		existing, _ := uc.repo.GetByTaxID(ctx, in.TaxID)
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	client.Name = in.Name
	client.Industry = in.Industry
	client.ContactPerson = in.ContactPerson
	client.Email = in.Email
	client.Phone = in.Phone
	client.Address = in.Address
	client.Website = in.Website
	client.TaxID = in.TaxID
	if in.Status != "" {
		client.Status = in.Status
	}
	client.LastServiceDate = in.LastServiceDate
	client.LastServiceDesc = in.LastServiceDesc
	client.Notes = in.Notes
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete removes a client. The delete is refused with ErrClientInUse while
// documents, invoices, projects or tracked events still reference the client.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	linked, err := uc.repo.CountLinkedRecords(ctx, id)
	if err != nil {
		return err
	}
	if linked > 0 {
		return domain.ErrClientInUse
	}
	return uc.repo.Delete(ctx, id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:              c.ID,
		Name:            c.Name,
		Industry:        c.Industry,
		ContactPerson:   c.ContactPerson,
		Email:           c.Email,
		Phone:           c.Phone,
		Address:         c.Address,
		Website:         c.Website,
		TaxID:           c.TaxID,
		Status:          c.Status,
		LastServiceDate: c.LastServiceDate,
		LastServiceDesc: c.LastServiceDesc,
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
