// Package projects holds the project and subcontractor use cases.
package projects

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

const dateLayout = "2006-01-02"

// ProjectUseCase CRUD over projects and their subcontractor links.
type ProjectUseCase struct {
	repo       repository.ProjectRepository
	subRepo    repository.SubcontractorRepository
	clientRepo repository.ClientRepository
}

// NewProjectUseCase builds the use case.
func NewProjectUseCase(
	repo repository.ProjectRepository,
	subRepo repository.SubcontractorRepository,
	clientRepo repository.ClientRepository,
) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, subRepo: subRepo, clientRepo: clientRepo}
}

// Create registers a project with status active and 0% completion.
func (uc *ProjectUseCase) Create(ctx context.Context, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var end *time.Time
	if in.EndDate != "" {
		t, err := time.Parse(dateLayout, in.EndDate)
		if err != nil || t.Before(start) {
			return nil, domain.ErrInvalidInput
		}
		end = &t
	}
	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkSubcontractors(ctx, in.SubcontractorIDs); err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Project{
		ID:               uuid.New().String(),
		Title:            in.Title,
		ClientID:         in.ClientID,
		StartDate:        start,
		EndDate:          end,
		Status:           entity.ProjectStatusActive,
		Value:            in.Value,
		SubcontractorIDs: in.SubcontractorIDs,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if len(p.SubcontractorIDs) > 0 {
		if err := uc.repo.SetSubcontractors(ctx, p.ID, p.SubcontractorIDs); err != nil {
			return nil, err
		}
	}
	return toProjectResponse(p, client.Name), nil
}

// GetByID fetches one project.
func (uc *ProjectUseCase) GetByID(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProjectResponse(p, uc.clientName(ctx, p.ClientID)), nil
}

// List returns projects filtered by status and client.
func (uc *ProjectUseCase) List(ctx context.Context, status, clientID string, page dto.PageRequest) ([]*dto.ProjectResponse, error) {
	if !validate.OneOf(status,
		entity.ProjectStatusActive, entity.ProjectStatusCompleted,
		entity.ProjectStatusOnHold, entity.ProjectStatusCancelled) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	list, err := uc.repo.List(ctx, repository.ProjectFilter{
		Status:   status,
		ClientID: clientID,
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProjectResponse(p, uc.clientName(ctx, p.ClientID)))
	}
	return out, nil
}

// Update applies an edit, replacing the subcontractor links.
func (uc *ProjectUseCase) Update(ctx context.Context, id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var end *time.Time
	if in.EndDate != "" {
		t, err := time.Parse(dateLayout, in.EndDate)
		if err != nil || t.Before(start) {
			return nil, domain.ErrInvalidInput
		}
		end = &t
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkSubcontractors(ctx, in.SubcontractorIDs); err != nil {
		return nil, err
	}
	p.Title = in.Title
	p.StartDate = start
	p.EndDate = end
	if in.Status != "" {
		p.Status = in.Status
	}
	p.CompletionPercent = in.CompletionPercent
	p.Value = in.Value
	p.SubcontractorIDs = in.SubcontractorIDs
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if err := uc.repo.SetSubcontractors(ctx, p.ID, p.SubcontractorIDs); err != nil {
		return nil, err
	}
	return toProjectResponse(p, uc.clientName(ctx, p.ClientID)), nil
}

// Delete removes a project and its subcontractor links.
func (uc *ProjectUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProjectUseCase) checkSubcontractors(ctx context.Context, ids []string) error {
	for _, id := range ids {
		sub, err := uc.subRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if sub == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (uc *ProjectUseCase) clientName(ctx context.Context, clientID string) string {
	if client, err := uc.clientRepo.GetByID(ctx, clientID); err == nil && client != nil {
		return client.Name
	}
	return ""
}

func toProjectResponse(p *entity.Project, clientName string) *dto.ProjectResponse {
	resp := &dto.ProjectResponse{
		ID:                p.ID,
		Title:             p.Title,
		ClientID:          p.ClientID,
		ClientName:        clientName,
		StartDate:         p.StartDate.Format(dateLayout),
		Status:            p.Status,
		CompletionPercent: p.CompletionPercent,
		Value:             p.Value,
		SubcontractorIDs:  p.SubcontractorIDs,
		CreatedAt:         p.CreatedAt,
	}
	if p.EndDate != nil {
		resp.EndDate = p.EndDate.Format(dateLayout)
	}
	return resp
}
