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

// SubcontractorUseCase CRUD over subcontractors.
type SubcontractorUseCase struct {
	repo repository.SubcontractorRepository
}

// NewSubcontractorUseCase builds the use case.
func NewSubcontractorUseCase(repo repository.SubcontractorRepository) *SubcontractorUseCase {
	return &SubcontractorUseCase{repo: repo}
}

// Create registers a subcontractor with status active.
func (uc *SubcontractorUseCase) Create(ctx context.Context, in dto.CreateSubcontractorRequest) (*dto.SubcontractorResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	s := &entity.Subcontractor{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Specialty: in.Specialty,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSubcontractorResponse(s), nil
}

// GetByID fetches one subcontractor with its project count.
func (uc *SubcontractorUseCase) GetByID(ctx context.Context, id string) (*dto.SubcontractorResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSubcontractorResponse(s), nil
}

// List returns subcontractors with project counts.
func (uc *SubcontractorUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.SubcontractorResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SubcontractorResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSubcontractorResponse(s))
	}
	return out, nil
}

// Update applies an edit.
func (uc *SubcontractorUseCase) Update(ctx context.Context, id string, in dto.UpdateSubcontractorRequest) (*dto.SubcontractorResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.Name = in.Name
	s.Email = in.Email
	s.Phone = in.Phone
	s.Specialty = in.Specialty
	if in.Status != "" {
		s.Status = in.Status
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toSubcontractorResponse(s), nil
}

// Delete removes a subcontractor. Refused while projects still link to it.
func (uc *SubcontractorUseCase) Delete(ctx context.Context, id string) error {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	if s.ProjectCount > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(ctx, id)
}

func toSubcontractorResponse(s *entity.Subcontractor) *dto.SubcontractorResponse {
	return &dto.SubcontractorResponse{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		Phone:        s.Phone,
		Specialty:    s.Specialty,
		Status:       s.Status,
		ProjectCount: s.ProjectCount,
		CreatedAt:    s.CreatedAt,
	}
}
