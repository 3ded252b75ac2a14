package compliance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wanjiru-dev/consultpro-api/internal/application/dto"
	"github.com/wanjiru-dev/consultpro-api/internal/domain"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/repository"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/schedule"
	"github.com/wanjiru-dev/consultpro-api/pkg/validate"
)

// CertificationUseCase CRUD over client certifications.
type CertificationUseCase struct {
	repo       repository.CertificationRepository
	clientRepo repository.ClientRepository
	now        func() time.Time
}

// NewCertificationUseCase builds the use case.
func NewCertificationUseCase(repo repository.CertificationRepository, clientRepo repository.ClientRepository) *CertificationUseCase {
	return &CertificationUseCase{repo: repo, clientRepo: clientRepo, now: time.Now}
}

// Create registers a certification with status active.
func (uc *CertificationUseCase) Create(ctx context.Context, in dto.CreateCertificationRequest) (*dto.CertificationResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	issued, err := time.Parse(dateLayout, in.IssuedDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	expiry, err := time.Parse(dateLayout, in.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if expiry.Before(issued) {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	c := &entity.Certification{
		ID:          uuid.New().String(),
		Title:       in.Title,
		ClientID:    in.ClientID,
		IssuingBody: in.IssuingBody,
		IssuedDate:  issued,
		ExpiryDate:  expiry,
		Status:      entity.CertificationStatusActive,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return uc.toResponse(c, client.Name, now), nil
}

// GetByID fetches one certification.
func (uc *CertificationUseCase) GetByID(ctx context.Context, id string) (*dto.CertificationResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(c, uc.clientName(ctx, c.ClientID), uc.now()), nil
}

// List returns certifications, optionally for one client.
func (uc *CertificationUseCase) List(ctx context.Context, clientID string, page dto.PageRequest) ([]*dto.CertificationResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, clientID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	out := make([]*dto.CertificationResponse, 0, len(list))
	for _, c := range list {
		out = append(out, uc.toResponse(c, uc.clientName(ctx, c.ClientID), now))
	}
	return out, nil
}

// Update applies an edit. A changed status must be a valid lifecycle move.
func (uc *CertificationUseCase) Update(ctx context.Context, id string, in dto.UpdateCertificationRequest) (*dto.CertificationResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	issued, err := time.Parse(dateLayout, in.IssuedDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	expiry, err := time.Parse(dateLayout, in.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != "" && in.Status != c.Status {
		if !entity.CanTransitionCertification(c.Status, in.Status) {
			return nil, domain.ErrInvalidTransition
		}
		c.Status = in.Status
	}
	c.Title = in.Title
	c.IssuingBody = in.IssuingBody
	c.IssuedDate = issued
	c.ExpiryDate = expiry
	c.Notes = in.Notes
	c.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return uc.toResponse(c, uc.clientName(ctx, c.ClientID), uc.now()), nil
}

// Delete removes a certification.
func (uc *CertificationUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *CertificationUseCase) clientName(ctx context.Context, clientID string) string {
	if client, err := uc.clientRepo.GetByID(ctx, clientID); err == nil && client != nil {
		return client.Name
	}
	return ""
}

func (uc *CertificationUseCase) toResponse(c *entity.Certification, clientName string, now time.Time) *dto.CertificationResponse {
	return &dto.CertificationResponse{
		ID:           c.ID,
		Title:        c.Title,
		ClientID:     c.ClientID,
		ClientName:   clientName,
		IssuingBody:  c.IssuingBody,
		IssuedDate:   c.IssuedDate.Format(dateLayout),
		ExpiryDate:   c.ExpiryDate.Format(dateLayout),
		DaysToExpiry: schedule.DaysUntil(c.ExpiryDate, now),
		Bucket:       schedule.Bucket(c.ExpiryDate, now),
		Status:       c.Status,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
	}
}
