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

// AnniversaryUseCase CRUD over recurring service anniversaries.
type AnniversaryUseCase struct {
	repo       repository.AnniversaryRepository
	clientRepo repository.ClientRepository
	now        func() time.Time
}

// NewAnniversaryUseCase builds the use case.
func NewAnniversaryUseCase(repo repository.AnniversaryRepository, clientRepo repository.ClientRepository) *AnniversaryUseCase {
	return &AnniversaryUseCase{repo: repo, clientRepo: clientRepo, now: time.Now}
}

// Create registers an anniversary with status upcoming.
func (uc *AnniversaryUseCase) Create(ctx context.Context, in dto.CreateAnniversaryRequest) (*dto.AnniversaryResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	last, err := time.Parse(dateLayout, in.LastServiceDate)
	if err != nil {
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
	a := &entity.Anniversary{
		ID:              uuid.New().String(),
		Title:           in.Title,
		ClientID:        in.ClientID,
		LastServiceDate: last,
		FrequencyMonths: in.FrequencyMonths,
		Status:          entity.AnniversaryStatusUpcoming,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return uc.toResponse(a, client.Name, now), nil
}

// GetByID fetches one anniversary.
func (uc *AnniversaryUseCase) GetByID(ctx context.Context, id string) (*dto.AnniversaryResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(a, uc.clientName(ctx, a.ClientID), uc.now()), nil
}

// List returns anniversaries, optionally for one client.
func (uc *AnniversaryUseCase) List(ctx context.Context, clientID string, page dto.PageRequest) ([]*dto.AnniversaryResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, clientID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	out := make([]*dto.AnniversaryResponse, 0, len(list))
	for _, a := range list {
		out = append(out, uc.toResponse(a, uc.clientName(ctx, a.ClientID), now))
	}
	return out, nil
}

// Update applies an edit. A changed status must be a valid lifecycle move;
// marking a celebrated cycle upcoming again typically follows a new service
// date.
func (uc *AnniversaryUseCase) Update(ctx context.Context, id string, in dto.UpdateAnniversaryRequest) (*dto.AnniversaryResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	last, err := time.Parse(dateLayout, in.LastServiceDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != "" && in.Status != a.Status {
		if !entity.CanTransitionAnniversary(a.Status, in.Status) {
			return nil, domain.ErrInvalidTransition
		}
		a.Status = in.Status
	}
	a.Title = in.Title
	a.LastServiceDate = last
	a.FrequencyMonths = in.FrequencyMonths
	a.Notes = in.Notes
	a.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return uc.toResponse(a, uc.clientName(ctx, a.ClientID), uc.now()), nil
}

// Delete removes an anniversary.
func (uc *AnniversaryUseCase) Delete(ctx context.Context, id string) error {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *AnniversaryUseCase) clientName(ctx context.Context, clientID string) string {
	if client, err := uc.clientRepo.GetByID(ctx, clientID); err == nil && client != nil {
		return client.Name
	}
	return ""
}

func (uc *AnniversaryUseCase) toResponse(a *entity.Anniversary, clientName string, now time.Time) *dto.AnniversaryResponse {
	next := a.NextServiceDate()
	return &dto.AnniversaryResponse{
		ID:              a.ID,
		Title:           a.Title,
		ClientID:        a.ClientID,
		ClientName:      clientName,
		LastServiceDate: a.LastServiceDate.Format(dateLayout),
		FrequencyMonths: a.FrequencyMonths,
		NextServiceDate: next.Format(dateLayout),
		DaysUntilDue:    schedule.DaysUntil(next, now),
		Bucket:          schedule.Bucket(next, now),
		Status:          a.Status,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
	}
}
