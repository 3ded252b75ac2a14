// Package compliance tracks regulatory obligations, service anniversaries and
// client certifications. Stored statuses are user-set; display buckets come
// from domain/schedule at read time.
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

const dateLayout = "2006-01-02"

// EventUseCase CRUD over compliance events.
type EventUseCase struct {
	repo       repository.ComplianceEventRepository
	clientRepo repository.ClientRepository
	now        func() time.Time
}

// NewEventUseCase builds the use case.
func NewEventUseCase(repo repository.ComplianceEventRepository, clientRepo repository.ClientRepository) *EventUseCase {
	return &EventUseCase{repo: repo, clientRepo: clientRepo, now: time.Now}
}

// Create registers a compliance event with status pending.
func (uc *EventUseCase) Create(ctx context.Context, in dto.CreateComplianceEventRequest) (*dto.ComplianceEventResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := time.Parse(dateLayout, in.DueDate)
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
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	now := uc.now()
	event := &entity.ComplianceEvent{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		ClientID:    in.ClientID,
		DueDate:     dueDate,
		Status:      entity.ComplianceStatusPending,
		Priority:    priority,
		Notes:       in.Notes,
		DocumentIDs: in.DocumentIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return uc.toResponse(event, client.Name, now), nil
}

// GetByID fetches one event.
func (uc *EventUseCase) GetByID(ctx context.Context, id string) (*dto.ComplianceEventResponse, error) {
	event, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(event, uc.clientName(ctx, event.ClientID), uc.now()), nil
}

// List returns events filtered by status, client and priority, each bucketed
// against today.
func (uc *EventUseCase) List(ctx context.Context, status, clientID, priority string, page dto.PageRequest) ([]*dto.ComplianceEventResponse, error) {
	if !validate.OneOf(status,
		entity.ComplianceStatusPending, entity.ComplianceStatusInProgress,
		entity.ComplianceStatusCompleted, entity.ComplianceStatusOverdue) {
		return nil, domain.ErrInvalidInput
	}
	if !validate.OneOf(priority, entity.PriorityLow, entity.PriorityMedium, entity.PriorityHigh) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	list, err := uc.repo.List(ctx, repository.ComplianceFilter{
		Status:   status,
		ClientID: clientID,
		Priority: priority,
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return nil, err
	}
	now := uc.now()
	out := make([]*dto.ComplianceEventResponse, 0, len(list))
	for _, e := range list {
		out = append(out, uc.toResponse(e, uc.clientName(ctx, e.ClientID), now))
	}
	return out, nil
}

// Update applies an edit. A changed status must be a valid lifecycle move.
func (uc *EventUseCase) Update(ctx context.Context, id string, in dto.UpdateComplianceEventRequest) (*dto.ComplianceEventResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := time.Parse(dateLayout, in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	event, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != "" && in.Status != event.Status {
		if !entity.CanTransitionCompliance(event.Status, in.Status) {
			return nil, domain.ErrInvalidTransition
		}
		event.Status = in.Status
	}
	event.Title = in.Title
	event.Description = in.Description
	event.DueDate = dueDate
	if in.Priority != "" {
		event.Priority = in.Priority
	}
	event.Notes = in.Notes
	event.DocumentIDs = in.DocumentIDs
	event.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, event); err != nil {
		return nil, err
	}
	return uc.toResponse(event, uc.clientName(ctx, event.ClientID), uc.now()), nil
}

// Delete removes an event.
func (uc *EventUseCase) Delete(ctx context.Context, id string) error {
	event, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *EventUseCase) clientName(ctx context.Context, clientID string) string {
	if client, err := uc.clientRepo.GetByID(ctx, clientID); err == nil && client != nil {
		return client.Name
	}
	return ""
}

func (uc *EventUseCase) toResponse(e *entity.ComplianceEvent, clientName string, now time.Time) *dto.ComplianceEventResponse {
	return &dto.ComplianceEventResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		ClientID:     e.ClientID,
		ClientName:   clientName,
		DueDate:      e.DueDate.Format(dateLayout),
		DaysUntilDue: schedule.DaysUntil(e.DueDate, now),
		Bucket:       schedule.Bucket(e.DueDate, now),
		Status:       e.Status,
		Priority:     e.Priority,
		Notes:        e.Notes,
		DocumentIDs:  e.DocumentIDs,
		CreatedAt:    e.CreatedAt,
	}
}
