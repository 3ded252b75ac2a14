// Package documents implements the document repository: binary uploads to
// object storage plus a metadata row per file.
package documents

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/wanjiru-dev/consultpro-api/internal/application/dto"
	"github.com/wanjiru-dev/consultpro-api/internal/domain"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/repository"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/schedule"
	"github.com/wanjiru-dev/consultpro-api/pkg/validate"
)

// DocumentUseCase upload, listing, download links and deletion.
type DocumentUseCase struct {
	repo       repository.DocumentRepository
	clientRepo repository.ClientRepository
	storage    ObjectStorage
	signedTTL  time.Duration
}

// NewDocumentUseCase builds the use case.
func NewDocumentUseCase(
	repo repository.DocumentRepository,
	clientRepo repository.ClientRepository,
	storage ObjectStorage,
	signedTTL time.Duration,
) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, clientRepo: clientRepo, storage: storage, signedTTL: signedTTL}
}

// Upload validates metadata first, then writes the binary to object storage and
// persists the metadata row referencing the storage key. Nothing touches
// storage until the request passes validation.
func (uc *DocumentUseCase) Upload(
	ctx context.Context,
	in dto.UploadDocumentRequest,
	fileName string,
	fileSize int64,
	file io.Reader,
	uploadedBy string,
) (*dto.DocumentResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if fileName == "" || file == nil {
		return nil, domain.ErrInvalidInput
	}
	var expiresAt *time.Time
	if in.ExpiresAt != "" {
		t, err := time.Parse("2006-01-02", in.ExpiresAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		expiresAt = &t
	}
	if in.ClientID != "" {
		client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrNotFound
		}
	}

	id := uuid.New().String()
	key := fmt.Sprintf("documents/%s%s", id, strings.ToLower(filepath.Ext(fileName)))
	contentType, err := uc.storage.Upload(ctx, key, file)
	if err != nil {
		return nil, fmt.Errorf("upload object: %w", err)
	}

	now := time.Now()
	doc := &entity.Document{
		ID:              id,
		Title:           in.Title,
		Description:     in.Description,
		FileName:        fileName,
		StorageKey:      key,
		FileType:        contentType,
		FileSize:        fileSize,
		Category:        in.Category,
		ClientID:        in.ClientID,
		ProjectID:       in.ProjectID,
		InvoiceID:       in.InvoiceID,
		SubcontractorID: in.SubcontractorID,
		ExpiresAt:       expiresAt,
		Tags:            splitTags(in.Tags),
		UploadedBy:      uploadedBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, doc); err != nil {
		// The object is already in the bucket; roll it back so validation
		// failures in the DB do not leak orphan objects.
		if delErr := uc.storage.Delete(ctx, key); delErr != nil {
			log.Warn().Err(delErr).Str("key", key).Msg("orphan object left after metadata insert failure")
		}
		return nil, err
	}
	return uc.toResponse(ctx, doc, time.Now()), nil
}

// List returns documents, optionally filtered by category and client, each
// enriched with the owning client's display name.
func (uc *DocumentUseCase) List(ctx context.Context, category, clientID string, page dto.PageRequest) ([]*dto.DocumentResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, repository.DocumentFilter{
		Category: category,
		ClientID: clientID,
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]*dto.DocumentResponse, 0, len(list))
	for _, d := range list {
		out = append(out, uc.toResponse(ctx, d, now))
	}
	return out, nil
}

// DownloadURL returns a signed, time-limited link to the stored object.
func (uc *DocumentUseCase) DownloadURL(ctx context.Context, id string) (string, error) {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if doc == nil {
		return "", domain.ErrNotFound
	}
	return uc.storage.SignedURL(ctx, doc.StorageKey, uc.signedTTL)
}

// Delete removes the stored object best-effort, then always removes the
// metadata row. A failed object delete is logged and tolerated.
func (uc *DocumentUseCase) Delete(ctx context.Context, id string) error {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	if err := uc.storage.Delete(ctx, doc.StorageKey); err != nil {
		log.Warn().Err(err).Str("key", doc.StorageKey).Msg("object delete failed, removing metadata anyway")
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *DocumentUseCase) toResponse(ctx context.Context, d *entity.Document, now time.Time) *dto.DocumentResponse {
	resp := &dto.DocumentResponse{
		ID:              d.ID,
		Title:           d.Title,
		Description:     d.Description,
		FileName:        d.FileName,
		FileType:        d.FileType,
		FileSize:        d.FileSize,
		Category:        d.Category,
		ClientID:        d.ClientID,
		ProjectID:       d.ProjectID,
		InvoiceID:       d.InvoiceID,
		SubcontractorID: d.SubcontractorID,
		ExpiresAt:       d.ExpiresAt,
		Tags:            d.Tags,
		UploadedBy:      d.UploadedBy,
		CreatedAt:       d.CreatedAt,
	}
	if d.ExpiresAt != nil {
		resp.ExpiryBucket = schedule.Bucket(*d.ExpiresAt, now)
	}
	if d.ClientID != "" {
		if client, err := uc.clientRepo.GetByID(ctx, d.ClientID); err == nil && client != nil {
			resp.ClientName = client.Name
		}
	}
	return resp
}

func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
