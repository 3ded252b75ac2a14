package documents_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanjiru-dev/consultpro-api/internal/application/documents"
	"github.com/wanjiru-dev/consultpro-api/internal/application/dto"
	"github.com/wanjiru-dev/consultpro-api/internal/domain"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes. recordingStorage counts calls so the tests can assert that validation
// failures never touch the bucket and that orphan objects are rolled back.
// ──────────────────────────────────────────────────────────────────────────────

type recordingStorage struct {
	uploads   []string
	deletes   []string
	signs     []string
	deleteErr error
}

func (s *recordingStorage) Upload(_ context.Context, key string, _ io.Reader) (string, error) {
	s.uploads = append(s.uploads, key)
	return "application/pdf", nil
}

func (s *recordingStorage) Delete(_ context.Context, key string) error {
	s.deletes = append(s.deletes, key)
	return s.deleteErr
}

func (s *recordingStorage) SignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	s.signs = append(s.signs, key)
	return "https://storage.example.com/" + key + "?sig=abc", nil
}

type fakeDocumentRepo struct {
	byID      map[string]*entity.Document
	createErr error
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{byID: map[string]*entity.Document{}}
}

func (r *fakeDocumentRepo) Create(_ context.Context, d *entity.Document) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *d
	r.byID[d.ID] = &cp
	return nil
}

func (r *fakeDocumentRepo) GetByID(_ context.Context, id string) (*entity.Document, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDocumentRepo) List(_ context.Context, filter repository.DocumentFilter) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range r.byID {
		if filter.Category != "" && d.Category != filter.Category {
			continue
		}
		if filter.ClientID != "" && d.ClientID != filter.ClientID {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeDocumentRepo) ListExpiringWithin(_ context.Context, _ int) ([]*entity.Document, error) {
	return nil, nil
}

func (r *fakeDocumentRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type fakeClientRepo struct {
	byID map[string]*entity.Client
}

func (r *fakeClientRepo) Create(_ context.Context, c *entity.Client) error   { return nil }
func (r *fakeClientRepo) Update(_ context.Context, c *entity.Client) error  { return nil }
func (r *fakeClientRepo) Delete(_ context.Context, id string) error         { return nil }
func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	return r.byID[id], nil
}
func (r *fakeClientRepo) GetByTaxID(_ context.Context, _ string) (*entity.Client, error) {
	return nil, nil
}
func (r *fakeClientRepo) List(_ context.Context, _ repository.ClientFilter) ([]*entity.Client, error) {
	return nil, nil
}
func (r *fakeClientRepo) CountLinkedRecords(_ context.Context, _ string) (int, error) {
	return 0, nil
}

const testClientID = "11111111-1111-1111-1111-111111111111"

func newTestSetup() (*documents.DocumentUseCase, *fakeDocumentRepo, *recordingStorage) {
	repo := newFakeDocumentRepo()
	storage := &recordingStorage{}
	clients := &fakeClientRepo{byID: map[string]*entity.Client{
		testClientID: {ID: testClientID, Name: "Unga Group", Status: entity.ClientStatusActive},
	}}
	uc := documents.NewDocumentUseCase(repo, clients, storage, 15*time.Minute)
	return uc, repo, storage
}

func validUpload() dto.UploadDocumentRequest {
	return dto.UploadDocumentRequest{
		Title:    "Engagement letter",
		Category: "contract",
		ClientID: testClientID,
		Tags:     "legal, signed",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Upload
// ──────────────────────────────────────────────────────────────────────────────

func TestUpload_StoresObjectAndMetadata(t *testing.T) {
	uc, repo, storage := newTestSetup()

	resp, err := uc.Upload(context.Background(), validUpload(),
		"letter.pdf", 2048, strings.NewReader("%PDF-1.7"), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "Engagement letter", resp.Title)
	assert.Equal(t, "application/pdf", resp.FileType)
	assert.Equal(t, int64(2048), resp.FileSize)
	assert.Equal(t, "Unga Group", resp.ClientName)
	assert.Equal(t, []string{"legal", "signed"}, resp.Tags)

	require.Len(t, storage.uploads, 1)
	assert.True(t, strings.HasPrefix(storage.uploads[0], "documents/"), "key: %s", storage.uploads[0])
	assert.True(t, strings.HasSuffix(storage.uploads[0], ".pdf"), "key keeps the extension: %s", storage.uploads[0])
	assert.Len(t, repo.byID, 1)
}

func TestUpload_MissingTitleNeverTouchesStorage(t *testing.T) {
	uc, repo, storage := newTestSetup()

	in := validUpload()
	in.Title = ""
	_, err := uc.Upload(context.Background(), in,
		"letter.pdf", 2048, strings.NewReader("%PDF-1.7"), "user-1")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, storage.uploads, "invalid metadata must be rejected before any storage write")
	assert.Empty(t, repo.byID)
}

func TestUpload_BadExpiryDateNeverTouchesStorage(t *testing.T) {
	uc, _, storage := newTestSetup()

	in := validUpload()
	in.ExpiresAt = "June 2026"
	_, err := uc.Upload(context.Background(), in,
		"letter.pdf", 2048, strings.NewReader("%PDF-1.7"), "user-1")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, storage.uploads)
}

func TestUpload_UnknownClientNeverTouchesStorage(t *testing.T) {
	uc, _, storage := newTestSetup()

	in := validUpload()
	in.ClientID = "22222222-2222-2222-2222-222222222222"
	_, err := uc.Upload(context.Background(), in,
		"letter.pdf", 2048, strings.NewReader("%PDF-1.7"), "user-1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, storage.uploads)
}

func TestUpload_MetadataFailureRollsBackObject(t *testing.T) {
	uc, repo, storage := newTestSetup()
	repo.createErr = errors.New("insert failed")

	_, err := uc.Upload(context.Background(), validUpload(),
		"letter.pdf", 2048, strings.NewReader("%PDF-1.7"), "user-1")
	require.Error(t, err)

	require.Len(t, storage.uploads, 1)
	require.Len(t, storage.deletes, 1)
	assert.Equal(t, storage.uploads[0], storage.deletes[0], "the uploaded object must be rolled back")
}

// ──────────────────────────────────────────────────────────────────────────────
// Download
// ──────────────────────────────────────────────────────────────────────────────

func TestDownloadURL_SignsTheStoredKey(t *testing.T) {
	uc, _, storage := newTestSetup()

	resp, err := uc.Upload(context.Background(), validUpload(),
		"letter.pdf", 2048, strings.NewReader("%PDF-1.7"), "user-1")
	require.NoError(t, err)

	url, err := uc.DownloadURL(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Contains(t, url, storage.uploads[0])
}

func TestDownloadURL_UnknownDocumentReturnsNotFound(t *testing.T) {
	uc, _, _ := newTestSetup()
	_, err := uc.DownloadURL(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_RemovesObjectAndMetadata(t *testing.T) {
	uc, repo, storage := newTestSetup()

	resp, err := uc.Upload(context.Background(), validUpload(),
		"letter.pdf", 2048, strings.NewReader("%PDF-1.7"), "user-1")
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), resp.ID))
	assert.Len(t, storage.deletes, 1)
	assert.Empty(t, repo.byID)
}

func TestDelete_ObjectDeleteFailureStillRemovesMetadata(t *testing.T) {
	uc, repo, storage := newTestSetup()

	resp, err := uc.Upload(context.Background(), validUpload(),
		"letter.pdf", 2048, strings.NewReader("%PDF-1.7"), "user-1")
	require.NoError(t, err)

	storage.deleteErr = errors.New("bucket unreachable")
	require.NoError(t, uc.Delete(context.Background(), resp.ID),
		"a failed object delete is tolerated")
	assert.Empty(t, repo.byID, "metadata must be removed regardless")
}
