package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devraj326/Vedss/internal/dto"
	"github.com/Devraj326/Vedss/internal/models"
	appErrors "github.com/Devraj326/Vedss/pkg/errors"
)

type mockPhotoRepo struct {
	photos    map[string]models.Photo
	createErr error
}

func (m *mockPhotoRepo) List(ctx context.Context) ([]models.Photo, error) {
	out := make([]models.Photo, 0, len(m.photos))
	for _, p := range m.photos {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockPhotoRepo) FindByID(ctx context.Context, id string) (*models.Photo, error) {
	if p, ok := m.photos[id]; ok {
		return &p, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockPhotoRepo) Create(ctx context.Context, photo *models.Photo) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.photos == nil {
		m.photos = make(map[string]models.Photo)
	}
	if photo.ID == "" {
		photo.ID = "generated"
	}
	m.photos[photo.ID] = *photo
	return nil
}

func (m *mockPhotoRepo) Update(ctx context.Context, photo *models.Photo) error {
	if _, ok := m.photos[photo.ID]; !ok {
		return sql.ErrNoRows
	}
	m.photos[photo.ID] = *photo
	return nil
}

func (m *mockPhotoRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.photos[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.photos, id)
	return nil
}

type mockUploadStore struct {
	saved     []string
	deleted   []string
	saveErr   error
	deleteErr error
}

func (m *mockUploadStore) SaveStream(originalName string, r io.Reader) (string, int64, error) {
	if m.saveErr != nil {
		return "", 0, m.saveErr
	}
	written, err := io.Copy(io.Discard, r)
	if err != nil {
		return "", 0, err
	}
	name := "stored-" + originalName
	m.saved = append(m.saved, name)
	return name, written, nil
}

func (m *mockUploadStore) Delete(filename string) error {
	m.deleted = append(m.deleted, filename)
	return m.deleteErr
}

func TestPhotoServiceUploadStoresFileAndRecord(t *testing.T) {
	repo := &mockPhotoRepo{}
	store := &mockUploadStore{}
	svc := NewPhotoService(repo, store, 1024, nil)

	photo, err := svc.Upload(context.Background(),
		dto.PhotoMetadata{Title: "Beach day", Description: "sunset"},
		"beach.jpg", "image/jpeg", 12, strings.NewReader("fake image b"))
	require.NoError(t, err)

	assert.Equal(t, "Beach day", photo.Title)
	assert.Equal(t, "stored-beach.jpg", photo.Filename)
	assert.Equal(t, "beach.jpg", photo.OriginalName)
	assert.EqualValues(t, 12, photo.Size)
	assert.Len(t, repo.photos, 1)
	assert.Empty(t, store.deleted)
}

func TestPhotoServiceUploadDefaultsTitle(t *testing.T) {
	svc := NewPhotoService(&mockPhotoRepo{}, &mockUploadStore{}, 1024, nil)

	photo, err := svc.Upload(context.Background(), dto.PhotoMetadata{},
		"x.png", "image/png", 1, strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "Untitled", photo.Title)
}

func TestPhotoServiceUploadRejectsNonImage(t *testing.T) {
	store := &mockUploadStore{}
	svc := NewPhotoService(&mockPhotoRepo{}, store, 1024, nil)

	_, err := svc.Upload(context.Background(), dto.PhotoMetadata{},
		"notes.pdf", "application/pdf", 10, strings.NewReader("%PDF"))
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrUnsupported.Code, appErr.Code)
	assert.Empty(t, store.saved, "nothing should hit disk")
}

func TestPhotoServiceUploadRejectsOversizedDeclaration(t *testing.T) {
	store := &mockUploadStore{}
	svc := NewPhotoService(&mockPhotoRepo{}, store, 8, nil)

	_, err := svc.Upload(context.Background(), dto.PhotoMetadata{},
		"big.jpg", "image/jpeg", 100, strings.NewReader("too big"))
	assert.ErrorIs(t, err, appErrors.ErrPayloadTooBig)
	assert.Empty(t, store.saved)
}

func TestPhotoServiceUploadRejectsOversizedStream(t *testing.T) {
	// Declared size lies; the stream itself overruns the cap.
	store := &mockUploadStore{}
	svc := NewPhotoService(&mockPhotoRepo{}, store, 8, nil)

	_, err := svc.Upload(context.Background(), dto.PhotoMetadata{},
		"big.jpg", "image/jpeg", 4, strings.NewReader(strings.Repeat("x", 64)))
	assert.ErrorIs(t, err, appErrors.ErrPayloadTooBig)
	assert.Equal(t, []string{"stored-big.jpg"}, store.deleted, "partial file must be removed")
}

func TestPhotoServiceUploadCleansUpOnRepoFailure(t *testing.T) {
	repo := &mockPhotoRepo{createErr: errors.New("insert failed")}
	store := &mockUploadStore{}
	svc := NewPhotoService(repo, store, 1024, nil)

	_, err := svc.Upload(context.Background(), dto.PhotoMetadata{},
		"beach.jpg", "image/jpeg", 5, strings.NewReader("image"))
	require.Error(t, err)
	assert.Equal(t, []string{"stored-beach.jpg"}, store.deleted)
}

func TestPhotoServiceUpdateMetadata(t *testing.T) {
	repo := &mockPhotoRepo{photos: map[string]models.Photo{"p1": {ID: "p1", Title: "old", Filename: "f.jpg"}}}
	svc := NewPhotoService(repo, &mockUploadStore{}, 1024, nil)

	photo, err := svc.Update(context.Background(), "p1", dto.PhotoUpdateRequest{
		Title:    "new",
		Tags:     []string{"us", "summer"},
		Favorite: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "new", photo.Title)
	assert.True(t, photo.Favorite)
	assert.Equal(t, "f.jpg", photo.Filename, "file reference untouched")
}

func TestPhotoServiceUpdateNotFound(t *testing.T) {
	svc := NewPhotoService(&mockPhotoRepo{}, &mockUploadStore{}, 1024, nil)

	_, err := svc.Update(context.Background(), "missing", dto.PhotoUpdateRequest{Title: "x"})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestPhotoServiceDeleteRemovesFile(t *testing.T) {
	repo := &mockPhotoRepo{photos: map[string]models.Photo{"p1": {ID: "p1", Filename: "f.jpg"}}}
	store := &mockUploadStore{}
	svc := NewPhotoService(repo, store, 1024, nil)

	require.NoError(t, svc.Delete(context.Background(), "p1"))
	assert.Empty(t, repo.photos)
	assert.Equal(t, []string{"f.jpg"}, store.deleted)
}

func TestPhotoServiceDeleteSurvivesFileError(t *testing.T) {
	repo := &mockPhotoRepo{photos: map[string]models.Photo{"p1": {ID: "p1", Filename: "f.jpg"}}}
	store := &mockUploadStore{deleteErr: errors.New("permission denied")}
	svc := NewPhotoService(repo, store, 1024, nil)

	assert.NoError(t, svc.Delete(context.Background(), "p1"), "record removal wins")
}
