package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/Devraj326/Vedss/internal/dto"
	"github.com/Devraj326/Vedss/internal/models"
	appErrors "github.com/Devraj326/Vedss/pkg/errors"
)

type photoRepository interface {
	List(ctx context.Context) ([]models.Photo, error)
	FindByID(ctx context.Context, id string) (*models.Photo, error)
	Create(ctx context.Context, photo *models.Photo) error
	Update(ctx context.Context, photo *models.Photo) error
	Delete(ctx context.Context, id string) error
}

type uploadStore interface {
	SaveStream(originalName string, r io.Reader) (string, int64, error)
	Delete(filename string) error
}

// PhotoService implements the gallery: metadata CRUD plus the upload
// pipeline writing image files to local storage.
type PhotoService struct {
	repo        photoRepository
	store       uploadStore
	maxFileSize int64
	logger      *zap.Logger
}

// NewPhotoService constructs a PhotoService.
func NewPhotoService(repo photoRepository, store uploadStore, maxFileSize int64, logger *zap.Logger) *PhotoService {
	if maxFileSize <= 0 {
		maxFileSize = 10 * 1024 * 1024
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PhotoService{repo: repo, store: store, maxFileSize: maxFileSize, logger: logger}
}

// List returns photos newest first.
func (s *PhotoService) List(ctx context.Context) ([]models.Photo, error) {
	return s.repo.List(ctx)
}

// Upload validates and stores an uploaded image plus its metadata record.
// Only image content types are accepted.
func (s *PhotoService) Upload(ctx context.Context, meta dto.PhotoMetadata, originalName, contentType string, size int64, r io.Reader) (*models.Photo, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, appErrors.Clone(appErrors.ErrUnsupported, "only image files are allowed")
	}
	if size > s.maxFileSize {
		return nil, appErrors.ErrPayloadTooBig
	}

	filename, written, err := s.store.SaveStream(originalName, io.LimitReader(r, s.maxFileSize+1))
	if err != nil {
		return nil, err
	}
	if written > s.maxFileSize {
		_ = s.store.Delete(filename)
		return nil, appErrors.ErrPayloadTooBig
	}

	photo := &models.Photo{
		Title:        defaultString(meta.Title, "Untitled"),
		Description:  meta.Description,
		Filename:     filename,
		OriginalName: originalName,
		Size:         written,
	}
	if err := s.repo.Create(ctx, photo); err != nil {
		// Orphaned files are worse than a failed request.
		_ = s.store.Delete(filename)
		return nil, err
	}
	return photo, nil
}

// Update edits gallery metadata without touching the stored file.
func (s *PhotoService) Update(ctx context.Context, id string, req dto.PhotoUpdateRequest) (*models.Photo, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	photo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		return nil, err
	}

	photo.Title = req.Title
	photo.Description = req.Description
	photo.Tags = req.Tags
	photo.Favorite = req.Favorite
	if err := s.repo.Update(ctx, photo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		return nil, err
	}
	return photo, nil
}

// Delete removes the metadata record and the stored file.
func (s *PhotoService) Delete(ctx context.Context, id string) error {
	photo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.ErrNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.ErrNotFound
		}
		return err
	}

	if err := s.store.Delete(photo.Filename); err != nil {
		// The record is already gone; losing the file cleanup is logged, not fatal.
		s.logger.Warn("failed to delete stored photo file",
			zap.String("photo_id", id),
			zap.String("filename", photo.Filename),
			zap.Error(err),
		)
	}
	return nil
}
