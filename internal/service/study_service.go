package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Devraj326/Vedss/internal/dto"
	"github.com/Devraj326/Vedss/internal/models"
	appErrors "github.com/Devraj326/Vedss/pkg/errors"
)

type studyRepository interface {
	List(ctx context.Context) ([]models.StudyItem, error)
	FindByID(ctx context.Context, id string) (*models.StudyItem, error)
	Create(ctx context.Context, item *models.StudyItem) error
	Update(ctx context.Context, item *models.StudyItem) error
	Delete(ctx context.Context, id string) error
}

// StudyService implements study item CRUD.
type StudyService struct {
	repo studyRepository
}

// NewStudyService constructs a StudyService.
func NewStudyService(repo studyRepository) *StudyService {
	return &StudyService{repo: repo}
}

// List returns study items newest first.
func (s *StudyService) List(ctx context.Context) ([]models.StudyItem, error) {
	return s.repo.List(ctx)
}

// Create validates and stores a new study item.
func (s *StudyService) Create(ctx context.Context, req dto.StudyItemRequest) (*models.StudyItem, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	item := &models.StudyItem{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Subject:     req.Subject,
		Priority:    defaultString(req.Priority, "medium"),
		DueDate:     req.DueDate,
		Completed:   req.Completed,
		TimeSpent:   req.TimeSpent,
		Progress:    req.Progress,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update replaces the whole study item record.
func (s *StudyService) Update(ctx context.Context, id string, req dto.StudyItemRequest) (*models.StudyItem, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		return nil, err
	}

	item := &models.StudyItem{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Subject:     req.Subject,
		Priority:    defaultString(req.Priority, "medium"),
		DueDate:     req.DueDate,
		Completed:   req.Completed,
		TimeSpent:   req.TimeSpent,
		Progress:    req.Progress,
		CreatedAt:   existing.CreatedAt,
	}
	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// Delete removes a study item.
func (s *StudyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.ErrNotFound
		}
		return err
	}
	return nil
}
