package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Devraj326/Vedss/internal/dto"
	"github.com/Devraj326/Vedss/internal/models"
	appErrors "github.com/Devraj326/Vedss/pkg/errors"
)

const defaultNoteColor = "#FFB6C1"

type noteRepository interface {
	List(ctx context.Context) ([]models.Note, error)
	FindByID(ctx context.Context, id string) (*models.Note, error)
	Create(ctx context.Context, note *models.Note) error
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id string) error
}

// NoteService implements note CRUD.
type NoteService struct {
	repo noteRepository
}

// NewNoteService constructs a NoteService.
func NewNoteService(repo noteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// List returns notes newest first.
func (s *NoteService) List(ctx context.Context) ([]models.Note, error) {
	return s.repo.List(ctx)
}

// Create validates and stores a new note.
func (s *NoteService) Create(ctx context.Context, req dto.NoteRequest) (*models.Note, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	note := &models.Note{
		Title:   req.Title,
		Content: req.Content,
		Type:    defaultString(req.Type, "other"),
		Tags:    req.Tags,
		Color:   defaultString(req.Color, defaultNoteColor),
		Pinned:  req.Pinned,
		Mood:    defaultString(req.Mood, "happy"),
	}
	if err := s.repo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Update replaces the whole note record.
func (s *NoteService) Update(ctx context.Context, id string, req dto.NoteRequest) (*models.Note, error) {
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

	note := &models.Note{
		ID:        id,
		Title:     req.Title,
		Content:   req.Content,
		Type:      defaultString(req.Type, "other"),
		Tags:      req.Tags,
		Color:     defaultString(req.Color, defaultNoteColor),
		Pinned:    req.Pinned,
		Mood:      defaultString(req.Mood, "happy"),
		CreatedAt: existing.CreatedAt,
	}
	if err := s.repo.Update(ctx, note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		return nil, err
	}
	return note, nil
}

// Delete removes a note.
func (s *NoteService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.ErrNotFound
		}
		return err
	}
	return nil
}
