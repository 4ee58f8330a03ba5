package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/Devraj326/Vedss/internal/dto"
	"github.com/Devraj326/Vedss/internal/models"
	appErrors "github.com/Devraj326/Vedss/pkg/errors"
)

const eventListCacheKey = "vedss:events:list"

type eventRepository interface {
	List(ctx context.Context) ([]models.Event, error)
	FindByID(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
}

// EventService implements calendar event CRUD above the repository.
type EventService struct {
	repo   eventRepository
	cache  *CacheService
	logger *zap.Logger
}

// NewEventService constructs an EventService.
func NewEventService(repo eventRepository, cache *CacheService, logger *zap.Logger) *EventService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{repo: repo, cache: cache, logger: logger}
}

// List returns all events sorted by date, read through the cache when
// enabled.
func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	var cached []models.Event
	if hit, err := s.cache.Get(ctx, eventListCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, eventListCacheKey, events, 0)
	return events, nil
}

// Get fetches a single event.
func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

// Create validates and stores a new event.
func (s *EventService) Create(ctx context.Context, req dto.EventRequest) (*models.Event, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:         req.Title,
		Description:   req.Description,
		Date:          req.Date,
		EventTime:     req.Time,
		Type:          defaultString(req.Type, "other"),
		Priority:      defaultString(req.Priority, "medium"),
		Recurring:     req.Recurring,
		RecurringType: req.RecurringType,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx, eventListCacheKey)
	return event, nil
}

// Update replaces the whole event record, matching the client's edit form.
// Because the notified flag is part of the record, an edit that does not echo
// it back clears the flag and the event may be re-notified.
func (s *EventService) Update(ctx context.Context, id string, req dto.EventRequest) (*models.Event, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:            id,
		Title:         req.Title,
		Description:   req.Description,
		Date:          req.Date,
		EventTime:     req.Time,
		Type:          defaultString(req.Type, "other"),
		Priority:      defaultString(req.Priority, "medium"),
		Recurring:     req.Recurring,
		RecurringType: req.RecurringType,
		Notified:      req.Notified,
		CreatedAt:     existing.CreatedAt,
	}
	if err := s.repo.Update(ctx, event); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		return nil, err
	}
	_ = s.cache.Invalidate(ctx, eventListCacheKey)
	return event, nil
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.ErrNotFound
		}
		return err
	}
	_ = s.cache.Invalidate(ctx, eventListCacheKey)
	return nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
