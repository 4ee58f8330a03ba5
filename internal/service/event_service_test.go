package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devraj326/Vedss/internal/dto"
	"github.com/Devraj326/Vedss/internal/models"
	appErrors "github.com/Devraj326/Vedss/pkg/errors"
)

type mockEventRepo struct {
	events    map[string]models.Event
	listCalls int
	err       error
}

func (m *mockEventRepo) List(ctx context.Context) ([]models.Event, error) {
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Event, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e)
	}
	return out, nil
}

func (m *mockEventRepo) FindByID(ctx context.Context, id string) (*models.Event, error) {
	if e, ok := m.events[id]; ok {
		return &e, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.Event) error {
	if m.err != nil {
		return m.err
	}
	if m.events == nil {
		m.events = make(map[string]models.Event)
	}
	if event.ID == "" {
		event.ID = "generated"
	}
	m.events[event.ID] = *event
	return nil
}

func (m *mockEventRepo) Update(ctx context.Context, event *models.Event) error {
	if _, ok := m.events[event.ID]; !ok {
		return sql.ErrNoRows
	}
	m.events[event.ID] = *event
	return nil
}

func (m *mockEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.events[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.events, id)
	return nil
}

type memoryCacheRepo struct {
	entries map[string][]byte
	sets    int
	deletes int
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	if _, ok := m.entries[key]; !ok {
		return appErrors.ErrCacheMiss
	}
	// Cached event lists decode into an empty slice; enough for hit detection.
	if events, ok := dest.(*[]models.Event); ok {
		*events = []models.Event{}
	}
	return nil
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.entries == nil {
		m.entries = make(map[string][]byte)
	}
	m.entries[key] = []byte("cached")
	m.sets++
	return nil
}

func (m *memoryCacheRepo) Delete(ctx context.Context, key string) error {
	delete(m.entries, key)
	m.deletes++
	return nil
}

func newTestCache(repo CacheRepository) *CacheService {
	return NewCacheService(repo, nil, time.Minute, nil, true)
}

func validEventRequest() dto.EventRequest {
	return dto.EventRequest{
		Title:    "Anniversary dinner",
		Date:     time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC),
		Time:     "19:00",
		Type:     "anniversary",
		Priority: "high",
	}
}

func TestEventServiceCreateAppliesDefaults(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewEventService(repo, nil, nil)

	req := validEventRequest()
	req.Type = ""
	req.Priority = ""
	event, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "other", event.Type)
	assert.Equal(t, "medium", event.Priority)
	assert.False(t, event.Notified, "new events start unnotified")
}

func TestEventServiceCreateValidation(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), dto.EventRequest{Title: "no date"})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestEventServiceListUsesCache(t *testing.T) {
	repo := &mockEventRepo{events: map[string]models.Event{"e1": {ID: "e1", Title: "Dinner"}}}
	cacheRepo := &memoryCacheRepo{}
	svc := NewEventService(repo, newTestCache(cacheRepo), nil)

	_, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, 1, cacheRepo.sets)

	_, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls, "second read must come from cache")
}

func TestEventServiceListWithoutCache(t *testing.T) {
	repo := &mockEventRepo{events: map[string]models.Event{"e1": {ID: "e1"}}}
	svc := NewEventService(repo, nil, nil)

	events, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestEventServiceUpdateInvalidatesCache(t *testing.T) {
	repo := &mockEventRepo{events: map[string]models.Event{"e1": {
		ID:        "e1",
		Title:     "old",
		Notified:  true,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}}}
	cacheRepo := &memoryCacheRepo{}
	svc := NewEventService(repo, newTestCache(cacheRepo), nil)

	updated, err := svc.Update(context.Background(), "e1", validEventRequest())
	require.NoError(t, err)

	assert.Equal(t, "Anniversary dinner", updated.Title)
	assert.False(t, updated.Notified, "full replace without echo clears the flag")
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), updated.CreatedAt)
	assert.Equal(t, 1, cacheRepo.deletes)
}

func TestEventServiceUpdateNotFound(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, nil, nil)

	_, err := svc.Update(context.Background(), "missing", validEventRequest())
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestEventServiceDelete(t *testing.T) {
	repo := &mockEventRepo{events: map[string]models.Event{"e1": {ID: "e1"}}}
	cacheRepo := &memoryCacheRepo{}
	svc := NewEventService(repo, newTestCache(cacheRepo), nil)

	require.NoError(t, svc.Delete(context.Background(), "e1"))
	assert.Empty(t, repo.events)
	assert.Equal(t, 1, cacheRepo.deletes)

	assert.ErrorIs(t, svc.Delete(context.Background(), "e1"), appErrors.ErrNotFound)
}

func TestEventServiceListRepoError(t *testing.T) {
	repo := &mockEventRepo{err: errors.New("connection refused")}
	svc := NewEventService(repo, nil, nil)

	_, err := svc.List(context.Background())
	assert.Error(t, err)
}
