package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devraj326/Vedss/internal/dto"
	"github.com/Devraj326/Vedss/internal/models"
	appErrors "github.com/Devraj326/Vedss/pkg/errors"
)

type mockEventService struct {
	events    []models.Event
	created   *dto.EventRequest
	updatedID string
	deletedID string
	err       error
}

func (m *mockEventService) List(ctx context.Context) ([]models.Event, error) {
	return m.events, m.err
}

func (m *mockEventService) Create(ctx context.Context, req dto.EventRequest) (*models.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = &req
	return &models.Event{ID: "e1", Title: req.Title, Date: req.Date}, nil
}

func (m *mockEventService) Update(ctx context.Context, id string, req dto.EventRequest) (*models.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.updatedID = id
	return &models.Event{ID: id, Title: req.Title, Date: req.Date}, nil
}

func (m *mockEventService) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deletedID = id
	return nil
}

func buildEventRouter(svc eventService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewEventHandler(svc)
	router.GET("/events", h.List)
	router.POST("/events", h.Create)
	router.PUT("/events/:id", h.Update)
	router.DELETE("/events/:id", h.Delete)
	return router
}

func performRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestEventHandlerList(t *testing.T) {
	svc := &mockEventService{events: []models.Event{{ID: "e1", Title: "Dinner"}}}
	router := buildEventRouter(svc)

	req, _ := http.NewRequest(http.MethodGet, "/events", nil)
	resp := performRequest(router, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"Dinner"`)
}

func TestEventHandlerCreate(t *testing.T) {
	svc := &mockEventService{}
	router := buildEventRouter(svc)

	payload, _ := json.Marshal(dto.EventRequest{
		Title: "Movie night",
		Date:  time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC),
	})
	req, _ := http.NewRequest(http.MethodPost, "/events", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	require.Equal(t, http.StatusCreated, resp.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, "Movie night", svc.created.Title)
}

func TestEventHandlerCreateMalformedBody(t *testing.T) {
	router := buildEventRouter(&mockEventService{})

	req, _ := http.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(`{"title":`))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), appErrors.ErrValidation.Code)
}

func TestEventHandlerCreateServiceValidationError(t *testing.T) {
	svc := &mockEventService{err: appErrors.Clone(appErrors.ErrValidation, "date is required")}
	router := buildEventRouter(svc)

	req, _ := http.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(`{"title":"no date"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "date is required")
}

func TestEventHandlerUpdate(t *testing.T) {
	svc := &mockEventService{}
	router := buildEventRouter(svc)

	payload, _ := json.Marshal(dto.EventRequest{
		Title: "Updated",
		Date:  time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
	})
	req, _ := http.NewRequest(http.MethodPut, "/events/e1", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "e1", svc.updatedID)
}

func TestEventHandlerUpdateNotFound(t *testing.T) {
	svc := &mockEventService{err: appErrors.ErrNotFound}
	router := buildEventRouter(svc)

	payload, _ := json.Marshal(dto.EventRequest{Title: "x", Date: time.Now()})
	req, _ := http.NewRequest(http.MethodPut, "/events/missing", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestEventHandlerDelete(t *testing.T) {
	svc := &mockEventService{}
	router := buildEventRouter(svc)

	req, _ := http.NewRequest(http.MethodDelete, "/events/e1", nil)
	resp := performRequest(router, req)

	require.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, "e1", svc.deletedID)
}
