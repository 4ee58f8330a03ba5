package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Devraj326/Vedss/internal/dto"
	"github.com/Devraj326/Vedss/internal/models"
	appErrors "github.com/Devraj326/Vedss/pkg/errors"
	"github.com/Devraj326/Vedss/pkg/response"
)

type eventService interface {
	List(ctx context.Context) ([]models.Event, error)
	Create(ctx context.Context, req dto.EventRequest) (*models.Event, error)
	Update(ctx context.Context, id string, req dto.EventRequest) (*models.Event, error)
	Delete(ctx context.Context, id string) error
}

// EventHandler exposes the /events endpoints.
type EventHandler struct {
	service eventService
}

// NewEventHandler constructs the handler.
func NewEventHandler(service eventService) *EventHandler {
	return &EventHandler{service: service}
}

// List godoc
// @Summary List calendar events
// @Tags Events
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events)
}

// Create godoc
// @Summary Create a calendar event
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body dto.EventRequest true "Event"
// @Success 201 {object} response.Envelope
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload"))
		return
	}

	event, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// Update godoc
// @Summary Replace a calendar event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param payload body dto.EventRequest true "Event"
// @Success 200 {object} response.Envelope
// @Router /events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload"))
		return
	}

	event, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete a calendar event
// @Tags Events
// @Param id path string true "Event ID"
// @Success 204
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
