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

type noteService interface {
	List(ctx context.Context) ([]models.Note, error)
	Create(ctx context.Context, req dto.NoteRequest) (*models.Note, error)
	Update(ctx context.Context, id string, req dto.NoteRequest) (*models.Note, error)
	Delete(ctx context.Context, id string) error
}

// NoteHandler exposes the /notes endpoints.
type NoteHandler struct {
	service noteService
}

// NewNoteHandler constructs the handler.
func NewNoteHandler(service noteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// List godoc
// @Summary List notes
// @Tags Notes
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, notes)
}

// Create godoc
// @Summary Create a note
// @Tags Notes
// @Accept json
// @Produce json
// @Param payload body dto.NoteRequest true "Note"
// @Success 201 {object} response.Envelope
// @Router /notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid note payload"))
		return
	}

	note, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, note)
}

// Update godoc
// @Summary Replace a note
// @Tags Notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param payload body dto.NoteRequest true "Note"
// @Success 200 {object} response.Envelope
// @Router /notes/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid note payload"))
		return
	}

	note, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, note)
}

// Delete godoc
// @Summary Delete a note
// @Tags Notes
// @Param id path string true "Note ID"
// @Success 204
// @Router /notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
