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

type studyService interface {
	List(ctx context.Context) ([]models.StudyItem, error)
	Create(ctx context.Context, req dto.StudyItemRequest) (*models.StudyItem, error)
	Update(ctx context.Context, id string, req dto.StudyItemRequest) (*models.StudyItem, error)
	Delete(ctx context.Context, id string) error
}

// StudyHandler exposes the /study endpoints.
type StudyHandler struct {
	service studyService
}

// NewStudyHandler constructs the handler.
func NewStudyHandler(service studyService) *StudyHandler {
	return &StudyHandler{service: service}
}

// List godoc
// @Summary List study items
// @Tags Study
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /study [get]
func (h *StudyHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Create godoc
// @Summary Create a study item
// @Tags Study
// @Accept json
// @Produce json
// @Param payload body dto.StudyItemRequest true "Study item"
// @Success 201 {object} response.Envelope
// @Router /study [post]
func (h *StudyHandler) Create(c *gin.Context) {
	var req dto.StudyItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid study item payload"))
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// @Summary Replace a study item
// @Tags Study
// @Accept json
// @Produce json
// @Param id path string true "Study item ID"
// @Param payload body dto.StudyItemRequest true "Study item"
// @Success 200 {object} response.Envelope
// @Router /study/{id} [put]
func (h *StudyHandler) Update(c *gin.Context) {
	var req dto.StudyItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid study item payload"))
		return
	}

	item, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Delete godoc
// @Summary Delete a study item
// @Tags Study
// @Param id path string true "Study item ID"
// @Success 204
// @Router /study/{id} [delete]
func (h *StudyHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
