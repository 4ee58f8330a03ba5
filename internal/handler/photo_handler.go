package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Devraj326/Vedss/internal/dto"
	"github.com/Devraj326/Vedss/internal/models"
	appErrors "github.com/Devraj326/Vedss/pkg/errors"
	"github.com/Devraj326/Vedss/pkg/response"
)

type photoService interface {
	List(ctx context.Context) ([]models.Photo, error)
	Upload(ctx context.Context, meta dto.PhotoMetadata, originalName, contentType string, size int64, r io.Reader) (*models.Photo, error)
	Update(ctx context.Context, id string, req dto.PhotoUpdateRequest) (*models.Photo, error)
	Delete(ctx context.Context, id string) error
}

// PhotoHandler exposes the /photos endpoints.
type PhotoHandler struct {
	service photoService
}

// NewPhotoHandler constructs the handler.
func NewPhotoHandler(service photoService) *PhotoHandler {
	return &PhotoHandler{service: service}
}

// List godoc
// @Summary List gallery photos
// @Tags Photos
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /photos [get]
func (h *PhotoHandler) List(c *gin.Context) {
	photos, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, photos)
}

// Upload godoc
// @Summary Upload a photo
// @Tags Photos
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Image file"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Success 201 {object} response.Envelope
// @Router /photos/upload [post]
func (h *PhotoHandler) Upload(c *gin.Context) {
	var meta dto.PhotoMetadata
	_ = c.ShouldBind(&meta)

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "missing photo file"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read upload"))
		return
	}
	defer file.Close() //nolint:errcheck

	photo, err := h.service.Upload(
		c.Request.Context(),
		meta,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, photo)
}

// Update godoc
// @Summary Edit photo metadata
// @Tags Photos
// @Accept json
// @Produce json
// @Param id path string true "Photo ID"
// @Param payload body dto.PhotoUpdateRequest true "Metadata"
// @Success 200 {object} response.Envelope
// @Router /photos/{id} [put]
func (h *PhotoHandler) Update(c *gin.Context) {
	var req dto.PhotoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid photo payload"))
		return
	}

	photo, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, photo)
}

// Delete godoc
// @Summary Delete a photo and its file
// @Tags Photos
// @Param id path string true "Photo ID"
// @Success 204
// @Router /photos/{id} [delete]
func (h *PhotoHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
