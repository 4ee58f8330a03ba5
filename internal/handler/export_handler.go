package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Devraj326/Vedss/internal/service"
	"github.com/Devraj326/Vedss/pkg/response"
)

type exportService interface {
	ExportNotes(ctx context.Context, format string) (*service.ExportResult, error)
	ExportEvents(ctx context.Context, format string) (*service.ExportResult, error)
}

// ExportHandler exposes the download endpoints for notes and events.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Notes godoc
// @Summary Export notes as CSV or PDF
// @Tags Export
// @Param format query string false "csv (default) or pdf"
// @Success 200
// @Router /notes/export [get]
func (h *ExportHandler) Notes(c *gin.Context) {
	result, err := h.service.ExportNotes(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveDownload(c, result)
}

// Events godoc
// @Summary Export calendar events as CSV or PDF
// @Tags Export
// @Param format query string false "csv (default) or pdf"
// @Success 200
// @Router /events/export [get]
func (h *ExportHandler) Events(c *gin.Context) {
	result, err := h.service.ExportEvents(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveDownload(c, result)
}

func serveDownload(c *gin.Context, result *service.ExportResult) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
