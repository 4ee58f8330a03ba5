package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Devraj326/Vedss/internal/notify"
)

// HealthHandler reports server and database status.
type HealthHandler struct {
	db  *sqlx.DB
	hub *notify.Hub
}

// NewHealthHandler constructs the handler.
func NewHealthHandler(db *sqlx.DB, hub *notify.Hub) *HealthHandler {
	return &HealthHandler{db: db, hub: hub}
}

// Check godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	dbConnected := false
	if h.db != nil {
		dbConnected = h.db.PingContext(c.Request.Context()) == nil
	}

	status := http.StatusOK
	if !dbConnected {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":            "ok",
		"database":          dbConnected,
		"connected_clients": h.hub.Connected(),
	})
}
