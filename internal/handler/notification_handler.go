package handler

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Devraj326/Vedss/internal/notify"
)

const heartbeatInterval = 25 * time.Second

// NotificationHandler streams reminder broadcasts to browser clients over
// server-sent events.
type NotificationHandler struct {
	hub *notify.Hub
}

// NewNotificationHandler constructs the handler.
func NewNotificationHandler(hub *notify.Hub) *NotificationHandler {
	return &NotificationHandler{hub: hub}
}

// Stream godoc
// @Summary Subscribe to reminder broadcasts
// @Description Server-sent event stream carrying sweetReminder and eventReminder messages.
// @Tags Notifications
// @Produce text/event-stream
// @Success 200
// @Router /notifications/stream [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case msg, ok := <-sub.C():
			if !ok {
				return false
			}
			c.SSEvent(msg.Event, msg.Payload)
			return true
		case <-heartbeat.C:
			// Keeps intermediaries from closing an idle stream.
			c.SSEvent("ping", time.Now().UTC())
			return true
		}
	})
}
