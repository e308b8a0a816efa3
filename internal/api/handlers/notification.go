package handlers

import (
	"net/http"

	"court-scheduling-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// EventStream is the live notification transport
type EventStream interface {
	ServeWS(w http.ResponseWriter, r *http.Request, userID, district string) error
}

// NotificationHandler upgrades clients onto the live event stream
type NotificationHandler struct {
	stream EventStream
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(stream EventStream) *NotificationHandler {
	return &NotificationHandler{stream: stream}
}

// Subscribe handles GET /notifications/ws
// @Summary Subscribe to scheduling events
// @Description Upgrade to a websocket that streams schedule_allocated, adjournment_resolved and hearing_reminder events. An empty district receives every district.
// @Tags notifications
// @Param district query string false "District"
// @Success 101 "Switching protocols"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /notifications/ws [get]
func (h *NotificationHandler) Subscribe(c *gin.Context) {
	p := principal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	if err := h.stream.ServeWS(c.Writer, c.Request, p.UserID.String(), c.Query("district")); err != nil {
		// the upgrader has already written the failure response
		logger.WithContext(c).WithField("user", p.UserID.String()).Warnf("websocket subscribe failed: %v", err)
	}
}
