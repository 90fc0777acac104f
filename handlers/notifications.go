package handlers

import (
	"net/http"

	"helperhub/services/notification"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	NotificationSvc notification.NotificationService
}

// ListNotificationsHandler handles GET /api/notifications.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	items, err := h.NotificationSvc.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "list notifications failed", err)
		return
	}
	unread := 0
	for _, n := range items {
		if n.Unread {
			unread++
		}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": items, "unread": unread})
}

// MarkAllReadHandler handles POST /api/notifications/read, issued when the
// notification panel is opened.
func (h *NotificationHandler) MarkAllReadHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	marked, err := h.NotificationSvc.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "mark read failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marked": marked})
}
