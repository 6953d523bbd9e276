package handler

import (
	notificationapp "github.com/flowik/backend/internal/application/notification"
	"github.com/flowik/backend/internal/domain/notification"
	"github.com/flowik/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NotificationHandler handles notification API endpoints. Notifications
// are always scoped to the authenticated user; there is no cross-owner
// listing.
type NotificationHandler struct {
	BaseHandler
	notifierService *notificationapp.NotifierService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifierService *notificationapp.NotifierService) *NotificationHandler {
	return &NotificationHandler{notifierService: notifierService}
}

// List returns the caller's notifications, newest first. An optional
// subject_type query parameter narrows to DEBT or STOCK alerts.
func (h *NotificationHandler) List(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var subjectType *notification.SubjectType
	if raw := c.Query("subject_type"); raw != "" {
		st := notification.SubjectType(raw)
		if !st.IsValid() {
			h.BadRequest(c, "subject_type must be DEBT or STOCK")
			return
		}
		subjectType = &st
	}

	notifications, err := h.notifierService.ListForOwner(c.Request.Context(), identity.TenantID, identity.UserID, subjectType)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, notifications)
}

// MarkRead marks one of the caller's notifications as read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid notification ID")
		return
	}

	if err := h.notifierService.MarkRead(c.Request.Context(), identity.TenantID, uuid.MustParse(uri.ID), identity.UserID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers notification routes
func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.List)
		notifications.POST(":id/read", h.MarkRead)
	}
}
