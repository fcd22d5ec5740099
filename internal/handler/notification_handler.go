package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"sharegeb/internal/service"
	"sharegeb/internal/session"
	"sharegeb/pkg/apperror"
	"sharegeb/pkg/response"
)

type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(c *gin.Context) {
	rec, ok := session.FromContext(c)
	if !ok {
		response.Fail(c, apperror.ErrNotLoggedIn)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	items, err := h.notifications.List(c.Request.Context(), rec.UserID, limit, offset)
	if err != nil {
		response.Fail(c, apperror.NewPersistence(err))
		return
	}

	response.OK(c, gin.H{"notifications": items})
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	rec, ok := session.FromContext(c)
	if !ok {
		response.Fail(c, apperror.ErrNotLoggedIn)
		return
	}

	count, err := h.notifications.UnreadCount(c.Request.Context(), rec.UserID)
	if err != nil {
		response.Fail(c, apperror.NewPersistence(err))
		return
	}

	response.OK(c, gin.H{"count": count})
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	rec, ok := session.FromContext(c)
	if !ok {
		response.Fail(c, apperror.ErrNotLoggedIn)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, apperror.ErrBadRequest)
		return
	}

	if err := h.notifications.MarkAsRead(c.Request.Context(), rec.UserID, uint(id)); err != nil {
		response.Fail(c, apperror.NewPersistence(err))
		return
	}

	response.OK(c, nil)
}

func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	rec, ok := session.FromContext(c)
	if !ok {
		response.Fail(c, apperror.ErrNotLoggedIn)
		return
	}

	if err := h.notifications.MarkAllAsRead(c.Request.Context(), rec.UserID); err != nil {
		response.Fail(c, apperror.NewPersistence(err))
		return
	}

	response.OK(c, nil)
}
