package api

import (
	"cloudvault/internal/service"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func (h *HTTPHandler) ListNotifications(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	notifications, err := h.dashboard.Notifications(ctx)
	if err != nil {
		if errors.Is(err, service.ErrRepositoryUnavailable) {
			ServiceUnavailable(c, "notification repository not available")
			return
		}
		logrus.WithError(err).Error("failed to list notifications")
		InternalError(c, "failed to list notifications")
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (h *HTTPHandler) MarkNotificationRead(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		BadRequest(c, ErrCodeInvalidRequest, "invalid notification id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.dashboard.MarkNotificationRead(ctx, id); err != nil {
		switch {
		case errors.Is(err, service.ErrRepositoryUnavailable):
			ServiceUnavailable(c, "notification repository not available")
		case errors.Is(err, gorm.ErrRecordNotFound):
			NotFound(c, ErrCodeNotificationNotFound, "notification not found")
		default:
			logrus.WithError(err).WithField("id", id).Error("failed to mark notification read")
			InternalError(c, "failed to update notification")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
