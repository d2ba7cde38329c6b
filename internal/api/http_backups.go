package api

import (
	"cloudvault/internal/entity"
	"cloudvault/internal/service"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (h *HTTPHandler) ListBackups(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	backups, err := h.dashboard.Backups(ctx)
	if err != nil {
		if errors.Is(err, service.ErrRepositoryUnavailable) {
			ServiceUnavailable(c, "backup repository not available")
			return
		}
		logrus.WithError(err).Error("failed to list backups")
		InternalError(c, "failed to list backups")
		return
	}

	c.JSON(http.StatusOK, backups)
}

// CreateBackup writes a manifest of all files to object storage. A storage
// failure is recorded as a failed backup and reported with 502.
func (h *HTTPHandler) CreateBackup(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	item, err := h.backups.Create(ctx)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRepositoryUnavailable), errors.Is(err, service.ErrStorageUnavailable):
			ServiceUnavailable(c, "backup storage not available")
		case errors.Is(err, service.ErrBackupFailed) && item != nil:
			ErrorResponseWithDetails(c, http.StatusBadGateway, ErrCodeBackupFailed, "backup failed", entity.BackupDetailResponse{Backup: *item})
		default:
			logrus.WithError(err).Error("failed to create backup")
			InternalError(c, "failed to create backup")
		}
		return
	}

	c.JSON(http.StatusCreated, entity.BackupDetailResponse{Backup: *item})
}
