package api

import (
	"cloudvault/internal/entity"
	"cloudvault/internal/service"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ListFiles returns stored files, optionally filtered by ?type=.
func (h *HTTPHandler) ListFiles(c *gin.Context) {
	var query entity.FileQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	files, err := h.dashboard.Files(ctx, &query)
	if err != nil {
		if errors.Is(err, service.ErrRepositoryUnavailable) {
			ServiceUnavailable(c, "file repository not available")
			return
		}
		logrus.WithError(err).Error("failed to list files")
		InternalError(c, "failed to list files")
		return
	}

	c.JSON(http.StatusOK, files)
}

// UploadFile stores the multipart field "file".
func (h *HTTPHandler) UploadFile(c *gin.Context) {
	if limit := h.files.MaxBytes(); limit > 0 {
		// Multipart framing needs a little room on top of the payload.
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+1<<20)
	}

	header, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
			fileTooLarge(c, h.files.MaxBytes())
			return
		}
		MissingField(c, "file")
		return
	}
	if limit := h.files.MaxBytes(); limit > 0 && header.Size > limit {
		fileTooLarge(c, limit)
		return
	}

	src, err := header.Open()
	if err != nil {
		logrus.WithError(err).Error("failed to open uploaded file")
		InvalidPayload(c)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		logrus.WithError(err).Error("failed to read uploaded file")
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	item, err := h.files.Upload(ctx, header.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRepositoryUnavailable), errors.Is(err, service.ErrStorageUnavailable):
			ServiceUnavailable(c, "file storage not available")
		case errors.Is(err, service.ErrEmptyFile):
			BadRequest(c, ErrCodeInvalidRequest, "file is empty")
		case errors.Is(err, service.ErrFileTooLarge):
			fileTooLarge(c, h.files.MaxBytes())
		default:
			logrus.WithError(err).WithField("filename", header.Filename).Error("failed to store upload")
			InternalError(c, "failed to store file")
		}
		return
	}

	c.JSON(http.StatusCreated, entity.FileDetailResponse{File: *item})
}

// DeleteFile removes a file and its stored object.
func (h *HTTPHandler) DeleteFile(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		BadRequest(c, ErrCodeInvalidRequest, "invalid file id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.files.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, service.ErrRepositoryUnavailable):
			ServiceUnavailable(c, "file repository not available")
		case errors.Is(err, gorm.ErrRecordNotFound):
			NotFound(c, ErrCodeFileNotFound, "file not found")
		default:
			logrus.WithError(err).WithField("id", id).Error("failed to delete file")
			InternalError(c, "failed to delete file")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func fileTooLarge(c *gin.Context, limit int64) {
	ErrorResponseWithDetails(c, http.StatusRequestEntityTooLarge, ErrCodeFileTooLarge,
		fmt.Sprintf("file exceeds the %d byte limit", limit), gin.H{"max_bytes": limit})
}
