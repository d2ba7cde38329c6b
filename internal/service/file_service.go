package service

import (
	"cloudvault/internal/dashboard"
	"cloudvault/internal/entity"
	"cloudvault/internal/model"
	"cloudvault/internal/storage"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// FileService stores uploads and keeps the files table in sync.
type FileService struct {
	repo          model.Repository
	storage       storage.Storage
	dashboard     *DashboardService
	maxBytes      int64
	publicBaseURL string
}

func NewFileService(repo model.Repository, store storage.Storage, dash *DashboardService, maxBytes int64, publicBaseURL string) *FileService {
	return &FileService{
		repo:          repo,
		storage:       store,
		dashboard:     dash,
		maxBytes:      maxBytes,
		publicBaseURL: publicBaseURL,
	}
}

// MaxBytes is the upload limit; zero means unlimited.
func (s *FileService) MaxBytes() int64 {
	return s.maxBytes
}

// Upload saves data under the files category and records it.
func (s *FileService) Upload(ctx context.Context, name string, data []byte) (*entity.FileItem, error) {
	if s.repo == nil {
		return nil, ErrRepositoryUnavailable
	}
	if s.storage == nil {
		return nil, ErrStorageUnavailable
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "" || name == "." || name == "/" {
		name = "upload"
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
	base := objectBaseName(strings.TrimSuffix(name, path.Ext(name)))

	key, err := s.storage.Save(ctx, data, storage.SaveOptions{
		Category:  "files",
		Extension: ext,
		BaseName:  base,
	})
	if err != nil {
		return nil, fmt.Errorf("save file: %w", err)
	}

	file := &entity.DbFile{
		Name:      name,
		ObjectKey: key,
		Extension: ext,
		FileType:  dashboard.ClassifyExtension(ext),
		SizeBytes: int64(len(data)),
	}
	if err := s.repo.CreateFile(ctx, file); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			logrus.WithError(delErr).WithField("object_key", key).Warn("failed to remove orphaned upload")
		}
		return nil, fmt.Errorf("record file: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"file_id":    file.ID,
		"object_key": key,
		"size":       file.SizeBytes,
	}).Info("stored upload")

	s.dashboard.Invalidate(ctx)
	item := dashboard.FileItem(*file, s.publicBaseURL)
	return &item, nil
}

// Delete removes the file row and its stored object.
func (s *FileService) Delete(ctx context.Context, id uint) error {
	if s.repo == nil {
		return ErrRepositoryUnavailable
	}
	file, err := s.repo.GetFile(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteFile(ctx, id); err != nil {
		return err
	}
	if file.ObjectKey != "" && s.storage != nil {
		if err := s.storage.Delete(ctx, file.ObjectKey); err != nil {
			logrus.WithError(err).WithField("object_key", file.ObjectKey).Warn("failed to delete stored object")
		}
	}
	s.dashboard.Invalidate(ctx)
	return nil
}

// objectBaseName keeps the readable part of the name and appends a short
// random suffix so repeated uploads never collide.
func objectBaseName(name string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	base := storage.SanitizeFileBase(name)
	if len(base) > 48 {
		base = base[:48]
	}
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
