package service

import (
	"cloudvault/internal/dashboard"
	"cloudvault/internal/entity"
	"cloudvault/internal/model"
	"cloudvault/internal/storage"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// BackupService writes a manifest of every stored file to object storage.
type BackupService struct {
	repo          model.Repository
	storage       storage.Storage
	dashboard     *DashboardService
	publicBaseURL string
	now           func() time.Time
}

func NewBackupService(repo model.Repository, store storage.Storage, dash *DashboardService, publicBaseURL string) *BackupService {
	return &BackupService{
		repo:          repo,
		storage:       store,
		dashboard:     dash,
		publicBaseURL: publicBaseURL,
		now:           time.Now,
	}
}

// Create runs one backup. When the manifest cannot be stored the failed run
// is still recorded, an alert is raised and the returned error wraps
// ErrBackupFailed.
func (s *BackupService) Create(ctx context.Context) (*entity.BackupItem, error) {
	if s.repo == nil {
		return nil, ErrRepositoryUnavailable
	}
	if s.storage == nil {
		return nil, ErrStorageUnavailable
	}

	files, err := s.repo.ListAllFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	backup := &entity.DbBackup{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
		FileCount: int64(len(files)),
	}
	manifest := entity.BackupManifest{
		BackupID:  backup.ID,
		CreatedAt: backup.CreatedAt,
		FileCount: len(files),
		Files:     make([]entity.BackupManifestEntry, 0, len(files)),
	}
	for _, f := range files {
		manifest.SizeBytes += f.SizeBytes
		manifest.Files = append(manifest.Files, entity.BackupManifestEntry{
			ID:        f.ID,
			Name:      f.Name,
			ObjectKey: f.ObjectKey,
			SizeBytes: f.SizeBytes,
		})
	}
	backup.SizeBytes = manifest.SizeBytes

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}

	key, saveErr := s.storage.Save(ctx, data, storage.SaveOptions{
		Category:  "backups",
		BaseName:  backup.ID,
		Extension: "json",
	})

	notification := &entity.DbNotification{CreatedAt: backup.CreatedAt}
	if saveErr != nil {
		backup.Status = entity.BackupStatusFailed
		backup.ErrorMessage = saveErr.Error()
		notification.Kind = string(dashboard.KindAlert)
		notification.Message = fmt.Sprintf("Falha no backup: %s", saveErr.Error())
		logrus.WithError(saveErr).WithField("backup_id", backup.ID).Error("failed to store backup manifest")
	} else {
		backup.Status = entity.BackupStatusCompleted
		backup.ObjectKey = key
		notification.Kind = string(dashboard.KindBackup)
		notification.Message = fmt.Sprintf("Backup concluído: %d arquivos (%s)", backup.FileCount, dashboard.HumanBytes(backup.SizeBytes))
	}

	if err := s.repo.CreateBackup(ctx, backup); err != nil {
		return nil, fmt.Errorf("record backup: %w", err)
	}
	if err := s.repo.CreateNotification(ctx, notification); err != nil {
		logrus.WithError(err).WithField("backup_id", backup.ID).Warn("failed to record backup notification")
	}
	s.dashboard.Invalidate(ctx)

	item := dashboard.BackupItem(*backup, s.publicBaseURL)
	if saveErr != nil {
		return &item, fmt.Errorf("%w: %v", ErrBackupFailed, saveErr)
	}

	logrus.WithFields(logrus.Fields{
		"backup_id":  backup.ID,
		"file_count": backup.FileCount,
		"size":       backup.SizeBytes,
	}).Info("backup completed")
	return &item, nil
}
