package sql

import (
	"cloudvault/internal/entity"
	"context"
	"fmt"
	"strings"
)

// CreateBackup persists a backup run.
func (r *GormRepository) CreateBackup(ctx context.Context, backup *entity.DbBackup) error {
	if !r.ready() {
		return fmt.Errorf("repository not initialised")
	}
	if backup == nil || strings.TrimSpace(backup.ID) == "" {
		return fmt.Errorf("invalid backup")
	}
	return r.db.WithContext(ctx).Create(backup).Error
}

// ListBackups returns the most recent backups.
func (r *GormRepository) ListBackups(ctx context.Context, limit int) ([]entity.DbBackup, error) {
	if !r.ready() {
		return nil, fmt.Errorf("repository not initialised")
	}
	var backups []entity.DbBackup
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(clampLimit(limit, 10)).
		Find(&backups).Error
	if err != nil {
		return nil, err
	}
	return backups, nil
}
