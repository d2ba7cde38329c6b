package sql

import (
	"cloudvault/internal/entity"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// CreateNotification persists a notification.
func (r *GormRepository) CreateNotification(ctx context.Context, notification *entity.DbNotification) error {
	if !r.ready() {
		return fmt.Errorf("repository not initialised")
	}
	if notification == nil {
		return fmt.Errorf("notification is nil")
	}
	return r.db.WithContext(ctx).Create(notification).Error
}

// ListNotifications returns the newest notifications.
func (r *GormRepository) ListNotifications(ctx context.Context, limit int) ([]entity.DbNotification, error) {
	if !r.ready() {
		return nil, fmt.Errorf("repository not initialised")
	}
	var notifications []entity.DbNotification
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(clampLimit(limit, 20)).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// CountUnreadNotifications returns how many notifications are unread.
func (r *GormRepository) CountUnreadNotifications(ctx context.Context) (int64, error) {
	if !r.ready() {
		return 0, fmt.Errorf("repository not initialised")
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.DbNotification{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MarkNotificationRead flags one notification as read.
func (r *GormRepository) MarkNotificationRead(ctx context.Context, id uint) error {
	if !r.ready() {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid notification id")
	}
	result := r.db.WithContext(ctx).Model(&entity.DbNotification{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Re-marking a read notification also affects zero rows on some drivers.
		var count int64
		if err := r.db.WithContext(ctx).Model(&entity.DbNotification{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}
