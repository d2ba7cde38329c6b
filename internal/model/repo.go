package model

import (
	"cloudvault/internal/entity"
	"context"
)

// Repository is the persistence boundary of the dashboard.
type Repository interface {
	// Files
	CreateFile(ctx context.Context, file *entity.DbFile) error
	GetFile(ctx context.Context, id uint) (*entity.DbFile, error)
	ListFiles(ctx context.Context, params *entity.FileQuery) ([]entity.DbFile, *entity.Meta, error)
	ListAllFiles(ctx context.Context) ([]entity.DbFile, error)
	DeleteFile(ctx context.Context, id uint) error
	FileUsageByType(ctx context.Context) ([]entity.TypeUsage, error)

	// Backups
	CreateBackup(ctx context.Context, backup *entity.DbBackup) error
	ListBackups(ctx context.Context, limit int) ([]entity.DbBackup, error)

	// Projects and team
	CreateProject(ctx context.Context, project *entity.DbProject) error
	ListProjects(ctx context.Context) ([]entity.DbProject, error)
	CountProjects(ctx context.Context) (int64, error)
	CreateTeamMember(ctx context.Context, member *entity.DbTeamMember) error
	ListTeamMembers(ctx context.Context) ([]entity.DbTeamMember, error)

	// Notifications
	CreateNotification(ctx context.Context, notification *entity.DbNotification) error
	ListNotifications(ctx context.Context, limit int) ([]entity.DbNotification, error)
	CountUnreadNotifications(ctx context.Context) (int64, error)
	MarkNotificationRead(ctx context.Context, id uint) error
}
