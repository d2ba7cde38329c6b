package dashboard

import (
	"cloudvault/internal/entity"
	"time"
)

// Sample figures shown when no database is configured.
const (
	SampleUsedBytes  = 75 * gigabyte
	SampleTotalBytes = 100 * gigabyte
)

// SampleDistribution is the fixed chart of the sample dashboard.
func SampleDistribution() []entity.DistributionSlice {
	return []entity.DistributionSlice{
		{Type: entity.FileTypeDoc, Label: TypeLabel(entity.FileTypeDoc), Percent: 45},
		{Type: entity.FileTypeImage, Label: TypeLabel(entity.FileTypeImage), Percent: 30},
		{Type: entity.FileTypeOther, Label: TypeLabel(entity.FileTypeOther), Percent: 25},
	}
}

// SampleSummary is the dashboard rendered without persistence.
func SampleSummary(view, filter string, now time.Time) *entity.DashboardSummary {
	notifications := []entity.NotificationItem{
		NotificationItem(entity.DbNotification{ID: 1, Kind: string(KindShare), Message: "Ana Souza compartilhou \"Marketing Q4\" com você", CreatedAt: now.Add(-5 * time.Minute)}, now),
		NotificationItem(entity.DbNotification{ID: 2, Kind: string(KindBackup), Message: "Backup automático concluído com sucesso", CreatedAt: now.Add(-2 * time.Hour)}, now),
		NotificationItem(entity.DbNotification{ID: 3, Kind: string(KindAlert), Message: "Seu armazenamento está 75% cheio", CreatedAt: now.Add(-24 * time.Hour)}, now),
	}
	return &entity.DashboardSummary{
		Overview:            Overview(SampleUsedBytes, SampleTotalBytes),
		Distribution:        SampleDistribution(),
		View:                ParseViewMode(view),
		Filter:              ParseFileFilter(filter),
		Files:               []entity.FileItem{},
		Backups:             []entity.BackupItem{},
		Projects:            []entity.ProjectItem{},
		Team:                []entity.TeamMemberItem{},
		Notifications:       notifications,
		UnreadNotifications: int64(len(notifications)),
		Sample:              true,
	}
}
