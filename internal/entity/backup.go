package entity

import "time"

const (
	BackupStatusCompleted = "completed"
	BackupStatusFailed    = "failed"
)

// DbBackup records one backup run. ObjectKey points at the manifest written
// to object storage.
type DbBackup struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Status       string    `gorm:"column:status;type:varchar(16);index;not null" json:"status"`
	FileCount    int64     `gorm:"column:file_count;not null;default:0" json:"file_count"`
	SizeBytes    int64     `gorm:"column:size_bytes;not null;default:0" json:"size_bytes"`
	ObjectKey    string    `gorm:"column:object_key;type:varchar(512)" json:"object_key"`
	ErrorMessage string    `gorm:"column:error_message;type:text" json:"error_message"`
}

func (DbBackup) TableName() string {
	return "backups"
}

// BackupManifest is the JSON document stored for each backup.
type BackupManifest struct {
	BackupID  string                `json:"backup_id"`
	CreatedAt time.Time             `json:"created_at"`
	FileCount int                   `json:"file_count"`
	SizeBytes int64                 `json:"size_bytes"`
	Files     []BackupManifestEntry `json:"files"`
}

type BackupManifestEntry struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	ObjectKey string `json:"object_key"`
	SizeBytes int64  `json:"size_bytes"`
}

type BackupItem struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	FileCount    int64     `json:"file_count"`
	SizeBytes    int64     `json:"size_bytes"`
	Size         string    `json:"size"`
	ManifestURL  string    `json:"manifest_url,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type BackupListResponse struct {
	Backups []BackupItem `json:"backups"`
}

type BackupDetailResponse struct {
	Backup BackupItem `json:"backup"`
}
