package entity

import "time"

const (
	FileTypeAll   = "all"
	FileTypeImage = "image"
	FileTypeDoc   = "doc"
	FileTypeVideo = "video"
	FileTypeOther = "other"
)

// DbFile is a stored file tracked by the dashboard.
type DbFile struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	ObjectKey string    `gorm:"column:object_key;type:varchar(512)" json:"object_key"`
	Extension string    `gorm:"column:extension;type:varchar(32)" json:"extension"`
	FileType  string    `gorm:"column:file_type;type:varchar(16);index;not null" json:"file_type"`
	SizeBytes int64     `gorm:"column:size_bytes;not null;default:0" json:"size_bytes"`
	ProjectID *uint     `gorm:"column:project_id;index" json:"project_id,omitempty"`
}

func (DbFile) TableName() string {
	return "files"
}

// FileQuery filters the file list. An empty or "all" FileType matches every file.
type FileQuery struct {
	BaseParams
	FileType string `json:"type" form:"type" query:"type"`
}

// TypeUsage aggregates stored bytes per file type.
type TypeUsage struct {
	FileType  string `json:"file_type"`
	SizeBytes int64  `json:"size_bytes"`
	Count     int64  `json:"count"`
}

type FileItem struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url,omitempty"`
	Extension string    `json:"extension"`
	Type      string    `json:"type"`
	SizeBytes int64     `json:"size_bytes"`
	Size      string    `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

type FileListResponse struct {
	Files []FileItem `json:"files"`
	Meta  *Meta      `json:"meta"`
}

type FileDetailResponse struct {
	File FileItem `json:"file"`
}
