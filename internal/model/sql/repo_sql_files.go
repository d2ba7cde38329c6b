package sql

import (
	"cloudvault/internal/entity"
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// CreateFile persists a new file record.
func (r *GormRepository) CreateFile(ctx context.Context, file *entity.DbFile) error {
	if !r.ready() {
		return fmt.Errorf("repository not initialised")
	}
	if file == nil {
		return fmt.Errorf("file is nil")
	}
	return r.db.WithContext(ctx).Create(file).Error
}

// GetFile loads a file by ID.
func (r *GormRepository) GetFile(ctx context.Context, id uint) (*entity.DbFile, error) {
	if !r.ready() {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid file id")
	}
	var file entity.DbFile
	if err := r.db.WithContext(ctx).First(&file, id).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

// ListFiles returns paginated files, newest first.
func (r *GormRepository) ListFiles(ctx context.Context, params *entity.FileQuery) ([]entity.DbFile, *entity.Meta, error) {
	if !r.ready() {
		return nil, nil, fmt.Errorf("repository not initialised")
	}

	query := r.db.WithContext(ctx).Model(&entity.DbFile{})
	if params != nil {
		if fileType := strings.ToLower(strings.TrimSpace(params.FileType)); fileType != "" && fileType != entity.FileTypeAll {
			query = query.Where("file_type = ?", fileType)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	page := 1
	pageSize := 20
	if params != nil {
		if params.Page > 0 {
			page = int(params.Page)
		}
		if params.PageSize > 0 {
			pageSize = int(params.PageSize)
		}
	}
	offset := (page - 1) * pageSize

	var files []entity.DbFile
	if err := query.Order("created_at DESC, id DESC").Offset(offset).Limit(pageSize).Find(&files).Error; err != nil {
		return nil, nil, err
	}

	return files, r.calculatePagination(total, page, pageSize), nil
}

// ListAllFiles returns every file in id order.
func (r *GormRepository) ListAllFiles(ctx context.Context) ([]entity.DbFile, error) {
	if !r.ready() {
		return nil, fmt.Errorf("repository not initialised")
	}
	var files []entity.DbFile
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// DeleteFile removes a file record by ID.
func (r *GormRepository) DeleteFile(ctx context.Context, id uint) error {
	if !r.ready() {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid file id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbFile{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FileUsageByType sums stored bytes per file type.
func (r *GormRepository) FileUsageByType(ctx context.Context) ([]entity.TypeUsage, error) {
	if !r.ready() {
		return nil, fmt.Errorf("repository not initialised")
	}
	var usage []entity.TypeUsage
	err := r.db.WithContext(ctx).
		Model(&entity.DbFile{}).
		Select("file_type, COALESCE(SUM(size_bytes), 0) AS size_bytes, COUNT(*) AS count").
		Group("file_type").
		Order("file_type ASC").
		Scan(&usage).Error
	if err != nil {
		return nil, err
	}
	return usage, nil
}
