package service

import "errors"

var (
	ErrRepositoryUnavailable = errors.New("database not configured")
	ErrStorageUnavailable    = errors.New("storage not configured")
	ErrEmptyFile             = errors.New("file is empty")
	ErrFileTooLarge          = errors.New("file exceeds the upload limit")
	ErrBackupFailed          = errors.New("backup failed")
)
