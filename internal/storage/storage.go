package storage

import (
	"cloudvault/internal/config"
	"context"
	"fmt"
	"strings"
)

const (
	TypeLocal = "local"
	TypeS3    = "s3"
	TypeOSS   = "oss"
	TypeCOS   = "cos"
	TypeR2    = "r2"
)

// SaveOptions controls how a backend stores an object.
//
// Category groups objects under a top-level folder. Extension is the preferred
// file extension without the leading dot; "bin" is used when it is empty.
type SaveOptions struct {
	Category  string
	Extension string
	BaseName  string
}

// Storage persists binary data and returns a backend specific object key.
type Storage interface {
	Save(ctx context.Context, data []byte, opts SaveOptions) (string, error)
	Delete(ctx context.Context, key string) error
}

// LocalBaseDirProvider is implemented by backends whose objects can be served
// directly from a local directory.
type LocalBaseDirProvider interface {
	LocalBaseDir() string
}

// NewStorage instantiates the backend selected by cfg.Type.
func NewStorage(cfg config.StorageConfig) (Storage, error) {
	typeName := strings.ToLower(strings.TrimSpace(cfg.Type))
	switch typeName {
	case "", TypeLocal:
		return NewLocalStorage(cfg.LocalDir)
	case TypeS3:
		return NewS3Storage(cfg.S3)
	case TypeOSS:
		return NewOSSStorage(cfg.OSS)
	case TypeCOS:
		return NewCOSStorage(cfg.COS)
	case TypeR2:
		return NewR2Storage(cfg.R2)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// PublicURL joins an object key onto the configured public base. It returns
// "" for an empty key.
func PublicURL(base, key string) string {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if key == "" {
		return ""
	}
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return "/" + key
	}
	return base + "/" + key
}
