package api

import (
	"cloudvault/internal/auth"
	"cloudvault/internal/service"
	"errors"
	"strings"
)

// HTTPHandler serves the JSON API.
type HTTPHandler struct {
	verifier  auth.Verifier
	dashboard *service.DashboardService
	files     *service.FileService
	backups   *service.BackupService
}

func NewHTTPHandler(verifier auth.Verifier, dash *service.DashboardService, files *service.FileService, backups *service.BackupService) (*HTTPHandler, error) {
	if verifier == nil {
		return nil, errors.New("api: credential verifier is nil")
	}
	if dash == nil || files == nil || backups == nil {
		return nil, errors.New("api: services are required")
	}
	return &HTTPHandler{
		verifier:  verifier,
		dashboard: dash,
		files:     files,
		backups:   backups,
	}, nil
}

// NormalisePublicBase returns the URL prefix used for stored objects: either
// an absolute http(s) URL or a rooted path, without a trailing slash.
func NormalisePublicBase(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = "/files"
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return strings.TrimRight(trimmed, "/")
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	if trimmed = strings.TrimRight(trimmed, "/"); trimmed == "" {
		return "/files"
	}
	return trimmed
}
