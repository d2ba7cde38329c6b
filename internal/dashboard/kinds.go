// Package dashboard holds the presentation rules of the storage dashboard:
// file type classification, view and filter parsing, notification kinds and
// the formatting used by the widgets.
package dashboard

import (
	"cloudvault/internal/entity"
	"strings"
)

const (
	ViewList = "list"
	ViewGrid = "grid"
)

var extensionTypes = map[string]string{
	"png": entity.FileTypeImage, "jpg": entity.FileTypeImage, "jpeg": entity.FileTypeImage,
	"gif": entity.FileTypeImage, "webp": entity.FileTypeImage, "svg": entity.FileTypeImage,
	"bmp": entity.FileTypeImage, "heic": entity.FileTypeImage,

	"pdf": entity.FileTypeDoc, "doc": entity.FileTypeDoc, "docx": entity.FileTypeDoc,
	"xls": entity.FileTypeDoc, "xlsx": entity.FileTypeDoc, "ppt": entity.FileTypeDoc,
	"pptx": entity.FileTypeDoc, "txt": entity.FileTypeDoc, "md": entity.FileTypeDoc,
	"csv": entity.FileTypeDoc, "odt": entity.FileTypeDoc, "rtf": entity.FileTypeDoc,

	"mp4": entity.FileTypeVideo, "mov": entity.FileTypeVideo, "avi": entity.FileTypeVideo,
	"mkv": entity.FileTypeVideo, "webm": entity.FileTypeVideo,
}

// ClassifyExtension maps a file extension, with or without the dot, to one of
// the dashboard file types. Unknown extensions are "other".
func ClassifyExtension(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if fileType, ok := extensionTypes[ext]; ok {
		return fileType
	}
	return entity.FileTypeOther
}

// ParseFileFilter returns the file type filter for raw. Unknown values mean all.
func ParseFileFilter(raw string) string {
	switch value := strings.ToLower(strings.TrimSpace(raw)); value {
	case entity.FileTypeImage, entity.FileTypeDoc, entity.FileTypeVideo, entity.FileTypeOther:
		return value
	default:
		return entity.FileTypeAll
	}
}

// ParseViewMode returns grid only when asked for explicitly.
func ParseViewMode(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), ViewGrid) {
		return ViewGrid
	}
	return ViewList
}

// TypeLabel is the label shown in the distribution chart and the filter bar.
func TypeLabel(fileType string) string {
	switch fileType {
	case entity.FileTypeAll:
		return "Todos"
	case entity.FileTypeDoc:
		return "Documentos"
	case entity.FileTypeImage:
		return "Imagens"
	case entity.FileTypeVideo:
		return "Vídeos"
	default:
		return "Outros"
	}
}

// FilterOptions lists the file filters in display order.
var FilterOptions = []string{
	entity.FileTypeAll,
	entity.FileTypeImage,
	entity.FileTypeDoc,
	entity.FileTypeVideo,
	entity.FileTypeOther,
}
