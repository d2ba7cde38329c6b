package storage

import (
	"fmt"
	"mime"
	"path"
	"strings"
	"time"
)

// sanitizePathSegment lowercases value and keeps [a-z0-9_-] only.
func sanitizePathSegment(value string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(value)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func normalizeExtension(ext string) string {
	normalized := sanitizePathSegment(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if normalized == "" {
		return "bin"
	}
	return normalized
}

func sanitizeFileBase(value string) string {
	replaced := strings.Join(strings.Fields(value), "-")
	return strings.Trim(sanitizePathSegment(replaced), "-_")
}

// SanitizeFileBase turns a user supplied file name (without extension) into a
// safe object base name.
func SanitizeFileBase(value string) string {
	return sanitizeFileBase(value)
}

// buildObjectPath returns category/yyyy/mm/dd/base.ext. A blank base name is
// replaced by the current unix nanoseconds.
func buildObjectPath(category, baseName, ext string) string {
	return buildObjectPathAt(time.Now().UTC(), category, baseName, ext)
}

func buildObjectPathAt(now time.Time, category, baseName, ext string) string {
	category = sanitizePathSegment(category)
	if category == "" {
		category = "misc"
	}
	base := sanitizeFileBase(baseName)
	if base == "" {
		base = fmt.Sprintf("%d", now.UnixNano())
	}
	return path.Join(category, now.Format("2006/01/02"), base+"."+normalizeExtension(ext))
}

func detectContentType(ext string) string {
	if typeName := mime.TypeByExtension("." + normalizeExtension(ext)); typeName != "" {
		return typeName
	}
	return "application/octet-stream"
}

func trimPrefix(prefix string) string {
	return strings.Trim(strings.TrimSpace(prefix), "/")
}

func joinPrefix(prefix, key string) string {
	key = strings.TrimLeft(key, "/")
	if cleanPrefix := trimPrefix(prefix); cleanPrefix != "" {
		return path.Join(cleanPrefix, key)
	}
	return key
}
