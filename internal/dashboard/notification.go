package dashboard

import (
	"fmt"
	"strings"
	"time"
)

// Kind is the closed set of notification kinds.
type Kind string

const (
	KindShare  Kind = "share"
	KindBackup Kind = "backup"
	KindAlert  Kind = "alert"
)

// ParseKind maps a stored kind to a Kind. Unknown kinds are alerts.
func ParseKind(raw string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindShare:
		return KindShare
	case KindBackup:
		return KindBackup
	case KindAlert:
		return KindAlert
	default:
		return KindAlert
	}
}

// Icon names the glyph drawn next to the notification.
func (k Kind) Icon() string {
	switch k {
	case KindShare:
		return "share"
	case KindBackup:
		return "cloud"
	case KindAlert:
		return "alert"
	default:
		return "alert"
	}
}

// Tone is the colour class of the icon.
func (k Kind) Tone() string {
	switch k {
	case KindShare:
		return "blue"
	case KindBackup:
		return "green"
	case KindAlert:
		return "yellow"
	default:
		return "yellow"
	}
}

// HumanizeAge renders the time elapsed since created as "Xmin atrás",
// "Xh atrás" or "Xd atrás". Future timestamps count as zero minutes.
func HumanizeAge(created, now time.Time) string {
	elapsed := now.Sub(created)
	if elapsed < 0 {
		elapsed = 0
	}
	switch {
	case elapsed < time.Hour:
		return fmt.Sprintf("%dmin atrás", int(elapsed/time.Minute))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh atrás", int(elapsed/time.Hour))
	default:
		return fmt.Sprintf("%dd atrás", int(elapsed/(24*time.Hour)))
	}
}
