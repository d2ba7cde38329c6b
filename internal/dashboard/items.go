package dashboard

import (
	"cloudvault/internal/entity"
	"cloudvault/internal/storage"
	"time"
)

func FileItem(file entity.DbFile, publicBase string) entity.FileItem {
	return entity.FileItem{
		ID:        file.ID,
		Name:      file.Name,
		URL:       storage.PublicURL(publicBase, file.ObjectKey),
		Extension: file.Extension,
		Type:      ParseFileFilter(file.FileType),
		SizeBytes: file.SizeBytes,
		Size:      HumanBytes(file.SizeBytes),
		CreatedAt: file.CreatedAt,
	}
}

func BackupItem(backup entity.DbBackup, publicBase string) entity.BackupItem {
	return entity.BackupItem{
		ID:           backup.ID,
		Status:       backup.Status,
		FileCount:    backup.FileCount,
		SizeBytes:    backup.SizeBytes,
		Size:         HumanBytes(backup.SizeBytes),
		ManifestURL:  storage.PublicURL(publicBase, backup.ObjectKey),
		ErrorMessage: backup.ErrorMessage,
		CreatedAt:    backup.CreatedAt,
	}
}

func ProjectItem(project entity.DbProject) entity.ProjectItem {
	return entity.ProjectItem{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		MemberCount: project.MemberCount,
		Progress:    project.Progress,
		Tags:        project.Tags.ToSlice(),
	}
}

// TeamMemberItem drops the avatar unless its host is allowlisted; the page
// then falls back to the initials.
func TeamMemberItem(member entity.DbTeamMember, imageHosts []string) entity.TeamMemberItem {
	item := entity.TeamMemberItem{
		ID:       member.ID,
		Name:     member.Name,
		Email:    member.Email,
		Role:     member.Role,
		Initials: Initials(member.Name),
	}
	if ImageHostAllowed(member.AvatarURL, imageHosts) {
		item.AvatarURL = member.AvatarURL
	}
	return item
}

func NotificationItem(notification entity.DbNotification, now time.Time) entity.NotificationItem {
	kind := ParseKind(notification.Kind)
	return entity.NotificationItem{
		ID:        notification.ID,
		Kind:      string(kind),
		Icon:      kind.Icon(),
		Tone:      kind.Tone(),
		Message:   notification.Message,
		Age:       HumanizeAge(notification.CreatedAt, now),
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt,
	}
}
