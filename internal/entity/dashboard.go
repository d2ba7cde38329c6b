package entity

// StorageOverview is the used/total gauge at the top of the dashboard.
type StorageOverview struct {
	UsedBytes  int64  `json:"used_bytes"`
	TotalBytes int64  `json:"total_bytes"`
	Used       string `json:"used"`
	Total      string `json:"total"`
	Percent    int    `json:"percent"`
}

// DistributionSlice is one entry of the storage distribution chart.
type DistributionSlice struct {
	Type    string `json:"type"`
	Label   string `json:"label"`
	Percent int    `json:"percent"`
}

// DashboardSummary is everything the dashboard page renders. Sample is true
// when no database is configured and the figures are the built-in ones.
type DashboardSummary struct {
	Overview            StorageOverview     `json:"overview"`
	Distribution        []DistributionSlice `json:"distribution"`
	View                string              `json:"view"`
	Filter              string              `json:"filter"`
	Files               []FileItem          `json:"files"`
	Backups             []BackupItem        `json:"backups"`
	Projects            []ProjectItem       `json:"projects"`
	Team                []TeamMemberItem    `json:"team"`
	Notifications       []NotificationItem  `json:"notifications"`
	UnreadNotifications int64               `json:"unread_notifications"`
	Sample              bool                `json:"sample"`
}
