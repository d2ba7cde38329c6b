package entity

import "time"

// DbProject is a shared workspace shown in the projects widget.
type DbProject struct {
	ID          uint        `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Name        string      `gorm:"column:name;type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string      `gorm:"column:description;type:text" json:"description"`
	MemberCount int         `gorm:"column:member_count;not null;default:0" json:"member_count"`
	Progress    int         `gorm:"column:progress;not null;default:0" json:"progress"`
	Tags        StringArray `gorm:"column:tags;type:json" json:"tags"`
}

func (DbProject) TableName() string {
	return "projects"
}

// DbTeamMember is a person listed in the team widget. It is display data only
// and carries no credentials.
type DbTeamMember struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	Role      string    `gorm:"column:role;type:varchar(64)" json:"role"`
	AvatarURL string    `gorm:"column:avatar_url;type:varchar(512)" json:"avatar_url"`
}

func (DbTeamMember) TableName() string {
	return "team_members"
}

type ProjectItem struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	MemberCount int      `json:"member_count"`
	Progress    int      `json:"progress"`
	Tags        []string `json:"tags"`
}

type TeamMemberItem struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Initials  string `json:"initials"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
