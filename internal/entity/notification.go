package entity

import "time"

// DbNotification is an entry of the notifications panel.
type DbNotification struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Kind      string    `gorm:"column:kind;type:varchar(16);index;not null" json:"kind"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	Read      bool      `gorm:"column:is_read;not null;default:false" json:"read"`
}

func (DbNotification) TableName() string {
	return "notifications"
}

type NotificationItem struct {
	ID        uint      `json:"id"`
	Kind      string    `json:"kind"`
	Icon      string    `json:"icon"`
	Tone      string    `json:"tone"`
	Message   string    `json:"message"`
	Age       string    `json:"age"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationItem `json:"notifications"`
	Unread        int64              `json:"unread"`
}
