package models

import "time"

const (
	NotificationTypeProfileVerified = "profile_verified"
	NotificationTypeProfileRejected = "profile_rejected"
	NotificationTypeApplication     = "application"
	NotificationTypeNewMessage      = "new_message"
)

type Notification struct {
	BaseModel
	UserID    string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      string     `gorm:"not null" json:"type"`
	Title     string     `gorm:"not null" json:"title"`
	Message   string     `json:"message"`
	RelatedID *string    `gorm:"type:uuid" json:"related_id"`
	IsRead    bool       `gorm:"default:false" json:"is_read"`
	ReadAt    *time.Time `json:"read_at"`
}
