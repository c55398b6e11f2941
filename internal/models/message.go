package models

import "time"

// Message — внутреннее сообщение между пользователями (без realtime-доставки).
type Message struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	SenderID    string    `gorm:"type:uuid;not null;index" json:"sender_id"`
	RecipientID string    `gorm:"type:uuid;not null;index" json:"recipient_id"`
	Subject     string    `json:"subject"`
	Body        string    `gorm:"not null" json:"body"`
	IsRead      bool      `gorm:"default:false" json:"is_read"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
}
