package models

import "time"

const VerificationTypeProfile = "profile"

// VerificationLog — одна запись на каждый цикл проверки профиля.
// У пользователя может быть несколько записей (история), действующей
// считается только последняя со статусом pending.
type VerificationLog struct {
	ID               string             `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           string             `gorm:"type:uuid;not null;index" json:"user_id"`
	AdminID          *string            `gorm:"type:uuid" json:"admin_id"`
	VerificationType string             `gorm:"type:varchar(30);default:'profile'" json:"verification_type"`
	Status           VerificationStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Comments         string             `gorm:"not null;default:''" json:"comments"`
	CreatedAt        time.Time          `gorm:"default:now()" json:"created_at"`
	UpdatedAt        time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}
