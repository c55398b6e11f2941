package models

import "gorm.io/datatypes"

type ArtisanProfile struct {
	BaseModel
	UserID             string                    `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Bio                string                    `gorm:"not null;default:''" json:"bio"`
	Skills             datatypes.JSON            `gorm:"type:jsonb" json:"skills"`
	HourlyRate         *float64                  `json:"hourly_rate"`
	YearsExperience    *int                      `json:"years_experience"`
	State              string                    `gorm:"not null;default:''" json:"state"`
	City               string                    `gorm:"not null;default:''" json:"city"`
	VerificationStatus ProfileVerificationStatus `gorm:"type:varchar(20);default:'pending'" json:"verification_status"`
}

type EmployerProfile struct {
	BaseModel
	UserID             string                    `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CompanyName        string                    `gorm:"not null;default:''" json:"company_name"`
	Industry           string                    `gorm:"not null;default:''" json:"industry"`
	Description        string                    `gorm:"not null;default:''" json:"description"`
	State              string                    `gorm:"not null;default:''" json:"state"`
	City               string                    `gorm:"not null;default:''" json:"city"`
	VerificationStatus ProfileVerificationStatus `gorm:"type:varchar(20);default:'pending'" json:"verification_status"`
}
