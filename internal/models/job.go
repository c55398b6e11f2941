package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	ID                string         `gorm:"type:uuid;primaryKey" json:"id"`
	EmployerProfileID string         `gorm:"type:uuid;not null;index" json:"employer_profile_id"`
	Title             string         `gorm:"not null" json:"title"`
	Description       string         `json:"description"`
	Category          string         `json:"category"`
	Location          string         `json:"location"`
	State             string         `json:"state"`
	BudgetMin         float64        `json:"budget_min"`
	BudgetMax         float64        `json:"budget_max"`
	RequiredSkills    datatypes.JSON `gorm:"type:jsonb" json:"required_skills"`
	ExperienceLevel   *string        `json:"experience_level"`
	Status            JobStatus      `gorm:"type:varchar(20);default:'open';index" json:"status"`
	PostedDate        time.Time      `gorm:"default:now()" json:"posted_date"`
	Deadline          *time.Time     `json:"deadline"`
	CreatedAt         time.Time      `gorm:"default:now()" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}
