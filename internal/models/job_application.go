package models

import "time"

// JobApplication — отклик мастера на вакансию.
// Пара (job_id, artisan_profile_id) уникальна на уровне БД.
type JobApplication struct {
	ID               string            `gorm:"type:uuid;primaryKey" json:"id"`
	JobID            string            `gorm:"type:uuid;not null;uniqueIndex:idx_job_artisan" json:"job_id"`
	ArtisanProfileID string            `gorm:"type:uuid;not null;uniqueIndex:idx_job_artisan" json:"artisan_profile_id"`
	CoverLetter      string            `gorm:"not null" json:"cover_letter"`
	ProposedRate     *float64          `json:"proposed_rate"`
	Status           ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	AppliedDate      time.Time         `gorm:"default:now()" json:"applied_date"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}
