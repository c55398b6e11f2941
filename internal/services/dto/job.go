package dto

import "time"

type CreateJobRequest struct {
	Title           string     `json:"title" validate:"required"`
	Description     string     `json:"description" validate:"required"`
	Category        string     `json:"category"`
	Location        string     `json:"location"`
	State           string     `json:"state" validate:"required"`
	BudgetMin       float64    `json:"budget_min" validate:"gte=0"`
	BudgetMax       float64    `json:"budget_max" validate:"gte=0"`
	RequiredSkills  []string   `json:"required_skills"`
	ExperienceLevel *string    `json:"experience_level"`
	Deadline        *time.Time `json:"deadline"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress completed closed"`
}

type JobListCriteria struct {
	// Status учитывается только в админском списке, публичный
	// просмотр всегда ограничен открытыми вакансиями
	Status   string `form:"status"`
	State    string `form:"state"`
	Category string `form:"category"`
	Search   string `form:"q"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}
