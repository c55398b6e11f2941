package dto

type UpdateArtisanProfileRequest struct {
	Bio             string   `json:"bio"`
	Skills          []string `json:"skills"`
	HourlyRate      *float64 `json:"hourly_rate" validate:"omitempty,gte=0"`
	YearsExperience *int     `json:"years_experience" validate:"omitempty,gte=0"`
	State           string   `json:"state"`
	City            string   `json:"city"`
}

type UpdateEmployerProfileRequest struct {
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
	State       string `json:"state"`
	City        string `json:"city"`
}
