package dto

type ApplyRequest struct {
	CoverLetter  string   `json:"cover_letter" validate:"required"`
	ProposedRate *float64 `json:"proposed_rate" validate:"omitempty,gte=0"`
}

type DecideApplicationRequest struct {
	Decision string `json:"decision" validate:"required,oneof=accepted rejected"`
}

type ApplicationListCriteria struct {
	Status string `form:"status"`
	JobID  string `form:"job_id"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}
