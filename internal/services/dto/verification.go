package dto

type DecideVerificationRequest struct {
	Comments string `json:"comments"`
}

type VerificationListCriteria struct {
	Status string `form:"status"`
	UserID string `form:"user_id"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}
