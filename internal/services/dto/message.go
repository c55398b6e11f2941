package dto

type SendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid"`
	Subject     string `json:"subject"`
	Body        string `json:"body" validate:"required"`
}
