package dto

import "craftlink_backend/internal/models"

type NotificationListCriteria struct {
	UnreadOnly bool `form:"unread"`
	Limit      int  `form:"limit"`
	Offset     int  `form:"offset"`
}

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Total         int64                 `json:"total"`
}
