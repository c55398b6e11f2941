package services

import (
	"context"

	"craftlink_backend/internal/logger"
	"craftlink_backend/internal/models"
	"craftlink_backend/internal/repositories"
	"craftlink_backend/internal/services/dto"
)

// NotificationService - append-only диспетчер уведомлений.
// Никакой бизнес-логики: переходы состояний живут в workflow-сервисах.
type NotificationService interface {
	Notify(ctx context.Context, userID, ntype, title, message string, relatedID *string) error
	// Dispatch - best-effort вариант Notify для вызова после коммита
	// основной транзакции: ошибка логируется и не прерывает переход.
	Dispatch(ctx context.Context, userID, ntype, title, message string, relatedID *string)
	List(ctx context.Context, userID string, criteria dto.NotificationListCriteria) (*dto.NotificationListResponse, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) error
	MarkAllAsRead(ctx context.Context, userID string) error
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

type notificationService struct {
	repo repositories.NotificationRepository
}

func NewNotificationService(repo repositories.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) Notify(ctx context.Context, userID, ntype, title, message string, relatedID *string) error {
	n := &models.Notification{
		UserID:    userID,
		Type:      ntype,
		Title:     title,
		Message:   message,
		RelatedID: relatedID,
	}
	return s.repo.Create(ctx, n)
}

func (s *notificationService) Dispatch(ctx context.Context, userID, ntype, title, message string, relatedID *string) {
	if err := s.Notify(ctx, userID, ntype, title, message, relatedID); err != nil {
		logger.Warn("notification dispatch failed",
			"user_id", userID,
			"type", ntype,
			"error", err,
		)
	}
}

func (s *notificationService) List(ctx context.Context, userID string, criteria dto.NotificationListCriteria) (*dto.NotificationListResponse, error) {
	repoCriteria := repositories.NotificationCriteria{
		UnreadOnly: criteria.UnreadOnly,
		Limit:      criteria.Limit,
		Offset:     criteria.Offset,
	}
	if repoCriteria.Limit <= 0 {
		repoCriteria.Limit = 50
	}

	notifications, total, err := s.repo.ListByUser(ctx, userID, repoCriteria)
	if err != nil {
		return nil, err
	}
	return &dto.NotificationListResponse{Notifications: notifications, Total: total}, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID string) error {
	return s.repo.MarkAsRead(ctx, userID, notificationID)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.repo.UnreadCount(ctx, userID)
}
