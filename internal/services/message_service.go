package services

import (
	"context"

	"craftlink_backend/internal/appErrors"
	"craftlink_backend/internal/auth"
	"craftlink_backend/internal/models"
	"craftlink_backend/internal/repositories"
	"craftlink_backend/internal/services/dto"
)

// MessageService - внутренняя почта между пользователями (store-and-forward).
type MessageService interface {
	Send(ctx context.Context, actor auth.Actor, req *dto.SendMessageRequest) (*models.Message, error)
	Inbox(ctx context.Context, actor auth.Actor) ([]models.Message, error)
	Sent(ctx context.Context, actor auth.Actor) ([]models.Message, error)
	MarkAsRead(ctx context.Context, actor auth.Actor, messageID string) error
}

type messageService struct {
	messageRepo   repositories.MessageRepository
	userRepo      repositories.UserRepository
	notifications NotificationService
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
) MessageService {
	return &messageService{
		messageRepo:   messageRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

func (s *messageService) Send(ctx context.Context, actor auth.Actor, req *dto.SendMessageRequest) (*models.Message, error) {
	if req.RecipientID == actor.ID {
		return nil, appErrors.ErrValidationFailed.WithDetails("cannot send a message to yourself")
	}

	recipient, err := s.userRepo.FindByID(ctx, req.RecipientID)
	if err != nil {
		return nil, err
	}

	sender, err := s.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	m := &models.Message{
		SenderID:    actor.ID,
		RecipientID: recipient.ID,
		Subject:     req.Subject,
		Body:        req.Body,
	}
	if err := s.messageRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.notifications.Dispatch(ctx, recipient.ID, models.NotificationTypeNewMessage,
		"New Message",
		"You have a new message from "+sender.FirstName+" "+sender.LastName,
		&m.ID)

	return m, nil
}

func (s *messageService) Inbox(ctx context.Context, actor auth.Actor) ([]models.Message, error) {
	return s.messageRepo.Inbox(ctx, actor.ID)
}

func (s *messageService) Sent(ctx context.Context, actor auth.Actor) ([]models.Message, error) {
	return s.messageRepo.Sent(ctx, actor.ID)
}

func (s *messageService) MarkAsRead(ctx context.Context, actor auth.Actor, messageID string) error {
	return s.messageRepo.MarkAsRead(ctx, messageID, actor.ID)
}
