package services

import (
	"context"
	"fmt"

	"craftlink_backend/internal/appErrors"
	"craftlink_backend/internal/auth"
	"craftlink_backend/internal/email"
	"craftlink_backend/internal/logger"
	"craftlink_backend/internal/models"
	"craftlink_backend/internal/repositories"
	"craftlink_backend/internal/services/dto"
)

// VerificationService управляет жизненным циклом проверки профиля:
// pending -> approved | rejected. Оба конечных статуса терминальны,
// новый цикл — это новая запись (RequestReverification), не переиспользование старой.
type VerificationService interface {
	Approve(ctx context.Context, actor auth.Actor, logID, comments string) error
	Reject(ctx context.Context, actor auth.Actor, logID, comments string) error
	RequestReverification(ctx context.Context, actor auth.Actor) (*models.VerificationLog, error)
	Get(ctx context.Context, actor auth.Actor, logID string) (*models.VerificationLog, error)
	List(ctx context.Context, actor auth.Actor, criteria dto.VerificationListCriteria) ([]models.VerificationLog, error)
	Stats(ctx context.Context, actor auth.Actor) (map[models.VerificationStatus]int64, error)
}

type verificationService struct {
	verificationRepo      repositories.VerificationRepository
	userRepo              repositories.UserRepository
	notifications         NotificationService
	mailer                email.Sender
	requireRejectComments bool
}

func NewVerificationService(
	verificationRepo repositories.VerificationRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
	mailer email.Sender,
	requireRejectComments bool,
) VerificationService {
	return &verificationService{
		verificationRepo:      verificationRepo,
		userRepo:              userRepo,
		notifications:         notifications,
		mailer:                mailer,
		requireRejectComments: requireRejectComments,
	}
}

func (s *verificationService) Approve(ctx context.Context, actor auth.Actor, logID, comments string) error {
	if !auth.CanReview(actor) {
		return appErrors.ErrForbidden
	}

	decided, err := s.verificationRepo.Decide(ctx, logID, actor.ID, models.VerificationStatusApproved, comments)
	if err != nil {
		return err
	}

	// Переход закоммичен; уведомление best-effort
	message := "Your profile has been verified by the government agency."
	if comments != "" {
		message += " Comments: " + comments
	}
	s.notifications.Dispatch(ctx, decided.UserID,
		models.NotificationTypeProfileVerified, "Profile Verified", message, nil)
	s.sendOutcomeEmail(ctx, decided.UserID, "Profile Verified", message)

	return nil
}

func (s *verificationService) Reject(ctx context.Context, actor auth.Actor, logID, comments string) error {
	if !auth.CanReview(actor) {
		return appErrors.ErrForbidden
	}
	if s.requireRejectComments && comments == "" {
		return appErrors.ErrRejectCommentsRequired
	}

	decided, err := s.verificationRepo.Decide(ctx, logID, actor.ID, models.VerificationStatusRejected, comments)
	if err != nil {
		return err
	}

	message := "Your profile verification has been rejected. "
	if comments != "" {
		message += "Reason: " + comments
	} else {
		message += "Please review and update your information."
	}
	s.notifications.Dispatch(ctx, decided.UserID,
		models.NotificationTypeProfileRejected, "Profile Verification Rejected", message, nil)
	s.sendOutcomeEmail(ctx, decided.UserID, "Profile Verification Rejected", message)

	return nil
}

func (s *verificationService) RequestReverification(ctx context.Context, actor auth.Actor) (*models.VerificationLog, error) {
	if actor.Role != models.UserRoleArtisan && actor.Role != models.UserRoleEmployer {
		return nil, appErrors.ErrForbidden
	}

	pending, err := s.verificationRepo.HasPending(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, appErrors.ErrVerificationInProgress
	}

	log := &models.VerificationLog{
		UserID:           actor.ID,
		VerificationType: models.VerificationTypeProfile,
		Status:           models.VerificationStatusPending,
	}
	if err := s.verificationRepo.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *verificationService) Get(ctx context.Context, actor auth.Actor, logID string) (*models.VerificationLog, error) {
	log, err := s.verificationRepo.FindByID(ctx, logID)
	if err != nil {
		return nil, err
	}
	// Запись видит админ или её владелец
	if !auth.CanReview(actor) && log.UserID != actor.ID {
		return nil, appErrors.ErrForbidden
	}
	return log, nil
}

func (s *verificationService) List(ctx context.Context, actor auth.Actor, criteria dto.VerificationListCriteria) ([]models.VerificationLog, error) {
	if !auth.CanReview(actor) {
		return nil, appErrors.ErrForbidden
	}

	repoCriteria := repositories.VerificationCriteria{
		UserID: criteria.UserID,
		Limit:  criteria.Limit,
		Offset: criteria.Offset,
	}
	if criteria.Status != "" {
		status := models.VerificationStatus(criteria.Status)
		repoCriteria.Status = &status
	}
	if repoCriteria.Limit <= 0 {
		repoCriteria.Limit = 50
	}
	return s.verificationRepo.List(ctx, repoCriteria)
}

func (s *verificationService) Stats(ctx context.Context, actor auth.Actor) (map[models.VerificationStatus]int64, error) {
	if !auth.CanReview(actor) {
		return nil, appErrors.ErrForbidden
	}
	return s.verificationRepo.CountByStatus(ctx)
}

func (s *verificationService) sendOutcomeEmail(ctx context.Context, userID, subject, body string) {
	if s.mailer == nil {
		return
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		logger.Warn("verification email: user lookup failed", "user_id", userID, "error", err)
		return
	}
	if err := s.mailer.Send(user.Email, subject, fmt.Sprintf("<p>%s</p>", body)); err != nil {
		logger.Warn("verification email send failed", "user_id", userID, "error", err)
	}
}
