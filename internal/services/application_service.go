package services

import (
	"context"
	"strings"

	"craftlink_backend/internal/appErrors"
	"craftlink_backend/internal/auth"
	"craftlink_backend/internal/models"
	"craftlink_backend/internal/repositories"
	"craftlink_backend/internal/services/dto"
)

// ApplicationService управляет жизненным циклом отклика:
// pending -> accepted | rejected | withdrawn, все три терминальны.
type ApplicationService interface {
	Apply(ctx context.Context, actor auth.Actor, jobID string, req *dto.ApplyRequest) (*models.JobApplication, error)
	Decide(ctx context.Context, actor auth.Actor, applicationID string, decision models.ApplicationStatus) error
	Withdraw(ctx context.Context, actor auth.Actor, applicationID string) error
	Get(ctx context.Context, actor auth.Actor, applicationID string) (*models.JobApplication, error)
	MyApplications(ctx context.Context, actor auth.Actor, status string) ([]models.JobApplication, error)
	JobApplications(ctx context.Context, actor auth.Actor, jobID string) ([]models.JobApplication, error)
	// AdminList - все отклики платформы, только для админа
	AdminList(ctx context.Context, actor auth.Actor, criteria dto.ApplicationListCriteria) ([]models.JobApplication, error)
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	profileRepo     repositories.ProfileRepository
	notifications   NotificationService
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	notifications NotificationService,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		profileRepo:     profileRepo,
		notifications:   notifications,
	}
}

func (s *applicationService) Apply(ctx context.Context, actor auth.Actor, jobID string, req *dto.ApplyRequest) (*models.JobApplication, error) {
	if actor.Role != models.UserRoleArtisan {
		return nil, appErrors.ErrForbidden
	}

	artisan, err := s.profileRepo.FindArtisanByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusOpen {
		return nil, appErrors.ErrJobNotOpen
	}

	app := &models.JobApplication{
		JobID:            job.ID,
		ArtisanProfileID: artisan.ID,
		CoverLetter:      req.CoverLetter,
		ProposedRate:     req.ProposedRate,
		Status:           models.ApplicationStatusPending,
	}
	// Дубликат по (job, artisan) ловит уникальный индекс
	if err := s.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	// Уведомляем работодателя после вставки, best-effort
	if employer, err := s.profileRepo.FindEmployerByID(ctx, job.EmployerProfileID); err == nil {
		s.notifications.Dispatch(ctx, employer.UserID, models.NotificationTypeApplication,
			"New Job Application",
			"You received a new application for: "+job.Title,
			&app.ID)
	}

	return app, nil
}

func (s *applicationService) Decide(ctx context.Context, actor auth.Actor, applicationID string, decision models.ApplicationStatus) error {
	if decision != models.ApplicationStatusAccepted && decision != models.ApplicationStatusRejected {
		return appErrors.ErrInvalidDecision
	}

	app, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		return err
	}
	job, err := s.jobRepo.FindByID(ctx, app.JobID)
	if err != nil {
		return err
	}
	employer, err := s.profileRepo.FindEmployerByUserID(ctx, actor.ID)
	if err != nil {
		return appErrors.ErrForbidden
	}
	if !auth.CanDecideApplication(actor, job, employer) {
		return appErrors.ErrForbidden
	}

	// Условное обновление закрывает гонку двух одновременных решений:
	// второе получает InvalidState и не шлет уведомление
	updated, err := s.applicationRepo.DecideIfPending(ctx, applicationID, decision)
	if err != nil {
		return err
	}
	if !updated {
		return appErrors.ErrApplicationNotPending
	}

	outcome := "Your application for \"" + job.Title + "\" has been " + string(decision) + "."
	if artisan, err := s.profileRepo.FindArtisanByID(ctx, app.ArtisanProfileID); err == nil {
		s.notifications.Dispatch(ctx, artisan.UserID, models.NotificationTypeApplication,
			"Application "+titleCase(string(decision)), outcome, &app.ID)
	}

	// Принятие одного отклика сознательно не отклоняет остальные:
	// каждый отклик решается независимо
	return nil
}

func (s *applicationService) Withdraw(ctx context.Context, actor auth.Actor, applicationID string) error {
	app, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		return err
	}
	artisan, err := s.profileRepo.FindArtisanByUserID(ctx, actor.ID)
	if err != nil {
		return appErrors.ErrForbidden
	}
	if !auth.OwnsApplication(actor, app, artisan) {
		return appErrors.ErrForbidden
	}
	if !auth.CanWithdraw(actor, app, artisan) {
		// Владелец есть, но отклик уже не pending
		return appErrors.ErrApplicationNotPending
	}

	updated, err := s.applicationRepo.WithdrawIfPending(ctx, applicationID, artisan.ID)
	if err != nil {
		return err
	}
	if !updated {
		return appErrors.ErrApplicationNotPending
	}
	// Работодатель не уведомляется об отзыве (поведение исходной системы)
	return nil
}

func (s *applicationService) Get(ctx context.Context, actor auth.Actor, applicationID string) (*models.JobApplication, error) {
	app, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case models.UserRoleAdmin:
		return app, nil
	case models.UserRoleArtisan:
		artisan, err := s.profileRepo.FindArtisanByUserID(ctx, actor.ID)
		if err != nil || artisan.ID != app.ArtisanProfileID {
			return nil, appErrors.ErrForbidden
		}
		return app, nil
	case models.UserRoleEmployer:
		job, err := s.jobRepo.FindByID(ctx, app.JobID)
		if err != nil {
			return nil, err
		}
		employer, err := s.profileRepo.FindEmployerByUserID(ctx, actor.ID)
		if err != nil || job.EmployerProfileID != employer.ID {
			return nil, appErrors.ErrForbidden
		}
		return app, nil
	}
	return nil, appErrors.ErrForbidden
}

func (s *applicationService) MyApplications(ctx context.Context, actor auth.Actor, status string) ([]models.JobApplication, error) {
	if actor.Role != models.UserRoleArtisan {
		return nil, appErrors.ErrForbidden
	}
	artisan, err := s.profileRepo.FindArtisanByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	var statusFilter *models.ApplicationStatus
	if status != "" {
		st := models.ApplicationStatus(status)
		if !st.IsValid() {
			return nil, appErrors.ErrValidationFailed.WithDetails("unknown application status: " + status)
		}
		statusFilter = &st
	}
	return s.applicationRepo.ListByArtisan(ctx, artisan.ID, statusFilter)
}

func (s *applicationService) JobApplications(ctx context.Context, actor auth.Actor, jobID string) ([]models.JobApplication, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.UserRoleAdmin {
		employer, err := s.profileRepo.FindEmployerByUserID(ctx, actor.ID)
		if err != nil || job.EmployerProfileID != employer.ID {
			return nil, appErrors.ErrForbidden
		}
	}
	return s.applicationRepo.ListByJob(ctx, jobID)
}

func (s *applicationService) AdminList(ctx context.Context, actor auth.Actor, criteria dto.ApplicationListCriteria) ([]models.JobApplication, error) {
	if !auth.IsAdmin(actor) {
		return nil, appErrors.ErrForbidden
	}

	repoCriteria := repositories.ApplicationCriteria{
		JobID:  criteria.JobID,
		Limit:  criteria.Limit,
		Offset: criteria.Offset,
	}
	if criteria.Status != "" {
		st := models.ApplicationStatus(criteria.Status)
		if !st.IsValid() {
			return nil, appErrors.ErrValidationFailed.WithDetails("unknown application status: " + criteria.Status)
		}
		repoCriteria.Status = &st
	}
	if repoCriteria.Limit <= 0 {
		repoCriteria.Limit = 50
	}
	return s.applicationRepo.List(ctx, repoCriteria)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
