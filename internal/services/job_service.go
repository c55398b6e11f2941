package services

import (
	"context"
	"encoding/json"

	"craftlink_backend/internal/appErrors"
	"craftlink_backend/internal/auth"
	"craftlink_backend/internal/models"
	"craftlink_backend/internal/repositories"
	"craftlink_backend/internal/services/dto"

	"gorm.io/datatypes"
)

// допустимые переходы статуса вакансии
var jobTransitions = map[models.JobStatus][]models.JobStatus{
	models.JobStatusOpen:       {models.JobStatusInProgress, models.JobStatusClosed},
	models.JobStatusInProgress: {models.JobStatusCompleted, models.JobStatusClosed},
}

type JobService interface {
	Create(ctx context.Context, actor auth.Actor, req *dto.CreateJobRequest) (*models.Job, error)
	Get(ctx context.Context, jobID string) (*models.Job, error)
	Browse(ctx context.Context, criteria dto.JobListCriteria) ([]models.Job, error)
	MyJobs(ctx context.Context, actor auth.Actor) ([]models.Job, error)
	// AdminList - все вакансии платформы независимо от статуса, только для админа
	AdminList(ctx context.Context, actor auth.Actor, criteria dto.JobListCriteria) ([]models.Job, error)
	UpdateStatus(ctx context.Context, actor auth.Actor, jobID string, newStatus models.JobStatus) error
}

type jobService struct {
	jobRepo     repositories.JobRepository
	profileRepo repositories.ProfileRepository
}

func NewJobService(jobRepo repositories.JobRepository, profileRepo repositories.ProfileRepository) JobService {
	return &jobService{jobRepo: jobRepo, profileRepo: profileRepo}
}

func (s *jobService) Create(ctx context.Context, actor auth.Actor, req *dto.CreateJobRequest) (*models.Job, error) {
	if actor.Role != models.UserRoleEmployer {
		return nil, appErrors.ErrForbidden
	}
	if req.BudgetMax < req.BudgetMin {
		return nil, appErrors.ErrInvalidBudgetRange
	}

	employer, err := s.profileRepo.FindEmployerByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	skills := req.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		EmployerProfileID: employer.ID,
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Location:          req.Location,
		State:             req.State,
		BudgetMin:         req.BudgetMin,
		BudgetMax:         req.BudgetMax,
		RequiredSkills:    datatypes.JSON(skillsJSON),
		ExperienceLevel:   req.ExperienceLevel,
		Status:            models.JobStatusOpen,
		Deadline:          req.Deadline,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) Get(ctx context.Context, jobID string) (*models.Job, error) {
	return s.jobRepo.FindByID(ctx, jobID)
}

// Browse возвращает открытые вакансии с фильтрами
func (s *jobService) Browse(ctx context.Context, criteria dto.JobListCriteria) ([]models.Job, error) {
	open := models.JobStatusOpen
	repoCriteria := repositories.JobCriteria{
		Status:   &open,
		State:    criteria.State,
		Category: criteria.Category,
		Search:   criteria.Search,
		Limit:    criteria.Limit,
		Offset:   criteria.Offset,
	}
	if repoCriteria.Limit <= 0 {
		repoCriteria.Limit = 50
	}
	return s.jobRepo.List(ctx, repoCriteria)
}

func (s *jobService) MyJobs(ctx context.Context, actor auth.Actor) ([]models.Job, error) {
	if actor.Role != models.UserRoleEmployer {
		return nil, appErrors.ErrForbidden
	}
	employer, err := s.profileRepo.FindEmployerByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return s.jobRepo.ListByEmployer(ctx, employer.ID)
}

func (s *jobService) AdminList(ctx context.Context, actor auth.Actor, criteria dto.JobListCriteria) ([]models.Job, error) {
	if !auth.IsAdmin(actor) {
		return nil, appErrors.ErrForbidden
	}

	repoCriteria := repositories.JobCriteria{
		State:    criteria.State,
		Category: criteria.Category,
		Search:   criteria.Search,
		Limit:    criteria.Limit,
		Offset:   criteria.Offset,
	}
	if criteria.Status != "" {
		st := models.JobStatus(criteria.Status)
		if !st.IsValid() {
			return nil, appErrors.ErrValidationFailed.WithDetails("unknown job status: " + criteria.Status)
		}
		repoCriteria.Status = &st
	}
	if repoCriteria.Limit <= 0 {
		repoCriteria.Limit = 50
	}
	return s.jobRepo.List(ctx, repoCriteria)
}

func (s *jobService) UpdateStatus(ctx context.Context, actor auth.Actor, jobID string, newStatus models.JobStatus) error {
	if !newStatus.IsValid() {
		return appErrors.ErrValidationFailed.WithDetails("unknown job status: " + string(newStatus))
	}
	if actor.Role != models.UserRoleEmployer {
		return appErrors.ErrForbidden
	}

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return err
	}
	employer, err := s.profileRepo.FindEmployerByUserID(ctx, actor.ID)
	if err != nil || job.EmployerProfileID != employer.ID {
		return appErrors.ErrForbidden
	}

	allowed := false
	for _, to := range jobTransitions[job.Status] {
		if to == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		return appErrors.ErrInvalidJobTransition
	}

	// Условное обновление: если статус успел измениться, переход не применяется
	updated, err := s.jobRepo.UpdateStatus(ctx, jobID, employer.ID, job.Status, newStatus)
	if err != nil {
		return err
	}
	if !updated {
		return appErrors.ErrInvalidJobTransition
	}
	return nil
}
