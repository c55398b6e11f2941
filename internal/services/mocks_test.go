package services

import (
	"context"

	"craftlink_backend/internal/models"
	"craftlink_backend/internal/repositories"
	"craftlink_backend/internal/services/dto"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateWithProfile(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, criteria repositories.UserCriteria) ([]models.User, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateAccount(ctx context.Context, id, firstName, lastName, phone string) error {
	args := m.Called(ctx, id, firstName, lastName, phone)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, id string, status models.UserStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockUserRepository) SetProfileVerified(ctx context.Context, id string, verified bool) error {
	args := m.Called(ctx, id, verified)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProfileRepository is a mock implementation of repositories.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindArtisanByUserID(ctx context.Context, userID string) (*models.ArtisanProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ArtisanProfile), args.Error(1)
}

func (m *MockProfileRepository) FindArtisanByID(ctx context.Context, id string) (*models.ArtisanProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ArtisanProfile), args.Error(1)
}

func (m *MockProfileRepository) FindEmployerByUserID(ctx context.Context, userID string) (*models.EmployerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmployerProfile), args.Error(1)
}

func (m *MockProfileRepository) FindEmployerByID(ctx context.Context, id string) (*models.EmployerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmployerProfile), args.Error(1)
}

func (m *MockProfileRepository) UpdateArtisan(ctx context.Context, p *models.ArtisanProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateEmployer(ctx context.Context, p *models.EmployerProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockJobRepository is a mock implementation of repositories.JobRepository.
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, job *models.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) FindByID(ctx context.Context, id string) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) List(ctx context.Context, criteria repositories.JobCriteria) ([]models.Job, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobRepository) ListByEmployer(ctx context.Context, employerProfileID string) ([]models.Job, error) {
	args := m.Called(ctx, employerProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobRepository) UpdateStatus(ctx context.Context, jobID, employerProfileID string, from, to models.JobStatus) (bool, error) {
	args := m.Called(ctx, jobID, employerProfileID, from, to)
	return args.Bool(0), args.Error(1)
}

// MockApplicationRepository is a mock implementation of repositories.ApplicationRepository.
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *models.JobApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) FindByID(ctx context.Context, id string) (*models.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobApplication), args.Error(1)
}

func (m *MockApplicationRepository) ListByArtisan(ctx context.Context, artisanProfileID string, status *models.ApplicationStatus) ([]models.JobApplication, error) {
	args := m.Called(ctx, artisanProfileID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobApplication), args.Error(1)
}

func (m *MockApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]models.JobApplication, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobApplication), args.Error(1)
}

func (m *MockApplicationRepository) List(ctx context.Context, criteria repositories.ApplicationCriteria) ([]models.JobApplication, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobApplication), args.Error(1)
}

func (m *MockApplicationRepository) DecideIfPending(ctx context.Context, id string, status models.ApplicationStatus) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepository) WithdrawIfPending(ctx context.Context, id, artisanProfileID string) (bool, error) {
	args := m.Called(ctx, id, artisanProfileID)
	return args.Bool(0), args.Error(1)
}

// MockVerificationRepository is a mock implementation of repositories.VerificationRepository.
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Create(ctx context.Context, log *models.VerificationLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockVerificationRepository) FindByID(ctx context.Context, id string) (*models.VerificationLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VerificationLog), args.Error(1)
}

func (m *MockVerificationRepository) HasPending(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVerificationRepository) List(ctx context.Context, criteria repositories.VerificationCriteria) ([]models.VerificationLog, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VerificationLog), args.Error(1)
}

func (m *MockVerificationRepository) CountByStatus(ctx context.Context) (map[models.VerificationStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[models.VerificationStatus]int64), args.Error(1)
}

func (m *MockVerificationRepository) Decide(ctx context.Context, logID, adminID string, status models.VerificationStatus, comments string) (*models.VerificationLog, error) {
	args := m.Called(ctx, logID, adminID, status, comments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VerificationLog), args.Error(1)
}

// MockNotificationService is a mock implementation of NotificationService.
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, userID, ntype, title, message string, relatedID *string) error {
	args := m.Called(ctx, userID, ntype, title, message, relatedID)
	return args.Error(0)
}

func (m *MockNotificationService) Dispatch(ctx context.Context, userID, ntype, title, message string, relatedID *string) {
	m.Called(ctx, userID, ntype, title, message, relatedID)
}

func (m *MockNotificationService) List(ctx context.Context, userID string, criteria dto.NotificationListCriteria) (*dto.NotificationListResponse, error) {
	args := m.Called(ctx, userID, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.NotificationListResponse), args.Error(1)
}

func (m *MockNotificationService) MarkAsRead(ctx context.Context, userID, notificationID string) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

func (m *MockNotificationService) MarkAllAsRead(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmailSender is a mock implementation of email.Sender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}
