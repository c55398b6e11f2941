package services

import (
	"context"
	"testing"

	"craftlink_backend/internal/appErrors"
	"craftlink_backend/internal/auth"
	"craftlink_backend/internal/models"
	"craftlink_backend/internal/repositories"
	"craftlink_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newApplicationServiceForTest(
	applicationRepo *MockApplicationRepository,
	jobRepo *MockJobRepository,
	profileRepo *MockProfileRepository,
	notifications *MockNotificationService,
) ApplicationService {
	return NewApplicationService(applicationRepo, jobRepo, profileRepo, notifications)
}

func TestApplicationService_Apply(t *testing.T) {
	artisanActor := auth.Actor{ID: "user-a", Role: models.UserRoleArtisan}
	artisanProfile := &models.ArtisanProfile{BaseModel: models.BaseModel{ID: "artisan-1"}, UserID: "user-a"}
	openJob := &models.Job{ID: "job-1", EmployerProfileID: "employer-1", Title: "Kitchen renovation", Status: models.JobStatusOpen}

	t.Run("successful application notifies the employer with the job title", func(t *testing.T) {
		ar := new(MockApplicationRepository)
		jr := new(MockJobRepository)
		pr := new(MockProfileRepository)
		ns := new(MockNotificationService)

		pr.On("FindArtisanByUserID", mock.Anything, "user-a").Return(artisanProfile, nil)
		jr.On("FindByID", mock.Anything, "job-1").Return(openJob, nil)
		ar.On("Create", mock.Anything, mock.AnythingOfType("*models.JobApplication")).Return(nil)
		pr.On("FindEmployerByID", mock.Anything, "employer-1").
			Return(&models.EmployerProfile{BaseModel: models.BaseModel{ID: "employer-1"}, UserID: "user-e"}, nil)
		ns.On("Dispatch", mock.Anything, "user-e", models.NotificationTypeApplication,
			"New Job Application",
			"You received a new application for: Kitchen renovation",
			mock.Anything).Return()

		service := newApplicationServiceForTest(ar, jr, pr, ns)
		app, err := service.Apply(context.Background(), artisanActor, "job-1", &dto.ApplyRequest{CoverLetter: "I can start Monday"})

		assert.NoError(t, err)
		assert.Equal(t, "job-1", app.JobID)
		assert.Equal(t, "artisan-1", app.ArtisanProfileID)
		assert.Equal(t, models.ApplicationStatusPending, app.Status)
		ar.AssertExpectations(t)
		ns.AssertExpectations(t)
	})

	t.Run("duplicate application surfaces the unique index violation", func(t *testing.T) {
		ar := new(MockApplicationRepository)
		jr := new(MockJobRepository)
		pr := new(MockProfileRepository)
		ns := new(MockNotificationService)

		pr.On("FindArtisanByUserID", mock.Anything, "user-a").Return(artisanProfile, nil)
		jr.On("FindByID", mock.Anything, "job-1").Return(openJob, nil)
		ar.On("Create", mock.Anything, mock.AnythingOfType("*models.JobApplication")).
			Return(appErrors.ErrApplicationExists)

		service := newApplicationServiceForTest(ar, jr, pr, ns)
		app, err := service.Apply(context.Background(), artisanActor, "job-1", &dto.ApplyRequest{CoverLetter: "again"})

		assert.ErrorIs(t, err, appErrors.ErrApplicationExists)
		assert.Nil(t, app)
		ns.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("closed job does not accept applications", func(t *testing.T) {
		ar := new(MockApplicationRepository)
		jr := new(MockJobRepository)
		pr := new(MockProfileRepository)

		pr.On("FindArtisanByUserID", mock.Anything, "user-a").Return(artisanProfile, nil)
		jr.On("FindByID", mock.Anything, "job-1").
			Return(&models.Job{ID: "job-1", Status: models.JobStatusClosed}, nil)

		service := newApplicationServiceForTest(ar, jr, pr, new(MockNotificationService))
		_, err := service.Apply(context.Background(), artisanActor, "job-1", &dto.ApplyRequest{CoverLetter: "late"})

		assert.ErrorIs(t, err, appErrors.ErrJobNotOpen)
		ar.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("employers cannot apply", func(t *testing.T) {
		service := newApplicationServiceForTest(new(MockApplicationRepository), new(MockJobRepository), new(MockProfileRepository), new(MockNotificationService))
		_, err := service.Apply(context.Background(), auth.Actor{ID: "user-e", Role: models.UserRoleEmployer}, "job-1", &dto.ApplyRequest{CoverLetter: "hi"})
		assert.ErrorIs(t, err, appErrors.ErrForbidden)
	})

	t.Run("one artisan may apply to two different jobs", func(t *testing.T) {
		ar := new(MockApplicationRepository)
		jr := new(MockJobRepository)
		pr := new(MockProfileRepository)
		ns := new(MockNotificationService)

		pr.On("FindArtisanByUserID", mock.Anything, "user-a").Return(artisanProfile, nil)
		jr.On("FindByID", mock.Anything, "job-1").Return(openJob, nil)
		jr.On("FindByID", mock.Anything, "job-2").
			Return(&models.Job{ID: "job-2", EmployerProfileID: "employer-1", Title: "Fence repair", Status: models.JobStatusOpen}, nil)
		ar.On("Create", mock.Anything, mock.AnythingOfType("*models.JobApplication")).Return(nil).Twice()
		pr.On("FindEmployerByID", mock.Anything, "employer-1").
			Return(&models.EmployerProfile{BaseModel: models.BaseModel{ID: "employer-1"}, UserID: "user-e"}, nil)
		ns.On("Dispatch", mock.Anything, "user-e", models.NotificationTypeApplication, mock.Anything, mock.Anything, mock.Anything).Return()

		service := newApplicationServiceForTest(ar, jr, pr, ns)

		first, err := service.Apply(context.Background(), artisanActor, "job-1", &dto.ApplyRequest{CoverLetter: "one"})
		assert.NoError(t, err)
		second, err := service.Apply(context.Background(), artisanActor, "job-2", &dto.ApplyRequest{CoverLetter: "two"})
		assert.NoError(t, err)
		assert.NotEqual(t, first.JobID, second.JobID)
		ar.AssertExpectations(t)
	})
}

func TestApplicationService_Decide(t *testing.T) {
	employerActor := auth.Actor{ID: "user-e", Role: models.UserRoleEmployer}
	employerProfile := &models.EmployerProfile{BaseModel: models.BaseModel{ID: "employer-1"}, UserID: "user-e"}
	job := &models.Job{ID: "job-1", EmployerProfileID: "employer-1", Title: "Roof repair", Status: models.JobStatusOpen}
	pendingApp := &models.JobApplication{ID: "app-1", JobID: "job-1", ArtisanProfileID: "artisan-1", Status: models.ApplicationStatusPending}

	t.Run("accept notifies the artisan with the job title", func(t *testing.T) {
		ar := new(MockApplicationRepository)
		jr := new(MockJobRepository)
		pr := new(MockProfileRepository)
		ns := new(MockNotificationService)

		ar.On("FindByID", mock.Anything, "app-1").Return(pendingApp, nil)
		jr.On("FindByID", mock.Anything, "job-1").Return(job, nil)
		pr.On("FindEmployerByUserID", mock.Anything, "user-e").Return(employerProfile, nil)
		ar.On("DecideIfPending", mock.Anything, "app-1", models.ApplicationStatusAccepted).Return(true, nil)
		pr.On("FindArtisanByID", mock.Anything, "artisan-1").
			Return(&models.ArtisanProfile{BaseModel: models.BaseModel{ID: "artisan-1"}, UserID: "user-a"}, nil)
		ns.On("Dispatch", mock.Anything, "user-a", models.NotificationTypeApplication,
			"Application Accepted",
			"Your application for \"Roof repair\" has been accepted.",
			mock.Anything).Return()

		service := newApplicationServiceForTest(ar, jr, pr, ns)
		err := service.Decide(context.Background(), employerActor, "app-1", models.ApplicationStatusAccepted)

		assert.NoError(t, err)
		ar.AssertExpectations(t)
		ns.AssertExpectations(t)
	})

	t.Run("second decision loses the conditional update and sends nothing", func(t *testing.T) {
		ar := new(MockApplicationRepository)
		jr := new(MockJobRepository)
		pr := new(MockProfileRepository)
		ns := new(MockNotificationService)

		ar.On("FindByID", mock.Anything, "app-1").Return(pendingApp, nil)
		jr.On("FindByID", mock.Anything, "job-1").Return(job, nil)
		pr.On("FindEmployerByUserID", mock.Anything, "user-e").Return(employerProfile, nil)
		ar.On("DecideIfPending", mock.Anything, "app-1", models.ApplicationStatusRejected).Return(false, nil)

		service := newApplicationServiceForTest(ar, jr, pr, ns)
		err := service.Decide(context.Background(), employerActor, "app-1", models.ApplicationStatusRejected)

		assert.ErrorIs(t, err, appErrors.ErrApplicationNotPending)
		ns.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("employer of another job cannot decide", func(t *testing.T) {
		ar := new(MockApplicationRepository)
		jr := new(MockJobRepository)
		pr := new(MockProfileRepository)

		ar.On("FindByID", mock.Anything, "app-1").Return(pendingApp, nil)
		jr.On("FindByID", mock.Anything, "job-1").Return(job, nil)
		pr.On("FindEmployerByUserID", mock.Anything, "user-x").
			Return(&models.EmployerProfile{BaseModel: models.BaseModel{ID: "employer-2"}, UserID: "user-x"}, nil)

		service := newApplicationServiceForTest(ar, jr, pr, new(MockNotificationService))
		err := service.Decide(context.Background(), auth.Actor{ID: "user-x", Role: models.UserRoleEmployer}, "app-1", models.ApplicationStatusAccepted)

		assert.ErrorIs(t, err, appErrors.ErrForbidden)
		ar.AssertNotCalled(t, "DecideIfPending", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("withdrawn is not a valid employer decision", func(t *testing.T) {
		service := newApplicationServiceForTest(new(MockApplicationRepository), new(MockJobRepository), new(MockProfileRepository), new(MockNotificationService))
		err := service.Decide(context.Background(), employerActor, "app-1", models.ApplicationStatusWithdrawn)
		assert.ErrorIs(t, err, appErrors.ErrInvalidDecision)
	})
}

func TestApplicationService_Withdraw(t *testing.T) {
	artisanActor := auth.Actor{ID: "user-a", Role: models.UserRoleArtisan}
	artisanProfile := &models.ArtisanProfile{BaseModel: models.BaseModel{ID: "artisan-1"}, UserID: "user-a"}

	t.Run("owner withdraws a pending application", func(t *testing.T) {
		ar := new(MockApplicationRepository)
		pr := new(MockProfileRepository)
		ns := new(MockNotificationService)

		ar.On("FindByID", mock.Anything, "app-1").
			Return(&models.JobApplication{ID: "app-1", JobID: "job-1", ArtisanProfileID: "artisan-1", Status: models.ApplicationStatusPending}, nil)
		pr.On("FindArtisanByUserID", mock.Anything, "user-a").Return(artisanProfile, nil)
		ar.On("WithdrawIfPending", mock.Anything, "app-1", "artisan-1").Return(true, nil)

		service := newApplicationServiceForTest(ar, new(MockJobRepository), pr, ns)
		err := service.Withdraw(context.Background(), artisanActor, "app-1")

		assert.NoError(t, err)
		// withdrawal is silent for the employer
		ns.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("accepted application cannot be withdrawn", func(t *testing.T) {
		ar := new(MockApplicationRepository)
		pr := new(MockProfileRepository)

		ar.On("FindByID", mock.Anything, "app-1").
			Return(&models.JobApplication{ID: "app-1", JobID: "job-1", ArtisanProfileID: "artisan-1", Status: models.ApplicationStatusAccepted}, nil)
		pr.On("FindArtisanByUserID", mock.Anything, "user-a").Return(artisanProfile, nil)

		service := newApplicationServiceForTest(ar, new(MockJobRepository), pr, new(MockNotificationService))
		err := service.Withdraw(context.Background(), artisanActor, "app-1")

		assert.ErrorIs(t, err, appErrors.ErrApplicationNotPending)
		ar.AssertNotCalled(t, "WithdrawIfPending", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("another artisan cannot withdraw", func(t *testing.T) {
		ar := new(MockApplicationRepository)
		pr := new(MockProfileRepository)

		ar.On("FindByID", mock.Anything, "app-1").
			Return(&models.JobApplication{ID: "app-1", JobID: "job-1", ArtisanProfileID: "artisan-1", Status: models.ApplicationStatusPending}, nil)
		pr.On("FindArtisanByUserID", mock.Anything, "user-b").
			Return(&models.ArtisanProfile{BaseModel: models.BaseModel{ID: "artisan-2"}, UserID: "user-b"}, nil)

		service := newApplicationServiceForTest(ar, new(MockJobRepository), pr, new(MockNotificationService))
		err := service.Withdraw(context.Background(), auth.Actor{ID: "user-b", Role: models.UserRoleArtisan}, "app-1")

		assert.ErrorIs(t, err, appErrors.ErrForbidden)
	})

	t.Run("race against a concurrent decision yields conflict", func(t *testing.T) {
		ar := new(MockApplicationRepository)
		pr := new(MockProfileRepository)

		ar.On("FindByID", mock.Anything, "app-1").
			Return(&models.JobApplication{ID: "app-1", JobID: "job-1", ArtisanProfileID: "artisan-1", Status: models.ApplicationStatusPending}, nil)
		pr.On("FindArtisanByUserID", mock.Anything, "user-a").Return(artisanProfile, nil)
		// the row stopped being pending between the read and the update
		ar.On("WithdrawIfPending", mock.Anything, "app-1", "artisan-1").Return(false, nil)

		service := newApplicationServiceForTest(ar, new(MockJobRepository), pr, new(MockNotificationService))
		err := service.Withdraw(context.Background(), artisanActor, "app-1")

		assert.ErrorIs(t, err, appErrors.ErrApplicationNotPending)
	})
}

func TestApplicationService_Get(t *testing.T) {
	app := &models.JobApplication{ID: "app-1", JobID: "job-1", ArtisanProfileID: "artisan-1", Status: models.ApplicationStatusPending}

	t.Run("admin sees any application", func(t *testing.T) {
		ar := new(MockApplicationRepository)
		ar.On("FindByID", mock.Anything, "app-1").Return(app, nil)

		service := newApplicationServiceForTest(ar, new(MockJobRepository), new(MockProfileRepository), new(MockNotificationService))
		got, err := service.Get(context.Background(), auth.Actor{ID: "admin-1", Role: models.UserRoleAdmin}, "app-1")

		assert.NoError(t, err)
		assert.Equal(t, app, got)
	})

	t.Run("unrelated employer is denied", func(t *testing.T) {
		ar := new(MockApplicationRepository)
		jr := new(MockJobRepository)
		pr := new(MockProfileRepository)

		ar.On("FindByID", mock.Anything, "app-1").Return(app, nil)
		jr.On("FindByID", mock.Anything, "job-1").
			Return(&models.Job{ID: "job-1", EmployerProfileID: "employer-1"}, nil)
		pr.On("FindEmployerByUserID", mock.Anything, "user-x").
			Return(&models.EmployerProfile{BaseModel: models.BaseModel{ID: "employer-2"}, UserID: "user-x"}, nil)

		service := newApplicationServiceForTest(ar, jr, pr, new(MockNotificationService))
		_, err := service.Get(context.Background(), auth.Actor{ID: "user-x", Role: models.UserRoleEmployer}, "app-1")

		assert.ErrorIs(t, err, appErrors.ErrForbidden)
	})
}

func TestApplicationService_MyApplications(t *testing.T) {
	artisanActor := auth.Actor{ID: "user-a", Role: models.UserRoleArtisan}
	artisanProfile := &models.ArtisanProfile{BaseModel: models.BaseModel{ID: "artisan-1"}, UserID: "user-a"}

	t.Run("status filter is passed through", func(t *testing.T) {
		ar := new(MockApplicationRepository)
		pr := new(MockProfileRepository)

		pending := models.ApplicationStatusPending
		pr.On("FindArtisanByUserID", mock.Anything, "user-a").Return(artisanProfile, nil)
		ar.On("ListByArtisan", mock.Anything, "artisan-1", &pending).
			Return([]models.JobApplication{{ID: "app-1", Status: pending}}, nil)

		service := newApplicationServiceForTest(ar, new(MockJobRepository), pr, new(MockNotificationService))
		apps, err := service.MyApplications(context.Background(), artisanActor, "pending")

		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		pr := new(MockProfileRepository)
		pr.On("FindArtisanByUserID", mock.Anything, "user-a").Return(artisanProfile, nil)

		service := newApplicationServiceForTest(new(MockApplicationRepository), new(MockJobRepository), pr, new(MockNotificationService))
		_, err := service.MyApplications(context.Background(), artisanActor, "bogus")

		var appErr *appErrors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, appErrors.ErrValidationFailed.Code, appErr.Code)
	})
}

func TestApplicationService_AdminList(t *testing.T) {
	admin := auth.Actor{ID: "admin-1", Role: models.UserRoleAdmin}

	t.Run("admin lists applications platform-wide", func(t *testing.T) {
		ar := new(MockApplicationRepository)
		rejected := models.ApplicationStatusRejected
		ar.On("List", mock.Anything, mock.MatchedBy(func(c repositories.ApplicationCriteria) bool {
			return c.Status != nil && *c.Status == rejected && c.JobID == "job-1"
		})).Return([]models.JobApplication{{ID: "app-3", Status: rejected}}, nil)

		service := newApplicationServiceForTest(ar, new(MockJobRepository), new(MockProfileRepository), new(MockNotificationService))
		apps, err := service.AdminList(context.Background(), admin, dto.ApplicationListCriteria{Status: "rejected", JobID: "job-1"})

		assert.NoError(t, err)
		assert.Len(t, apps, 1)
		ar.AssertExpectations(t)
	})

	t.Run("employer is denied", func(t *testing.T) {
		ar := new(MockApplicationRepository)
		service := newApplicationServiceForTest(ar, new(MockJobRepository), new(MockProfileRepository), new(MockNotificationService))

		_, err := service.AdminList(context.Background(), auth.Actor{ID: "user-e", Role: models.UserRoleEmployer}, dto.ApplicationListCriteria{})

		assert.ErrorIs(t, err, appErrors.ErrForbidden)
		ar.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		service := newApplicationServiceForTest(new(MockApplicationRepository), new(MockJobRepository), new(MockProfileRepository), new(MockNotificationService))
		_, err := service.AdminList(context.Background(), admin, dto.ApplicationListCriteria{Status: "expired"})

		var appErr *appErrors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, appErrors.ErrValidationFailed.Code, appErr.Code)
	})
}
