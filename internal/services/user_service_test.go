package services

import (
	"context"
	"testing"

	"craftlink_backend/internal/appErrors"
	"craftlink_backend/internal/auth"
	"craftlink_backend/internal/models"
	"craftlink_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserService_UpdateStatus(t *testing.T) {
	admin := auth.Actor{ID: "admin-1", Role: models.UserRoleAdmin}

	t.Run("admin suspends another user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("UpdateStatus", mock.Anything, "user-2", models.UserStatusSuspended).Return(nil)

		service := NewUserService(userRepo)
		err := service.UpdateStatus(context.Background(), admin, "user-2", models.UserStatusSuspended)

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("admin cannot change own status", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewUserService(userRepo)

		err := service.UpdateStatus(context.Background(), admin, "admin-1", models.UserStatusSuspended)

		assert.ErrorIs(t, err, appErrors.ErrCannotModifySelf)
		userRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-admin is denied", func(t *testing.T) {
		service := NewUserService(new(MockUserRepository))
		err := service.UpdateStatus(context.Background(), auth.Actor{ID: "user-1", Role: models.UserRoleEmployer}, "user-2", models.UserStatusInactive)
		assert.ErrorIs(t, err, appErrors.ErrForbidden)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		service := NewUserService(new(MockUserRepository))
		err := service.UpdateStatus(context.Background(), admin, "user-2", models.UserStatus("banned"))

		var appErr *appErrors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, appErrors.ErrValidationFailed.Code, appErr.Code)
	})
}

func TestUserService_UpdateAccount(t *testing.T) {
	actor := auth.Actor{ID: "user-2", Role: models.UserRoleArtisan}

	t.Run("user updates own contact fields", func(t *testing.T) {
		updated := &models.User{
			BaseModel: models.BaseModel{ID: "user-2"},
			FirstName: "Ada",
			LastName:  "Okafor",
			Phone:     "+2348012345678",
		}
		userRepo := new(MockUserRepository)
		userRepo.On("UpdateAccount", mock.Anything, "user-2", "Ada", "Okafor", "+2348012345678").Return(nil)
		userRepo.On("FindByID", mock.Anything, "user-2").Return(updated, nil)

		service := NewUserService(userRepo)
		got, err := service.UpdateAccount(context.Background(), actor, &dto.UpdateAccountRequest{
			FirstName: "Ada",
			LastName:  "Okafor",
			Phone:     "+2348012345678",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Ada", got.FirstName)
		userRepo.AssertExpectations(t)
	})

	t.Run("missing account row surfaces not found", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("UpdateAccount", mock.Anything, "user-2", "Ada", "Okafor", "+2348012345678").
			Return(appErrors.ErrUserNotFound)

		service := NewUserService(userRepo)
		_, err := service.UpdateAccount(context.Background(), actor, &dto.UpdateAccountRequest{
			FirstName: "Ada",
			LastName:  "Okafor",
			Phone:     "+2348012345678",
		})

		assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
		userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	actor := auth.Actor{ID: "user-2", Role: models.UserRoleEmployer}

	currentHash, err := auth.HashPassword("old-secret-1")
	assert.NoError(t, err)
	stored := &models.User{BaseModel: models.BaseModel{ID: "user-2"}, PasswordHash: currentHash}

	t.Run("password changes after current one is verified", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, "user-2").Return(stored, nil)
		userRepo.On("UpdatePassword", mock.Anything, "user-2", mock.MatchedBy(func(hash string) bool {
			return auth.CheckPasswordHash("new-secret-1", hash)
		})).Return(nil)

		service := NewUserService(userRepo)
		err := service.ChangePassword(context.Background(), actor, &dto.ChangePasswordRequest{
			CurrentPassword: "old-secret-1",
			NewPassword:     "new-secret-1",
			ConfirmPassword: "new-secret-1",
		})

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("wrong current password is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, "user-2").Return(stored, nil)

		service := NewUserService(userRepo)
		err := service.ChangePassword(context.Background(), actor, &dto.ChangePasswordRequest{
			CurrentPassword: "guess",
			NewPassword:     "new-secret-1",
			ConfirmPassword: "new-secret-1",
		})

		assert.ErrorIs(t, err, appErrors.ErrWrongPassword)
		userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("short new password is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, "user-2").Return(stored, nil)

		service := NewUserService(userRepo)
		err := service.ChangePassword(context.Background(), actor, &dto.ChangePasswordRequest{
			CurrentPassword: "old-secret-1",
			NewPassword:     "short",
			ConfirmPassword: "short",
		})

		assert.ErrorIs(t, err, appErrors.ErrWeakPassword)
		userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserService_Delete(t *testing.T) {
	admin := auth.Actor{ID: "admin-1", Role: models.UserRoleAdmin}

	t.Run("admin deletes a user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("Delete", mock.Anything, "user-2").Return(nil)

		service := NewUserService(userRepo)
		assert.NoError(t, service.Delete(context.Background(), admin, "user-2"))
		userRepo.AssertExpectations(t)
	})

	t.Run("admin cannot delete own account", func(t *testing.T) {
		service := NewUserService(new(MockUserRepository))
		err := service.Delete(context.Background(), admin, "admin-1")
		assert.ErrorIs(t, err, appErrors.ErrCannotModifySelf)
	})
}

func TestUserService_Get(t *testing.T) {
	user := &models.User{BaseModel: models.BaseModel{ID: "user-2"}, Email: "u@example.com"}

	t.Run("user reads own record", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, "user-2").Return(user, nil)

		service := NewUserService(userRepo)
		got, err := service.Get(context.Background(), auth.Actor{ID: "user-2", Role: models.UserRoleArtisan}, "user-2")

		assert.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("user cannot read someone else", func(t *testing.T) {
		service := NewUserService(new(MockUserRepository))
		_, err := service.Get(context.Background(), auth.Actor{ID: "user-3", Role: models.UserRoleArtisan}, "user-2")
		assert.ErrorIs(t, err, appErrors.ErrForbidden)
	})
}
