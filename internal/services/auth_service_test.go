package services

import (
	"context"
	"testing"
	"time"

	"craftlink_backend/internal/appErrors"
	"craftlink_backend/internal/auth"
	"craftlink_backend/internal/models"
	"craftlink_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		req           *dto.RegisterRequest
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "successful artisan registration",
			req: &dto.RegisterRequest{
				Email:     "mary@example.com",
				Password:  "password123",
				FirstName: "Mary",
				LastName:  "Okoro",
				Role:      "artisan",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("CreateWithProfile", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)
			},
		},
		{
			name: "admin role cannot be self-registered",
			req: &dto.RegisterRequest{
				Email:    "bad@example.com",
				Password: "password123",
				Role:     "admin",
			},
			setupMock:     func(m *MockUserRepository) {},
			expectedError: appErrors.ErrInvalidUserRole,
		},
		{
			name: "short password is rejected",
			req: &dto.RegisterRequest{
				Email:    "weak@example.com",
				Password: "short",
				Role:     "employer",
			},
			setupMock:     func(m *MockUserRepository) {},
			expectedError: appErrors.ErrWeakPassword,
		},
		{
			name: "duplicate email surfaces the repository conflict",
			req: &dto.RegisterRequest{
				Email:    "taken@example.com",
				Password: "password123",
				Role:     "employer",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("CreateWithProfile", mock.Anything, mock.AnythingOfType("*models.User")).
					Return(appErrors.ErrEmailAlreadyExists)
			},
			expectedError: appErrors.ErrEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.setupMock(userRepo)

			service := NewAuthService(userRepo, newTestTokenManager())
			resp, err := service.Register(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, resp)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.req.Email, resp.Email)
				assert.Equal(t, models.UserStatusActive, resp.Status)
				assert.False(t, resp.ProfileVerified)
			}
			userRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("password123")
	assert.NoError(t, err)

	activeUser := &models.User{
		BaseModel:    models.BaseModel{ID: "user-1"},
		Email:        "mary@example.com",
		PasswordHash: hash,
		Role:         models.UserRoleArtisan,
		Status:       models.UserStatusActive,
	}

	tests := []struct {
		name          string
		req           *dto.LoginRequest
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "successful login returns a token",
			req:  &dto.LoginRequest{Email: "mary@example.com", Password: "password123"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "mary@example.com").Return(activeUser, nil)
			},
		},
		{
			name: "wrong password",
			req:  &dto.LoginRequest{Email: "mary@example.com", Password: "nope12345"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "mary@example.com").Return(activeUser, nil)
			},
			expectedError: appErrors.ErrInvalidCredentials,
		},
		{
			name: "unknown email maps to invalid credentials",
			req:  &dto.LoginRequest{Email: "ghost@example.com", Password: "password123"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, appErrors.ErrUserNotFound)
			},
			expectedError: appErrors.ErrInvalidCredentials,
		},
		{
			name: "suspended account cannot log in",
			req:  &dto.LoginRequest{Email: "banned@example.com", Password: "password123"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "banned@example.com").Return(&models.User{
					BaseModel:    models.BaseModel{ID: "user-2"},
					Email:        "banned@example.com",
					PasswordHash: hash,
					Status:       models.UserStatusSuspended,
				}, nil)
			},
			expectedError: appErrors.ErrUserSuspended,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.setupMock(userRepo)

			tokens := newTestTokenManager()
			service := NewAuthService(userRepo, tokens)
			resp, err := service.Login(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, resp)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, resp.Token)

				claims, err := tokens.Parse(resp.Token)
				assert.NoError(t, err)
				assert.Equal(t, "user-1", claims.UserID)
				assert.Equal(t, models.UserRoleArtisan, claims.Role)
			}
			userRepo.AssertExpectations(t)
		})
	}
}
