package services

import (
	"context"

	"craftlink_backend/internal/appErrors"
	"craftlink_backend/internal/auth"
	"craftlink_backend/internal/models"
	"craftlink_backend/internal/repositories"
	"craftlink_backend/internal/services/dto"
)

// UserService - административное управление аккаунтами.
// Роль пользователя после создания не меняется; статус меняет только админ.
type UserService interface {
	List(ctx context.Context, actor auth.Actor, criteria dto.UserListCriteria) ([]models.User, error)
	Get(ctx context.Context, actor auth.Actor, userID string) (*models.User, error)
	// UpdateAccount - настройки собственного аккаунта (имя, фамилия, телефон).
	// Email и роль после регистрации не меняются.
	UpdateAccount(ctx context.Context, actor auth.Actor, req *dto.UpdateAccountRequest) (*models.User, error)
	// ChangePassword меняет пароль после проверки текущего.
	ChangePassword(ctx context.Context, actor auth.Actor, req *dto.ChangePasswordRequest) error
	UpdateStatus(ctx context.Context, actor auth.Actor, userID string, status models.UserStatus) error
	Delete(ctx context.Context, actor auth.Actor, userID string) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context, actor auth.Actor, criteria dto.UserListCriteria) ([]models.User, error) {
	if !auth.IsAdmin(actor) {
		return nil, appErrors.ErrForbidden
	}

	repoCriteria := repositories.UserCriteria{
		Search: criteria.Search,
		Limit:  criteria.Limit,
		Offset: criteria.Offset,
	}
	if criteria.Role != "" {
		role := models.UserRole(criteria.Role)
		repoCriteria.Role = &role
	}
	if criteria.Status != "" {
		status := models.UserStatus(criteria.Status)
		if !status.IsValid() {
			return nil, appErrors.ErrValidationFailed.WithDetails("unknown user status: " + criteria.Status)
		}
		repoCriteria.Status = &status
	}
	if repoCriteria.Limit <= 0 {
		repoCriteria.Limit = 50
	}
	return s.userRepo.List(ctx, repoCriteria)
}

func (s *userService) Get(ctx context.Context, actor auth.Actor, userID string) (*models.User, error) {
	if !auth.IsAdmin(actor) && actor.ID != userID {
		return nil, appErrors.ErrForbidden
	}
	return s.userRepo.FindByID(ctx, userID)
}

func (s *userService) UpdateAccount(ctx context.Context, actor auth.Actor, req *dto.UpdateAccountRequest) (*models.User, error) {
	err := s.userRepo.UpdateAccount(ctx, actor.ID, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(ctx, actor.ID)
}

func (s *userService) ChangePassword(ctx context.Context, actor auth.Actor, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return err
	}
	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return appErrors.ErrWrongPassword
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, actor.ID, hash)
}

func (s *userService) UpdateStatus(ctx context.Context, actor auth.Actor, userID string, status models.UserStatus) error {
	if !auth.IsAdmin(actor) {
		return appErrors.ErrForbidden
	}
	if actor.ID == userID {
		return appErrors.ErrCannotModifySelf
	}
	if !status.IsValid() {
		return appErrors.ErrValidationFailed.WithDetails("unknown user status: " + string(status))
	}
	return s.userRepo.UpdateStatus(ctx, userID, status)
}

func (s *userService) Delete(ctx context.Context, actor auth.Actor, userID string) error {
	if !auth.IsAdmin(actor) {
		return appErrors.ErrForbidden
	}
	if actor.ID == userID {
		return appErrors.ErrCannotModifySelf
	}
	return s.userRepo.Delete(ctx, userID)
}
