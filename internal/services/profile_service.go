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

type ProfileService interface {
	GetArtisanProfile(ctx context.Context, actor auth.Actor) (*models.ArtisanProfile, error)
	GetEmployerProfile(ctx context.Context, actor auth.Actor) (*models.EmployerProfile, error)
	UpdateArtisanProfile(ctx context.Context, actor auth.Actor, req *dto.UpdateArtisanProfileRequest) (*models.ArtisanProfile, error)
	UpdateEmployerProfile(ctx context.Context, actor auth.Actor, req *dto.UpdateEmployerProfileRequest) (*models.EmployerProfile, error)
}

type profileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetArtisanProfile(ctx context.Context, actor auth.Actor) (*models.ArtisanProfile, error) {
	if actor.Role != models.UserRoleArtisan {
		return nil, appErrors.ErrForbidden
	}
	return s.profileRepo.FindArtisanByUserID(ctx, actor.ID)
}

func (s *profileService) GetEmployerProfile(ctx context.Context, actor auth.Actor) (*models.EmployerProfile, error) {
	if actor.Role != models.UserRoleEmployer {
		return nil, appErrors.ErrForbidden
	}
	return s.profileRepo.FindEmployerByUserID(ctx, actor.ID)
}

// UpdateArtisanProfile обновляет поля профиля владельца.
// verification_status владельцу недоступен — его меняет только верификация.
func (s *profileService) UpdateArtisanProfile(ctx context.Context, actor auth.Actor, req *dto.UpdateArtisanProfileRequest) (*models.ArtisanProfile, error) {
	if actor.Role != models.UserRoleArtisan {
		return nil, appErrors.ErrForbidden
	}
	profile, err := s.profileRepo.FindArtisanByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return nil, err
	}

	profile.Bio = req.Bio
	profile.Skills = datatypes.JSON(skillsJSON)
	profile.HourlyRate = req.HourlyRate
	profile.YearsExperience = req.YearsExperience
	profile.State = req.State
	profile.City = req.City

	if err := s.profileRepo.UpdateArtisan(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) UpdateEmployerProfile(ctx context.Context, actor auth.Actor, req *dto.UpdateEmployerProfileRequest) (*models.EmployerProfile, error) {
	if actor.Role != models.UserRoleEmployer {
		return nil, appErrors.ErrForbidden
	}
	profile, err := s.profileRepo.FindEmployerByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	profile.CompanyName = req.CompanyName
	profile.Industry = req.Industry
	profile.Description = req.Description
	profile.State = req.State
	profile.City = req.City

	if err := s.profileRepo.UpdateEmployer(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
