package handlers

import (
	"net/http"

	"craftlink_backend/internal/middleware"
	"craftlink_backend/internal/models"
	"craftlink_backend/internal/services"
	"craftlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	profiles := r.Group("/profiles")
	{
		artisan := profiles.Group("/artisan", middleware.RoleMiddleware(models.UserRoleArtisan))
		{
			artisan.GET("/me", h.GetArtisan)
			artisan.PUT("/me", h.UpdateArtisan)
		}

		employer := profiles.Group("/employer", middleware.RoleMiddleware(models.UserRoleEmployer))
		{
			employer.GET("/me", h.GetEmployer)
			employer.PUT("/me", h.UpdateEmployer)
		}
	}
}

func (h *ProfileHandler) GetArtisan(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetArtisanProfile(c.Request.Context(), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateArtisan(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	var req dto.UpdateArtisanProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateArtisanProfile(c.Request.Context(), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetEmployer(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetEmployerProfile(c.Request.Context(), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateEmployer(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployerProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateEmployerProfile(c.Request.Context(), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
