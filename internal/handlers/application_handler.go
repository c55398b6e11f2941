package handlers

import (
	"net/http"

	"craftlink_backend/internal/middleware"
	"craftlink_backend/internal/models"
	"craftlink_backend/internal/services"
	"craftlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	apps := r.Group("/applications")
	{
		// Artisan routes
		apps.POST("/jobs/:jobId", middleware.RoleMiddleware(models.UserRoleArtisan), h.Apply)
		apps.GET("/my", middleware.RoleMiddleware(models.UserRoleArtisan), h.MyApplications)
		apps.PUT("/:applicationId/withdraw", middleware.RoleMiddleware(models.UserRoleArtisan), h.Withdraw)

		// Employer routes
		apps.GET("/jobs/:jobId/list", middleware.RoleMiddleware(models.UserRoleEmployer), h.JobApplications)
		apps.PUT("/:applicationId/decision", middleware.RoleMiddleware(models.UserRoleEmployer), h.Decide)

		// Admin overview
		apps.GET("/admin/list", middleware.RoleMiddleware(models.UserRoleAdmin), h.AdminList)

		// Common
		apps.GET("/:applicationId", h.Get)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.Apply(c.Request.Context(), actor, c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.MyApplications(c.Request.Context(), actor, c.Query("status"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	err := h.applicationService.Withdraw(c.Request.Context(), actor, c.Param("applicationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.ApplicationStatusWithdrawn})
}

func (h *ApplicationHandler) JobApplications(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.JobApplications(c.Request.Context(), actor, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) AdminList(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	var criteria dto.ApplicationListCriteria
	if !h.BindQuery(c, &criteria) {
		return
	}

	apps, err := h.applicationService.AdminList(c.Request.Context(), actor, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) Decide(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	var req dto.DecideApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.applicationService.Decide(c.Request.Context(), actor, c.Param("applicationId"),
		models.ApplicationStatus(req.Decision))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Decision})
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	app, err := h.applicationService.Get(c.Request.Context(), actor, c.Param("applicationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
