package handlers

import (
	"net/http"

	"craftlink_backend/internal/middleware"
	"craftlink_backend/internal/models"
	"craftlink_backend/internal/services"
	"craftlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

// RegisterPublicRoutes - просмотр вакансий открыт без авторизации
func (h *JobHandler) RegisterPublicRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("", h.Browse)
		jobs.GET("/:jobId", h.Get)
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	{
		jobs.POST("", middleware.RoleMiddleware(models.UserRoleEmployer), h.Create)
		jobs.GET("/my/list", middleware.RoleMiddleware(models.UserRoleEmployer), h.MyJobs)
		jobs.GET("/admin/list", middleware.RoleMiddleware(models.UserRoleAdmin), h.AdminList)
		jobs.PUT("/:jobId/status", middleware.RoleMiddleware(models.UserRoleEmployer), h.UpdateStatus)
	}
}

func (h *JobHandler) Browse(c *gin.Context) {
	var criteria dto.JobListCriteria
	if !h.BindQuery(c, &criteria) {
		return
	}

	jobs, err := h.jobService.Browse(c.Request.Context(), criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobService.Get(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) MyJobs(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.MyJobs(c.Request.Context(), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// AdminList - обзор всех вакансий платформы независимо от статуса
func (h *JobHandler) AdminList(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	var criteria dto.JobListCriteria
	if !h.BindQuery(c, &criteria) {
		return
	}

	jobs, err := h.jobService.AdminList(c.Request.Context(), actor, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) UpdateStatus(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	var req dto.UpdateJobStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.jobService.UpdateStatus(c.Request.Context(), actor, c.Param("jobId"), models.JobStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}
