package handlers

import (
	"net/http"

	"craftlink_backend/internal/middleware"
	"craftlink_backend/internal/models"
	"craftlink_backend/internal/services"
	"craftlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type VerificationHandler struct {
	*BaseHandler
	verificationService services.VerificationService
}

func NewVerificationHandler(base *BaseHandler, verificationService services.VerificationService) *VerificationHandler {
	return &VerificationHandler{BaseHandler: base, verificationService: verificationService}
}

func (h *VerificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	verifications := r.Group("/verifications")
	{
		// Admin routes
		admin := verifications.Group("", middleware.RoleMiddleware(models.UserRoleAdmin))
		{
			admin.GET("", h.List)
			admin.GET("/stats", h.Stats)
			admin.PUT("/:verificationId/approve", h.Approve)
			admin.PUT("/:verificationId/reject", h.Reject)
		}

		// Owner or admin
		verifications.GET("/:verificationId", h.Get)
		verifications.POST("/request", h.RequestReverification)
	}
}

func (h *VerificationHandler) List(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	var criteria dto.VerificationListCriteria
	if !h.BindQuery(c, &criteria) {
		return
	}

	logs, err := h.verificationService.List(c.Request.Context(), actor, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *VerificationHandler) Stats(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	stats, err := h.verificationService.Stats(c.Request.Context(), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *VerificationHandler) Approve(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	var req dto.DecideVerificationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.verificationService.Approve(c.Request.Context(), actor, c.Param("verificationId"), req.Comments)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.VerificationStatusApproved})
}

func (h *VerificationHandler) Reject(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	var req dto.DecideVerificationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.verificationService.Reject(c.Request.Context(), actor, c.Param("verificationId"), req.Comments)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.VerificationStatusRejected})
}

func (h *VerificationHandler) Get(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	log, err := h.verificationService.Get(c.Request.Context(), actor, c.Param("verificationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

func (h *VerificationHandler) RequestReverification(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	log, err := h.verificationService.RequestReverification(c.Request.Context(), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}
