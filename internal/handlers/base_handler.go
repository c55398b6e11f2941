package handlers

import (
	"net/http"

	"craftlink_backend/internal/appErrors"
	"craftlink_backend/internal/auth"
	"craftlink_backend/internal/middleware"
	"craftlink_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// Actor извлекает текущего пользователя; при отсутствии пишет 401 и возвращает false
func (h *BaseHandler) Actor(c *gin.Context) (auth.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	}
	return actor, ok
}

// BindAndValidateJSON привязывает JSON тело и валидирует его.
// При ошибке пишет ответ и возвращает false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		appErrors.HandleValidationError(c, err)
		return false
	}
	if err := h.validator.Struct(obj); err != nil {
		var vErr *validator.ValidationError
		if appErrors.As(err, &vErr) {
			appErrors.HandleError(c, appErrors.ValidationError(vErr.Errors))
		} else {
			appErrors.HandleValidationError(c, err)
		}
		return false
	}
	return true
}

// BindQuery привязывает query-параметры
func (h *BaseHandler) BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		appErrors.HandleValidationError(c, err)
		return false
	}
	return true
}

// HandleServiceError переводит ошибку сервиса в HTTP ответ
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	appErrors.HandleError(c, err)
}
