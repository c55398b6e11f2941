package routes

import (
	"craftlink_backend/internal/auth"
	"craftlink_backend/internal/handlers"
	"craftlink_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// Публичная часть (auth, просмотр вакансий) не требует токена,
// все остальное проходит через AuthMiddleware.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterPublicRoutes(api)

		authed := api.Group("", middleware.AuthMiddleware(tokens))
		{
			appHandlers.UserHandler.RegisterRoutes(authed)
			appHandlers.ProfileHandler.RegisterRoutes(authed)
			appHandlers.JobHandler.RegisterRoutes(authed)
			appHandlers.ApplicationHandler.RegisterRoutes(authed)
			appHandlers.VerificationHandler.RegisterRoutes(authed)
			appHandlers.NotificationHandler.RegisterRoutes(authed)
			appHandlers.MessageHandler.RegisterRoutes(authed)
		}
	}
}
