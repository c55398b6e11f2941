package middleware

import (
	"net/http"
	"strings"

	"craftlink_backend/internal/auth"
	"craftlink_backend/internal/models"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// AuthMiddleware - проверка JWT, кладет Actor в контекст запроса
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(actorKey, auth.Actor{ID: claims.UserID, Role: claims.Role})
		c.Next()
	}
}

// RoleMiddleware - ограничение маршрута по роли
func RoleMiddleware(requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}
		if actor.Role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient role"})
			return
		}
		c.Next()
	}
}

// GetActor извлекает текущего пользователя из контекста запроса
func GetActor(c *gin.Context) (auth.Actor, bool) {
	val, exists := c.Get(actorKey)
	if !exists {
		return auth.Actor{}, false
	}
	actor, ok := val.(auth.Actor)
	return actor, ok
}
