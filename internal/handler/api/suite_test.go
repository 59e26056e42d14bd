//go:build unit

package api_test

import (
	"net/http"

	"hotel-block-service/internal/handler/middleware"
	"hotel-block-service/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	managerToken = "manager-token"
	viewerToken  = "viewer-token"
)

// fakeAuth stands in for RequireAuth. The token itself names the role.
func fakeAuth(c *gin.Context) {
	role := ""
	switch c.GetHeader("Authorization") {
	case "Bearer " + managerToken:
		role = jwt.RoleHotelManager
	case "Bearer " + viewerToken:
		role = "viewer"
	default:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Set("user_id", uuid.New())
	c.Set("user_role", role)
	c.Next()
}

func requireManager() gin.HandlerFunc {
	return middleware.NewAuthMiddleware(nil).RequireRole(jwt.RoleHotelManager)
}
