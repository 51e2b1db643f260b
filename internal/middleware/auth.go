package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"clinic-desk-server/internal/config"
	"clinic-desk-server/internal/models"
	"clinic-desk-server/internal/utils"
)

const (
	userIDKey    = "userID"
	userLoginKey = "userLogin"
	userRoleKey  = "userRole"
	patientIDKey = "patientID"
)

// AuthMiddleware creates a middleware for JWT authentication.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Abort(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			utils.Abort(c, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := utils.ValidateToken(parts[1], cfg.JWTSecret)
		if err != nil {
			utils.Abort(c, http.StatusUnauthorized, "Invalid token: "+err.Error())
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(userLoginKey, claims.Login)
		c.Set(userRoleKey, claims.Role)
		if claims.PatientID != nil {
			c.Set(patientIDKey, *claims.PatientID)
		}

		c.Next()
	}
}

// RoleAuthMiddleware creates a middleware for role-based authorization.
// It must be used after AuthMiddleware.
func RoleAuthMiddleware(allowedRoles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok {
			utils.Abort(c, http.StatusInternalServerError, "User role not found in context")
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}
		utils.Abort(c, http.StatusForbidden, "You do not have permission to access this resource")
	}
}

func GetUserIDFromContext(c *gin.Context) (uint, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func GetUserLoginFromContext(c *gin.Context) (string, bool) {
	login := c.GetString(userLoginKey)
	return login, login != ""
}

func GetUserRoleFromContext(c *gin.Context) (models.Role, bool) {
	v, exists := c.Get(userRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(models.Role)
	return role, ok
}

// GetPatientIDFromContext returns the patient linked to the signed-in client.
// Administrator tokens carry none.
func GetPatientIDFromContext(c *gin.Context) (uint, bool) {
	v, exists := c.Get(patientIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
