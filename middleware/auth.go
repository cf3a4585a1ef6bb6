package middleware

import (
	"net/http"
	"strings"

	"resort-backend/models"
	"resort-backend/session"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware guards the admin console: JWT bearer validation plus the
// per-session idle clock. Each authenticated request counts as activity; a
// token whose session idled out gets 401 even while the JWT itself is valid.
type AuthMiddleware struct {
	JWT      *utils.JWTService
	Sessions *session.Registry
	DB       *gorm.DB
}

func NewAuthMiddleware(jwt *utils.JWTService, sessions *session.Registry, db *gorm.DB) *AuthMiddleware {
	return &AuthMiddleware{JWT: jwt, Sessions: sessions, DB: db}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireAdmin validates the bearer token and touches the idle session.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "error.unauthorized", "message": "Authentication required"},
			})
			return
		}

		claims, err := m.JWT.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "error.invalidToken", "message": "Invalid or expired token"},
			})
			return
		}

		if !m.Sessions.Touch(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "error.sessionExpired", "message": "Session expired due to inactivity, please sign in again"},
			})
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("admin_role", claims.Role)
		c.Set("session_token", token)
		c.Next()
	}
}

// Observe validates the bearer token without counting the request as
// activity. The session-state poll uses this so watching the countdown does
// not keep the session alive.
func (m *AuthMiddleware) Observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "error.unauthorized", "message": "Authentication required"},
			})
			return
		}

		claims, err := m.JWT.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "error.invalidToken", "message": "Invalid or expired token"},
			})
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("admin_role", claims.Role)
		c.Set("session_token", token)
		c.Next()
	}
}

// RequirePermission checks the admin's role grants for a dotted permission
// key. Must run after RequireAdmin.
func (m *AuthMiddleware) RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID := c.GetUint("admin_id")
		if adminID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "error.unauthorized", "message": "Authentication required"},
			})
			return
		}

		var count int64
		err := m.DB.Model(&models.RolePermission{}).
			Joins("JOIN role_members ON role_members.role_id = role_permissions.role_id").
			Where("role_members.admin_id = ? AND role_permissions.permission = ?", adminID, permission).
			Count(&count).Error
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"code": "error.internal", "message": "Failed to check permissions"},
			})
			return
		}
		if count == 0 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"code": "error.forbidden", "message": "Missing permission: " + permission},
			})
			return
		}

		c.Next()
	}
}
