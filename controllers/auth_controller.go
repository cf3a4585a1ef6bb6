package controllers

import (
	"net/http"
	"strings"
	"time"

	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/session"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type forgotPayload struct {
	Email string `json:"email"`
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

type AuthController struct {
	DB       *gorm.DB
	JWT      *utils.JWTService
	Sessions *session.Registry
	Activity *services.ActivityService
}

func NewAuthController(db *gorm.DB, jwt *utils.JWTService, sessions *session.Registry, activity *services.ActivityService) *AuthController {
	return &AuthController{DB: db, JWT: jwt, Sessions: sessions, Activity: activity}
}

func (ctrl *AuthController) roleNameFor(adminID uint) string {
	var role models.Role
	err := ctrl.DB.
		Joins("JOIN role_members ON role_members.role_id = roles.id").
		Where("role_members.admin_id = ?", adminID).
		First(&role).Error
	if err != nil {
		return "staff"
	}
	return role.Name
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "invalid payload"}})
		return
	}

	username := strings.TrimSpace(payload.Username)
	password := payload.Password
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "username and password required"}})
		return
	}

	var admin models.Admin
	if err := ctrl.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "error.invalidCredentials", "message": "invalid credentials"}})
		return
	}

	valid := false
	if isBcryptHash(admin.Password) {
		valid = bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) == nil
	} else if admin.Password != "" && admin.Password == password {
		// legacy plaintext row: accept once, upgrade to a hash
		valid = true
		if hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost); err == nil {
			ctrl.DB.Model(&admin).Update("password", string(hash))
		}
	}
	if !valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "error.invalidCredentials", "message": "invalid credentials"}})
		return
	}

	role := ctrl.roleNameFor(admin.ID)
	token, err := ctrl.JWT.GenerateToken(admin.ID, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "failed to generate token"}})
		return
	}

	ctrl.Sessions.Register(token)
	ctrl.Activity.Record(&admin.ID, "login", "admin", admin.ID, nil)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":        admin.ID,
			"full_name": admin.FullName,
			"username":  admin.Username,
			"role":      role,
		},
	})
}

func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	var payload forgotPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "invalid payload"}})
		return
	}

	email := strings.TrimSpace(payload.Email)
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "email required"}})
		return
	}

	var admin models.Admin
	if err := ctrl.DB.Where("username = ?", email).First(&admin).Error; err == nil {
		if token, err := utils.GenerateSecureToken(24); err == nil {
			expiry := time.Now().Add(1 * time.Hour)
			ctrl.DB.Model(&admin).Updates(map[string]any{
				"reset_token":         token,
				"reset_token_expires": expiry,
			})
		}
	}

	// Same response whether or not the account exists.
	c.JSON(http.StatusOK, gin.H{"message": "If this email exists, a reset link was sent."})
}

// SessionState lets the console poll the idle countdown without the poll
// itself counting as activity.
func (ctrl *AuthController) SessionState(c *gin.Context) {
	token := c.GetString("session_token")
	state, remaining, ok := ctrl.Sessions.Peek(token)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "error.sessionExpired", "message": "Session expired"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"state":             state.String(),
			"seconds_remaining": remaining,
		},
	})
}

func (ctrl *AuthController) Logout(c *gin.Context) {
	token := c.GetString("session_token")
	ctrl.Sessions.Revoke(token)
	if adminID := c.GetUint("admin_id"); adminID != 0 {
		ctrl.Activity.Record(&adminID, "logout", "admin", adminID, nil)
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Signed out"})
}
