package controllers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"resort-backend/config"
	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type createAdminPayload struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type inviteAdminPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type activateAdminPayload struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

var inviteEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func normalizeInviteRole(raw string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	switch name {
	case "owner":
		return "owner", true
	case "manager":
		return "Manager", true
	case "receptionist":
		return "Receptionist", true
	case "housekeeper":
		return "Housekeeper", true
	default:
		return "", false
	}
}

var adminSvc = services.AdminService{}

func GetAdmins(c *gin.Context) {
	admins, err := adminSvc.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, admins)
}

func CreateAdmin(c *gin.Context) {
	var payload createAdminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": err.Error()}})
		return
	}

	admin := models.Admin{
		FullName: payload.FullName,
		Username: payload.Username,
		Password: payload.Password,
	}

	if admin.Password != "" && !isBcryptHash(admin.Password) {
		if hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost); err == nil {
			admin.Password = string(hash)
		}
	}

	if err := adminSvc.Create(admin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, admin)
}

// InviteAdmin creates (or revives) a staff account with a setup token and
// assigns the role. The token is returned to the caller; distribution is the
// console's concern.
func InviteAdmin(c *gin.Context) {
	var payload inviteAdminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "invalid payload"}})
		return
	}

	name := strings.TrimSpace(payload.Name)
	email := strings.TrimSpace(payload.Email)
	roleName, ok := normalizeInviteRole(payload.Role)
	if name == "" || email == "" || !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "name, email, and role are required"}})
		return
	}
	if !inviteEmailRegex.MatchString(strings.ToLower(email)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "invalid email"}})
		return
	}

	token, err := utils.GenerateSecureToken(24)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "failed to generate token"}})
		return
	}
	expiry := time.Now().Add(24 * time.Hour)

	var admin models.Admin
	exists := false
	if err := config.DB.Unscoped().Where("username = ?", email).First(&admin).Error; err == nil {
		exists = true
		if !admin.DeletedAt.Valid {
			c.JSON(http.StatusConflict, gin.H{"error": gin.H{"code": "error.emailExists", "message": "email already exists"}})
			return
		}
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}

	if exists {
		if err := config.DB.Unscoped().Model(&admin).Updates(map[string]any{
			"full_name":           name,
			"reset_token":         token,
			"reset_token_expires": expiry,
			"deleted_at":          nil,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
			return
		}
	} else {
		admin = models.Admin{
			FullName:          name,
			Username:          email,
			ResetToken:        &token,
			ResetTokenExpires: &expiry,
		}
		if err := config.DB.Create(&admin).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
			return
		}
	}

	var role models.Role
	if err := config.DB.Where("name = ?", roleName).First(&role).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			role = models.Role{Name: roleName}
			if err := config.DB.Create(&role).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
				return
			}
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
			return
		}
	}

	if err := config.DB.Unscoped().Where("admin_id = ?", admin.ID).Delete(&models.RoleMember{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	if err := config.DB.Create(&models.RoleMember{RoleID: role.ID, AdminID: admin.ID}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          admin.ID,
		"name":        admin.FullName,
		"email":       admin.Username,
		"role":        roleName,
		"status":      "Pending Invite",
		"setup_token": token,
	})
}

func ActivateAdmin(c *gin.Context) {
	var payload activateAdminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "invalid payload"}})
		return
	}

	email := strings.TrimSpace(payload.Email)
	token := strings.TrimSpace(payload.Token)
	password := strings.TrimSpace(payload.Password)
	if email == "" || token == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "email, token, and password are required"}})
		return
	}
	if len(password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.weakPassword", "message": "password must be at least 8 characters"}})
		return
	}

	var admin models.Admin
	if err := config.DB.Unscoped().Where("username = ? AND reset_token = ?", email, token).First(&admin).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.invalidToken", "message": "invalid token"}})
		return
	}

	if admin.ResetTokenExpires != nil && time.Now().After(*admin.ResetTokenExpires) {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.tokenExpired", "message": "token expired"}})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "failed to hash password"}})
		return
	}

	updates := map[string]any{
		"password":            string(hash),
		"reset_token":         nil,
		"reset_token_expires": nil,
	}
	if admin.DeletedAt.Valid {
		updates["deleted_at"] = nil
	}

	if err := config.DB.Unscoped().Model(&admin).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "failed to activate account"}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "account activated"})
}

func DeleteAdmin(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := adminSvc.Delete(int(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted"})
}
