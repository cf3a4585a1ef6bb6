package controllers

import (
	"errors"
	"net/http"

	"resort-backend/config"
	"resort-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type resortSettingsPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	Logo    string `json:"logo"`
}

func GetResortSettings(c *gin.Context) {
	var resort models.ResortSetting
	if err := config.DB.First(&resort).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"resort": models.ResortSetting{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"resort": resort})
}

func UpdateResortSettings(c *gin.Context) {
	var payload resortSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": err.Error()}})
		return
	}

	var resort models.ResortSetting
	err := config.DB.First(&resort).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resort = models.ResortSetting{
				Name:    payload.Name,
				Address: payload.Address,
				Phone:   payload.Phone,
				Email:   payload.Email,
				Website: payload.Website,
				Logo:    payload.Logo,
			}
			if err := config.DB.Create(&resort).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
				return
			}
			c.JSON(http.StatusOK, gin.H{"resort": resort})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}

	if err := config.DB.Model(&resort).Updates(map[string]any{
		"name":    payload.Name,
		"address": payload.Address,
		"phone":   payload.Phone,
		"email":   payload.Email,
		"website": payload.Website,
		"logo":    payload.Logo,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"resort": resort})
}
