// controllers/promotion_controller.go
package controllers

import (
	"net/http"
	"strings"

	"resort-backend/models"
	"resort-backend/services"

	"github.com/gin-gonic/gin"
)

type PromotionController struct {
	PromotionSvc *services.PromotionService
	Activity     *services.ActivityService
}

func NewPromotionController(promotionSvc *services.PromotionService, activity *services.ActivityService) *PromotionController {
	return &PromotionController{PromotionSvc: promotionSvc, Activity: activity}
}

func (ctrl *PromotionController) GetPromotions(c *gin.Context) {
	list, err := ctrl.PromotionSvc.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *PromotionController) CreatePromotion(c *gin.Context) {
	var promo models.Promotion
	if err := c.ShouldBindJSON(&promo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": err.Error()}})
		return
	}

	created, err := ctrl.PromotionSvc.Create(promo)
	if err != nil {
		msg := err.Error()
		switch {
		case strings.Contains(msg, "invalid_promotion"), strings.Contains(msg, "invalid_date_range"):
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "Code and a percent between 0 and 100 are required"}})
		case strings.Contains(msg, "Duplicate") || strings.Contains(msg, "UNIQUE"):
			c.JSON(http.StatusConflict, gin.H{"error": gin.H{"code": "error.duplicateCode", "message": "Promotion code already exists"}})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": msg}})
		}
		return
	}

	ctrl.Activity.Record(adminIDFromContext(c), "create", "promotion", created.ID, gin.H{"code": created.Code})
	c.JSON(http.StatusCreated, created)
}

func (ctrl *PromotionController) UpdatePromotion(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var promo models.Promotion
	if err := c.ShouldBindJSON(&promo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": err.Error()}})
		return
	}
	promo.ID = id
	if err := ctrl.PromotionSvc.Update(promo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	ctrl.Activity.Record(adminIDFromContext(c), "update", "promotion", id, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Promotion updated"})
}

func (ctrl *PromotionController) DeletePromotion(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.PromotionSvc.Delete(int(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	ctrl.Activity.Record(adminIDFromContext(c), "delete", "promotion", id, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Promotion deleted"})
}
