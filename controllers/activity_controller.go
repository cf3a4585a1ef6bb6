// controllers/activity_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"resort-backend/services"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivitySvc *services.ActivityService
}

func NewActivityController(activitySvc *services.ActivityService) *ActivityController {
	return &ActivityController{ActivitySvc: activitySvc}
}

func (ctrl *ActivityController) GetLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	entity := c.Query("entity")

	logs, err := ctrl.ActivitySvc.List(entity, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, logs)
}
