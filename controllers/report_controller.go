// controllers/report_controller.go
package controllers

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"resort-backend/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportSvc *services.ReportService
	Activity  *services.ActivityService
}

func NewReportController(reportSvc *services.ReportService, activity *services.ActivityService) *ReportController {
	return &ReportController{ReportSvc: reportSvc, Activity: activity}
}

func parseReportWindow(c *gin.Context) (time.Time, time.Time, bool) {
	from, err1 := time.Parse("2006-01-02", c.Query("from"))
	to, err2 := time.Parse("2006-01-02", c.Query("to"))
	if err1 != nil || err2 != nil || !to.After(from) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "error.invalidDates", "message": "from and to must be YYYY-MM-DD with to after from"},
		})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func (ctrl *ReportController) Occupancy(c *gin.Context) {
	from, to, ok := parseReportWindow(c)
	if !ok {
		return
	}
	rows, err := ctrl.ReportSvc.Occupancy(from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": rows})
}

func (ctrl *ReportController) Revenue(c *gin.Context) {
	from, to, ok := parseReportWindow(c)
	if !ok {
		return
	}
	rows, err := ctrl.ReportSvc.Revenue(from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": rows})
}

func (ctrl *ReportController) ExportBookings(c *gin.Context) {
	from, to, ok := parseReportWindow(c)
	if !ok {
		return
	}

	filePath, err := ctrl.ReportSvc.ExportBookingsExcel(from, to, "")
	if err != nil {
		if strings.Contains(err.Error(), "invalid_date_range") {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDates", "message": "Invalid report window"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "Failed to generate export"}})
		return
	}

	ctrl.Activity.Record(adminIDFromContext(c), "export", "booking", 0, gin.H{
		"from": from.Format("2006-01-02"),
		"to":   to.Format("2006-01-02"),
	})

	c.FileAttachment(filePath, filepath.Base(filePath))
}
