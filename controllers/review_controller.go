// controllers/review_controller.go
package controllers

import (
	"net/http"
	"strings"

	"resort-backend/services"

	"github.com/gin-gonic/gin"
)

type CreateReviewRequest struct {
	BookingID uint   `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

type ReviewController struct {
	ReviewSvc *services.ReviewService
	Activity  *services.ActivityService
}

func NewReviewController(reviewSvc *services.ReviewService, activity *services.ActivityService) *ReviewController {
	return &ReviewController{ReviewSvc: reviewSvc, Activity: activity}
}

func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "error.invalidPayload", "message": "Invalid review payload", "details": err.Error()},
		})
		return
	}

	review, err := ctrl.ReviewSvc.Create(req.BookingID, req.Rating, req.Comment)
	if err != nil {
		msg := err.Error()
		switch {
		case strings.Contains(msg, "booking_not_found"):
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.bookingNotFound", "message": "Booking not found"}})
		case strings.Contains(msg, "invalid_rating"):
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidRating", "message": "Rating must be between 1 and 5"}})
		case strings.Contains(msg, "stay_not_completed"):
			c.JSON(http.StatusConflict, gin.H{"error": gin.H{"code": "error.stayNotCompleted", "message": "Reviews can only be left after checkout"}})
		case strings.Contains(msg, "review_already_exists"):
			c.JSON(http.StatusConflict, gin.H{"error": gin.H{"code": "error.reviewAlreadyExists", "message": "This booking already has a review"}})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": msg}})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": review})
}

func (ctrl *ReviewController) ListByRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	list, err := ctrl.ReviewSvc.ListByRoomType(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.ReviewSvc.Delete(int(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
		return
	}
	ctrl.Activity.Record(adminIDFromContext(c), "delete", "review", id, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
