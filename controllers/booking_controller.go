// controllers/booking_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"resort-backend/models"
	"resort-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateReservationRequest struct {
	GuestID       uint   `json:"guest_id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	RoomTypeID    uint   `json:"room_type_id" binding:"required"`
	CheckIn       string `json:"check_in" binding:"required"`
	CheckOut      string `json:"check_out" binding:"required"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	PromotionCode string `json:"promotion_code"`
}

type WalkInRequest struct {
	FullName      string                   `json:"full_name" binding:"required"`
	Email         string                   `json:"email"`
	Phone         string                   `json:"phone"`
	RoomTypeID    uint                     `json:"room_type_id" binding:"required"`
	CheckIn       string                   `json:"check_in" binding:"required"`
	CheckOut      string                   `json:"check_out" binding:"required"`
	Adults        int                      `json:"adults"`
	Children      int                      `json:"children"`
	PromotionCode string                   `json:"promotion_code"`
	GuestList     []map[string]interface{} `json:"guest_list,omitempty"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
	GuestSvc   *services.GuestService
	Activity   *services.ActivityService
}

func NewBookingController(bookingSvc *services.BookingService, guestSvc *services.GuestService, activity *services.ActivityService) *BookingController {
	return &BookingController{BookingSvc: bookingSvc, GuestSvc: guestSvc, Activity: activity}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "error.invalidId", "message": "Invalid id parameter"},
		})
		return 0, false
	}
	return uint(id), true
}

func adminIDFromContext(c *gin.Context) *uint {
	if v := c.GetUint("admin_id"); v != 0 {
		return &v
	}
	return nil
}

// respondBookingError maps the service error vocabulary onto HTTP envelopes.
func respondBookingError(c *gin.Context, err error) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "booking_not_found"):
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.bookingNotFound", "message": "Booking not found"}})
	case strings.Contains(msg, "guest_not_found"):
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.guestNotFound", "message": "Guest not found"}})
	case strings.Contains(msg, "room_type_not_found"):
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.roomTypeNotFound", "message": "Room type not found"}})
	case strings.Contains(msg, "invalid_date_range"), strings.Contains(msg, "validation:"):
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDates", "message": "Check-out must be after check-in", "details": msg}})
	case strings.Contains(msg, "duplicate_booking"):
		c.JSON(http.StatusConflict, gin.H{"error": gin.H{"code": "error.duplicateBooking", "message": "You already have a booking for this room type over these dates"}})
	case strings.Contains(msg, "no_availability"):
		c.JSON(http.StatusConflict, gin.H{"error": gin.H{"code": "error.noAvailability", "message": "Fully booked for these dates", "details": msg}})
	case strings.Contains(msg, "promotion_not_valid"):
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.promotionNotValid", "message": "Promotion code is not valid for these dates"}})
	case strings.Contains(msg, "already_cancelled"):
		c.JSON(http.StatusConflict, gin.H{"error": gin.H{"code": "error.alreadyCancelled", "message": "Booking is already cancelled"}})
	case strings.Contains(msg, "already_checked_in"):
		c.JSON(http.StatusConflict, gin.H{"error": gin.H{"code": "error.alreadyCheckedIn", "message": "Booking is already checked in"}})
	case strings.Contains(msg, "not_checked_in"):
		c.JSON(http.StatusConflict, gin.H{"error": gin.H{"code": "error.notCheckedIn", "message": "Booking is not checked in"}})
	case strings.Contains(msg, "invalid_status_transition"):
		c.JSON(http.StatusConflict, gin.H{"error": gin.H{"code": "error.invalidStatusTransition", "message": "Booking status does not allow this action"}})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "Internal error", "details": msg}})
	}
}

// ---------------------------
// 1) Availability (GET /api/availability)
// ---------------------------

func (ctrl *BookingController) CheckAvailability(c *gin.Context) {
	roomTypeID, err := strconv.ParseUint(c.Query("room_type_id"), 10, 64)
	if err != nil || roomTypeID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "room_type_id is required"}})
		return
	}

	checkIn, err1 := time.Parse("2006-01-02", c.Query("check_in"))
	checkOut, err2 := time.Parse("2006-01-02", c.Query("check_out"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDates", "message": "check_in and check_out must be YYYY-MM-DD"}})
		return
	}

	result, err := ctrl.BookingSvc.Availability.CheckAvailability(uint(roomTypeID), checkIn, checkOut, nil)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": result})
}

// ---------------------------
// 2) Guest reservation (POST /api/bookings)
// ---------------------------

func (ctrl *BookingController) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "error.invalidPayload", "message": "Invalid reservation payload", "details": err.Error()},
		})
		return
	}

	guestID := req.GuestID
	if guestID == 0 {
		guest, err := ctrl.GuestSvc.FindOrCreateByEmail(req.FullName, req.Email, req.Phone)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{"code": "error.invalidPayload", "message": "Guest details required", "details": err.Error()},
			})
			return
		}
		guestID = guest.ID
	}

	booking, err := ctrl.BookingSvc.CreateReservation(services.CreateReservationInput{
		GuestID:       guestID,
		RoomTypeID:    req.RoomTypeID,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Adults:        req.Adults,
		Children:      req.Children,
		PromotionCode: req.PromotionCode,
		Source:        models.BookingSourceOnline,
	})
	if err != nil {
		log.Printf("CreateReservation error for guest %d: %v", guestID, err)
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": booking})
}

// ---------------------------
// 3) Walk-in (POST /api/admin/bookings/walk-in)
// ---------------------------

func (ctrl *BookingController) CreateWalkIn(c *gin.Context) {
	var req WalkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "error.invalidPayload", "message": "Invalid walk-in payload", "details": err.Error()},
		})
		return
	}

	guest, err := ctrl.GuestSvc.FindOrCreateByEmail(req.FullName, req.Email, req.Phone)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "error.invalidPayload", "message": "Guest details required", "details": err.Error()},
		})
		return
	}

	booking, err := ctrl.BookingSvc.CreateReservation(services.CreateReservationInput{
		GuestID:       guest.ID,
		RoomTypeID:    req.RoomTypeID,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Adults:        req.Adults,
		Children:      req.Children,
		PromotionCode: req.PromotionCode,
		Source:        models.BookingSourceWalkIn,
		GuestList:     req.GuestList,
	})
	if err != nil {
		log.Printf("CreateWalkIn error: %v", err)
		respondBookingError(c, err)
		return
	}

	ctrl.Activity.Record(adminIDFromContext(c), "create", "booking", booking.ID, gin.H{
		"reference_code": booking.ReferenceCode,
		"source":         booking.Source,
	})

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": booking})
}

// ---------------------------
// 4) Listing / details
// ---------------------------

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	list, err := ctrl.BookingSvc.GetAllWithRelations()
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || strings.Contains(err.Error(), "booking_not_found") {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.bookingNotFound", "message": "Booking not found"}})
			return
		}
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": booking})
}

// ---------------------------
// 5) Transitions
// ---------------------------

func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.Cancel(id); err != nil {
		respondBookingError(c, err)
		return
	}
	ctrl.Activity.Record(adminIDFromContext(c), "cancel", "booking", id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Booking cancelled"})
}

func (ctrl *BookingController) CheckInBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.CheckIn(id); err != nil {
		respondBookingError(c, err)
		return
	}
	ctrl.Activity.Record(adminIDFromContext(c), "check_in", "booking", id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Checked in"})
}

func (ctrl *BookingController) CheckOutBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.CheckOut(id); err != nil {
		respondBookingError(c, err)
		return
	}
	ctrl.Activity.Record(adminIDFromContext(c), "check_out", "booking", id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Checked out"})
}
