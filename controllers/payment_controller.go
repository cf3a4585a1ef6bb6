// controllers/payment_controller.go
package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resort-backend/services"

	"github.com/gin-gonic/gin"
)

type CreatePaymentRequest struct {
	BookingID     uint    `json:"booking_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
}

type RecordTransactionRequest struct {
	BookingID     uint    `json:"booking_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"` // negative = refund
	PaymentMethod string  `json:"payment_method" binding:"required"`
}

type VerifyPaymentRequest struct {
	Approve bool `json:"approve"`
}

type PaymentController struct {
	PaymentSvc *services.PaymentService
	Activity   *services.ActivityService
	UploadDir  string
}

func NewPaymentController(paymentSvc *services.PaymentService, activity *services.ActivityService) *PaymentController {
	return &PaymentController{
		PaymentSvc: paymentSvc,
		Activity:   activity,
		UploadDir:  filepath.Join("uploads", "payments"),
	}
}

func respondPaymentError(c *gin.Context, err error) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "payment_not_found"):
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.paymentNotFound", "message": "Payment not found"}})
	case strings.Contains(msg, "booking_not_found"):
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.bookingNotFound", "message": "Booking not found"}})
	case strings.Contains(msg, "payment_already_verified"):
		c.JSON(http.StatusConflict, gin.H{"error": gin.H{"code": "error.paymentAlreadyVerified", "message": "Payment has already been verified"}})
	case strings.Contains(msg, "booking_cancelled"):
		c.JSON(http.StatusConflict, gin.H{"error": gin.H{"code": "error.bookingCancelled", "message": "Cannot take payments for a cancelled booking"}})
	case strings.Contains(msg, "invalid_amount"), strings.Contains(msg, "missing_payment_method"):
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "Invalid payment payload", "details": msg}})
	case strings.Contains(msg, "not_permitted"):
		c.JSON(http.StatusForbidden, gin.H{"error": gin.H{"code": "error.forbidden", "message": "This payment type must be recorded by staff"}})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "Internal error", "details": msg}})
	}
}

// ---------------------------
// 1) Guest payment submission (POST /api/payments)
// ---------------------------

func (ctrl *PaymentController) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "error.invalidPayload", "message": "Invalid payment payload", "details": err.Error()},
		})
		return
	}

	payment, err := ctrl.PaymentSvc.RecordPayment(services.RecordPaymentInput{
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		log.Printf("CreatePayment error for booking %d: %v", req.BookingID, err)
		respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": payment})
}

// ---------------------------
// 2) Proof upload (POST /api/payments/:id/proof)
// ---------------------------

func (ctrl *PaymentController) UploadProof(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	file, err := c.FormFile("proof")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "error.missingFile", "message": "A proof file is required (multipart field 'proof')"},
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".pdf":
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "error.unsupportedFileType", "message": "Only jpg, png and pdf proofs are accepted"},
		})
		return
	}

	if err := os.MkdirAll(ctrl.UploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "Failed to prepare upload directory"}})
		return
	}

	filename := fmt.Sprintf("payment_%d_%d%s", id, time.Now().UnixNano(), ext)
	dest := filepath.Join(ctrl.UploadDir, filename)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "Failed to save uploaded file"}})
		return
	}

	if err := ctrl.PaymentSvc.AttachProof(id, dest); err != nil {
		_ = os.Remove(dest)
		respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{"proof_image_path": dest}})
}

// ---------------------------
// 3) Admin billing
// ---------------------------

func (ctrl *PaymentController) RecordTransaction(c *gin.Context) {
	var req RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "error.invalidPayload", "message": "Invalid transaction payload", "details": err.Error()},
		})
		return
	}

	adminID := adminIDFromContext(c)
	payment, err := ctrl.PaymentSvc.RecordPayment(services.RecordPaymentInput{
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		RecordedBy:    adminID,
		Completed:     true,
	})
	if err != nil {
		log.Printf("RecordTransaction error for booking %d: %v", req.BookingID, err)
		respondPaymentError(c, err)
		return
	}

	ctrl.Activity.Record(adminID, "record", "payment", payment.ID, gin.H{
		"booking_id": req.BookingID,
		"amount":     req.Amount,
	})

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": payment})
}

func (ctrl *PaymentController) VerifyPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "error.invalidPayload", "message": "Invalid verification payload", "details": err.Error()},
		})
		return
	}

	adminID := c.GetUint("admin_id")
	payment, err := ctrl.PaymentSvc.Verify(id, req.Approve, adminID)
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	ctrl.Activity.Record(&adminID, "verify", "payment", payment.ID, gin.H{
		"approve": req.Approve,
		"status":  payment.Status,
	})

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": payment})
}

func (ctrl *PaymentController) ListPending(c *gin.Context) {
	list, err := ctrl.PaymentSvc.ListPending()
	if err != nil {
		respondPaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *PaymentController) ListByBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	list, err := ctrl.PaymentSvc.ListByBooking(id)
	if err != nil {
		respondPaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
