// services/settlement_service.go
package services

import (
	"fmt"
	"log"

	"resort-backend/models"

	"gorm.io/gorm"
)

// SettlementService recomputes a booking's payment position from its full set
// of completed payments. It is called after every payment mutation and is
// idempotent: concurrent calls re-derive the same answer instead of
// incrementing anything.
type SettlementService struct {
	DB *gorm.DB
}

func NewSettlementService(db *gorm.DB) *SettlementService {
	return &SettlementService{DB: db}
}

type SettlementResult struct {
	PaymentStatus models.PaymentState  `json:"payment_status"`
	BookingStatus models.BookingStatus `json:"booking_status"`
	TotalPaid     float64              `json:"total_paid"`
	TotalDue      float64              `json:"total_due"`
}

// SettleBooking classifies total completed payments against total_amount and
// persists payment_status plus, in one narrow case, a pending -> confirmed
// promotion. A missing booking is a logged no-op (nil, nil): settlement runs
// as a side effect of a payment write and must never fail that write.
func (s *SettlementService) SettleBooking(bookingID uint) (*SettlementResult, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.Printf("warning: settlement skipped, booking %d not found", bookingID)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load booking %d for settlement: %w", bookingID, err)
	}

	// Refunds carry negative amounts, so the plain sum already nets them out.
	var totalPaid float64
	err := s.DB.Model(&models.Payment{}).
		Where("booking_id = ? AND status = ?", bookingID, models.PaymentStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalPaid).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments for booking %d: %w", bookingID, err)
	}

	var paymentStatus models.PaymentState
	switch {
	case totalPaid >= booking.TotalAmount:
		paymentStatus = models.PaymentStatePaid
	case totalPaid > 0:
		paymentStatus = models.PaymentStatePartial
	default:
		paymentStatus = models.PaymentStatePending
	}

	// Promote pending bookings once money arrives. Never demote an advanced
	// status and never auto-cancel on zero.
	bookingStatus := booking.Status
	if booking.Status == models.BookingStatusPending && totalPaid > 0 {
		bookingStatus = models.BookingStatusConfirmed
	}

	updates := map[string]interface{}{
		"payment_status": paymentStatus,
	}
	if bookingStatus != booking.Status {
		updates["status"] = bookingStatus
	}

	if err := s.DB.Model(&models.Booking{}).Where("id = ?", bookingID).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to persist settlement for booking %d: %w", bookingID, err)
	}

	return &SettlementResult{
		PaymentStatus: paymentStatus,
		BookingStatus: bookingStatus,
		TotalPaid:     totalPaid,
		TotalDue:      booking.TotalAmount,
	}, nil
}
