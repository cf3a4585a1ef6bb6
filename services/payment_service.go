// services/payment_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"resort-backend/models"

	"gorm.io/gorm"
)

// PaymentService records and verifies payments. Every mutation that can move
// money triggers settlement, fire-and-forget: a settlement failure is logged
// for admin visibility but never rolls back the payment write.
type PaymentService struct {
	DB         *gorm.DB
	Settlement *SettlementService
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{
		DB:         db,
		Settlement: NewSettlementService(db),
	}
}

type RecordPaymentInput struct {
	BookingID     uint
	Amount        float64 // negative = refund
	PaymentMethod string
	RecordedBy    *uint // admin id; nil for guest submissions
	// Admin-recorded transactions (front desk cash, verified refunds) land as
	// completed immediately; guest submissions stay pending until verified.
	Completed bool
}

// RecordPayment inserts a payment row and, when it lands completed, settles
// the booking.
func (s *PaymentService) RecordPayment(in RecordPaymentInput) (models.Payment, error) {
	var payment models.Payment

	if in.Amount == 0 {
		return payment, errors.New("invalid_amount")
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return payment, errors.New("missing_payment_method")
	}
	// Refunds and direct completions are staff actions only.
	if in.RecordedBy == nil && (in.Amount < 0 || in.Completed) {
		return payment, errors.New("not_permitted")
	}

	var booking models.Booking
	if err := s.DB.First(&booking, in.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return payment, errors.New("booking_not_found")
		}
		return payment, fmt.Errorf("db error checking booking: %w", err)
	}
	if booking.Status == models.BookingStatusCancelled && in.Amount > 0 {
		return payment, errors.New("booking_cancelled")
	}

	payment = models.Payment{
		BookingID:     in.BookingID,
		Amount:        in.Amount,
		Status:        models.PaymentStatusPending,
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		RecordedBy:    in.RecordedBy,
	}
	if in.Completed {
		now := time.Now().UTC()
		payment.Status = models.PaymentStatusCompleted
		payment.VerifiedAt = &now
	}

	if err := s.DB.Create(&payment).Error; err != nil {
		return payment, fmt.Errorf("failed to create payment: %w", err)
	}

	if payment.Status == models.PaymentStatusCompleted {
		s.settleAsync(in.BookingID)
	}
	return payment, nil
}

// AttachProof sets the uploaded proof image path on a still-pending payment.
func (s *PaymentService) AttachProof(paymentID uint, path string) error {
	var payment models.Payment
	if err := s.DB.First(&payment, paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("payment_not_found")
		}
		return fmt.Errorf("db error checking payment: %w", err)
	}
	if payment.Status != models.PaymentStatusPending {
		return errors.New("payment_already_verified")
	}
	return s.DB.Model(&payment).Update("proof_image_path", path).Error
}

// Verify moves a pending payment to completed or failed. Verified rows are
// immutable; a second verification attempt is rejected.
func (s *PaymentService) Verify(paymentID uint, approve bool, adminID uint) (models.Payment, error) {
	var payment models.Payment

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&payment, paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("payment_not_found")
			}
			return err
		}
		if payment.Status != models.PaymentStatusPending {
			return errors.New("payment_already_verified")
		}

		status := models.PaymentStatusFailed
		if approve {
			status = models.PaymentStatusCompleted
		}
		now := time.Now().UTC()

		if err := tx.Model(&payment).Updates(map[string]interface{}{
			"status":      status,
			"verified_at": now,
			"recorded_by": adminID,
		}).Error; err != nil {
			return err
		}
		payment.Status = status
		payment.VerifiedAt = &now
		payment.RecordedBy = &adminID
		return nil
	})
	if err != nil {
		return payment, err
	}

	// Settle after the verification commit regardless of outcome: a failed
	// payment can still change the recomputed position.
	s.settleAsync(payment.BookingID)
	return payment, nil
}

// ListByBooking returns all payments for a booking, oldest first.
func (s *PaymentService) ListByBooking(bookingID uint) ([]models.Payment, error) {
	var list []models.Payment
	if err := s.DB.Where("booking_id = ?", bookingID).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return list, nil
}

// ListPending returns payments awaiting verification for the billing queue.
func (s *PaymentService) ListPending() ([]models.Payment, error) {
	var list []models.Payment
	if err := s.DB.
		Where("status = ?", models.PaymentStatusPending).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending payments: %w", err)
	}
	return list, nil
}

func (s *PaymentService) settleAsync(bookingID uint) {
	if _, err := s.Settlement.SettleBooking(bookingID); err != nil {
		log.Printf("warning: settlement failed for booking %d: %v", bookingID, err)
	}
}
