package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentStatus is the verification state of a single payment record.
// Transitions pending -> completed|failed via admin verification; a verified
// row is immutable afterwards.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookingID uint `gorm:"index;column:booking_id" json:"booking_id"`

	// Signed: positive = payment, negative = refund.
	Amount float64 `gorm:"column:amount" json:"amount"`

	Status        PaymentStatus `gorm:"column:status;size:32;default:pending" json:"status"`
	PaymentMethod string        `gorm:"column:payment_method;size:64" json:"payment_method"`

	ProofImagePath string     `gorm:"column:proof_image_path;size:255" json:"proof_image_path,omitempty"`
	VerifiedAt     *time.Time `gorm:"column:verified_at" json:"verified_at,omitempty"`

	// Admin who recorded/verified the transaction; nil for guest uploads.
	RecordedBy *uint `gorm:"column:recorded_by" json:"recorded_by,omitempty"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"-"`
}
