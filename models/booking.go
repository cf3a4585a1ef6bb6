package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookingStatus is the booking lifecycle. Kept as a closed set so status
// handling can switch exhaustively instead of comparing free-form strings.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCheckedIn BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn,
		BookingStatusCheckedOut, BookingStatusCancelled:
		return true
	}
	return false
}

// PaymentState is the settled payment position of a booking, recomputed by
// the settlement engine from completed payments.
type PaymentState string

const (
	PaymentStatePending PaymentState = "pending"
	PaymentStatePartial PaymentState = "partial"
	PaymentStatePaid    PaymentState = "paid"
)

// BookingSource distinguishes guest self-service reservations from walk-ins
// entered by staff at the front desk.
type BookingSource string

const (
	BookingSourceOnline BookingSource = "online"
	BookingSourceWalkIn BookingSource = "walk_in"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`

	RoomTypeID uint `gorm:"index;column:room_type_id" json:"room_type_id"`
	GuestID    uint `gorm:"index;column:guest_id" json:"guest_id"`

	// Half-open stay window: check_in inclusive, check_out exclusive.
	CheckInDate  time.Time `gorm:"column:check_in_date;index" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date;index" json:"check_out_date"`

	Status        BookingStatus `gorm:"column:status;size:32;default:pending" json:"status"`
	PaymentStatus PaymentState  `gorm:"column:payment_status;size:32;default:pending" json:"payment_status"`
	Source        BookingSource `gorm:"column:source;size:32;default:online" json:"source"`

	TotalAmount   float64 `gorm:"column:total_amount" json:"total_amount"`
	PromotionCode string  `gorm:"column:promotion_code;size:64" json:"promotion_code,omitempty"`

	Adults   int `gorm:"column:adults;default:1" json:"adults"`
	Children int `gorm:"column:children;default:0" json:"children"`

	// Draft companions captured at walk-in entry, kept as JSON until check-in.
	AccompanyingGuests datatypes.JSON `gorm:"column:accompanying_guests" json:"accompanying_guests,omitempty"`

	CheckedInAt  *time.Time `gorm:"column:checked_in_at" json:"checked_in_at,omitempty"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at" json:"checked_out_at,omitempty"`

	RoomType RoomType  `gorm:"foreignKey:RoomTypeID;references:ID" json:"room_type,omitempty"`
	Guest    Guest     `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`
	Payments []Payment `gorm:"foreignKey:BookingID" json:"payments,omitempty"`
}

// Nights of the stay. The half-open window makes this a plain day diff.
func (b Booking) Nights() int {
	n := int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}
