package models

import "time"

// Review is guest feedback for a completed stay. One per booking.
type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint `gorm:"uniqueIndex;column:booking_id" json:"booking_id"`
	GuestID   uint `gorm:"index;column:guest_id" json:"guest_id"`

	Rating  int    `gorm:"column:rating" json:"rating"` // 1..5
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"-"`
	Guest   Guest   `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`
}
