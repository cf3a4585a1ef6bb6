package models

import (
	"time"

	"gorm.io/gorm"
)

// Guest is the person a booking belongs to. Identity only: portal sign-in is
// handled outside this service.
type Guest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName    string `gorm:"size:255" json:"fullName"`
	Email       string `gorm:"size:150;index" json:"email"`
	Phone       string `gorm:"size:50" json:"phone"`
	Nationality string `gorm:"size:100" json:"nationality"`

	IDType   string `gorm:"size:50" json:"idType,omitempty"`
	IDNumber string `gorm:"size:100" json:"idNumber,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
