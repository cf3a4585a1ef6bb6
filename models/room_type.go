package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomType is a category of interchangeable bookable units. TotalRooms is the
// shared capacity the availability checker counts against.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TypeName    string  `gorm:"size:150;uniqueIndex" json:"typeName"`
	Description string  `gorm:"type:text" json:"description"`
	TotalRooms  int     `gorm:"column:total_rooms;default:0" json:"total_rooms"`
	BasePrice   float64 `gorm:"column:base_price" json:"base_price"`
	MaxGuests   uint    `json:"max_guests"`
	ImagePath   string  `gorm:"size:255" json:"image_path,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
