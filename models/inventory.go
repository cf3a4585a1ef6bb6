package models

import (
	"time"

	"gorm.io/gorm"
)

// InventoryItem is back-office stock (linen, amenities, minibar).
type InventoryItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:150;uniqueIndex" json:"name"`
	Category     string `gorm:"size:100;index" json:"category"`
	Unit         string `gorm:"size:50" json:"unit"`
	Quantity     int    `gorm:"column:quantity;default:0" json:"quantity"`
	ReorderLevel int    `gorm:"column:reorder_level;default:0" json:"reorder_level"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
