package models

import (
	"gorm.io/gorm"
)

// Room is a physical unit used by housekeeping and the admin room list.
// Availability is counted on RoomType.TotalRooms, not per room.
type Room struct {
	gorm.Model

	// Nullable so an admin form without a valid FK won't insert 0.
	RoomTypeID *uint  `json:"room_type_id,omitempty" gorm:"column:room_type_id"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`

	Status      string `json:"status" gorm:"size:64"`
	Floor       string `json:"floor" gorm:"type:varchar(10)"`
	Description string `json:"description" gorm:"type:text"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
}
