package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog records an admin action for the audit trail.
type ActivityLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AdminID  *uint  `gorm:"index;column:admin_id" json:"admin_id,omitempty"`
	Action   string `gorm:"size:100;index" json:"action"`
	Entity   string `gorm:"size:100;index" json:"entity"`
	EntityID uint   `gorm:"column:entity_id" json:"entity_id,omitempty"`

	Details datatypes.JSON `gorm:"column:details" json:"details,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	Admin *Admin `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
}
