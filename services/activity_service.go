// services/activity_service.go
package services

import (
	"encoding/json"
	"log"

	"resort-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityService appends to the admin audit trail. Recording is best-effort:
// an audit failure is logged and never fails the action it describes.
type ActivityService struct {
	DB *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{DB: db}
}

func (s *ActivityService) Record(adminID *uint, action, entity string, entityID uint, details interface{}) {
	var payload datatypes.JSON
	if details != nil {
		if raw, err := json.Marshal(details); err == nil {
			payload = datatypes.JSON(raw)
		}
	}

	entry := models.ActivityLog{
		AdminID:  adminID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Details:  payload,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		log.Printf("warning: failed to record activity %s/%s: %v", entity, action, err)
	}
}

// List returns the newest entries, optionally filtered by entity.
func (s *ActivityService) List(entity string, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	q := s.DB.Preload("Admin").Order("created_at DESC").Limit(limit)
	if entity != "" {
		q = q.Where("entity = ?", entity)
	}
	var list []models.ActivityLog
	err := q.Find(&list).Error
	return list, err
}
