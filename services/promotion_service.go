// services/promotion_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"resort-backend/models"

	"gorm.io/gorm"
)

type PromotionService struct {
	DB *gorm.DB
}

func NewPromotionService(db *gorm.DB) *PromotionService {
	return &PromotionService{DB: db}
}

// Resolve returns the promotion for a code when it is active and the moment
// falls inside its validity window.
func (s *PromotionService) Resolve(code string, at time.Time) (*models.Promotion, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if code == "" {
		return nil, errors.New("promotion_not_valid")
	}

	var promo models.Promotion
	if err := s.DB.Where("UPPER(code) = ?", code).First(&promo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("promotion_not_valid")
		}
		return nil, fmt.Errorf("failed to resolve promotion: %w", err)
	}
	if !promo.CurrentAt(at) {
		return nil, errors.New("promotion_not_valid")
	}
	return &promo, nil
}

func (s *PromotionService) Create(p models.Promotion) (models.Promotion, error) {
	p.Code = strings.TrimSpace(strings.ToUpper(p.Code))
	if p.Code == "" || p.PercentOff <= 0 || p.PercentOff > 100 {
		return p, errors.New("invalid_promotion")
	}
	if !p.ValidUntil.After(p.ValidFrom) {
		return p, errors.New("invalid_date_range")
	}
	if err := s.DB.Create(&p).Error; err != nil {
		return p, fmt.Errorf("failed to create promotion: %w", err)
	}
	return p, nil
}

func (s *PromotionService) GetAll() ([]models.Promotion, error) {
	var list []models.Promotion
	err := s.DB.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (s *PromotionService) Update(p models.Promotion) error {
	return s.DB.Model(&models.Promotion{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"description": p.Description,
		"percent_off": p.PercentOff,
		"valid_from":  p.ValidFrom,
		"valid_until": p.ValidUntil,
		"active":      p.Active,
	}).Error
}

func (s *PromotionService) Delete(id int) error {
	return s.DB.Delete(&models.Promotion{}, id).Error
}
