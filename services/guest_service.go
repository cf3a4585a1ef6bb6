// services/guest_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"resort-backend/models"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// FindOrCreateByEmail resolves a guest identity for walk-ins and public
// reservations. Matching is by email when present, otherwise a new record.
func (s *GuestService) FindOrCreateByEmail(fullName, email, phone string) (models.Guest, error) {
	var guest models.Guest

	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))
	if fullName == "" {
		return guest, errors.New("missing_full_name")
	}

	if email != "" {
		err := s.DB.Where("email = ?", email).First(&guest).Error
		if err == nil {
			return guest, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return guest, fmt.Errorf("db error checking guest: %w", err)
		}
	}

	guest = models.Guest{FullName: fullName, Email: email, Phone: strings.TrimSpace(phone)}
	if err := s.DB.Create(&guest).Error; err != nil {
		return guest, fmt.Errorf("failed to create guest: %w", err)
	}
	return guest, nil
}

func (s *GuestService) GetByID(id int) (models.Guest, error) {
	var guest models.Guest
	err := s.DB.First(&guest, id).Error
	return guest, err
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.Order("created_at DESC").Find(&guests).Error
	return guests, err
}

func (s *GuestService) Update(guest models.Guest) error {
	return s.DB.Model(&models.Guest{}).Where("id = ?", guest.ID).Updates(guest).Error
}

func (s *GuestService) Delete(id int) error {
	return s.DB.Delete(&models.Guest{}, id).Error
}
