// services/review_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"resort-backend/models"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// Create accepts one review per booking, only after the stay completed.
func (s *ReviewService) Create(bookingID uint, rating int, comment string) (models.Review, error) {
	var review models.Review

	if rating < 1 || rating > 5 {
		return review, errors.New("invalid_rating")
	}

	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return review, errors.New("booking_not_found")
		}
		return review, fmt.Errorf("db error checking booking: %w", err)
	}
	if booking.Status != models.BookingStatusCheckedOut {
		return review, errors.New("stay_not_completed")
	}

	review = models.Review{
		BookingID: bookingID,
		GuestID:   booking.GuestID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
	}
	if err := s.DB.Create(&review).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint") {
			return review, errors.New("review_already_exists")
		}
		return review, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

// ListByRoomType returns reviews for stays of the given room type.
func (s *ReviewService) ListByRoomType(roomTypeID uint) ([]models.Review, error) {
	var list []models.Review
	err := s.DB.
		Joins("JOIN bookings ON bookings.id = reviews.booking_id").
		Where("bookings.room_type_id = ?", roomTypeID).
		Preload("Guest").
		Order("reviews.created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return list, nil
}

// Delete removes a review (admin moderation).
func (s *ReviewService) Delete(id int) error {
	return s.DB.Delete(&models.Review{}, id).Error
}
