// services/availability_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"resort-backend/models"

	"gorm.io/gorm"
)

// AvailabilityService answers "can we take this reservation" by counting
// overlapping active bookings against the room type's unit capacity.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

type AvailabilityResult struct {
	Available bool `json:"available"`
	Capacity  int  `json:"capacity"`
	Conflicts int  `json:"conflicts"`
}

// Statuses that no longer occupy a unit. Cancelled stays never did;
// checked-out stays have released theirs.
var releasedStatuses = []models.BookingStatus{
	models.BookingStatusCancelled,
	models.BookingStatusCheckedOut,
}

// CheckAvailability counts bookings for the room type overlapping the
// half-open window [checkIn, checkOut) and compares against TotalRooms.
// excludeBookingID skips one booking, for re-checks while amending it.
//
// Availability is a best-effort read: nothing locks between this check and a
// later insert, so two simultaneous requests can both win the last unit.
func (s *AvailabilityService) CheckAvailability(roomTypeID uint, checkIn, checkOut time.Time, excludeBookingID *uint) (AvailabilityResult, error) {
	var result AvailabilityResult

	if !checkOut.After(checkIn) {
		return result, errors.New("invalid_date_range")
	}

	var roomType models.RoomType
	if err := s.DB.First(&roomType, roomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result, errors.New("room_type_not_found")
		}
		return result, fmt.Errorf("failed to load room type %d: %w", roomTypeID, err)
	}

	q := s.DB.Model(&models.Booking{}).
		Where("room_type_id = ?", roomTypeID).
		Where("status NOT IN ?", releasedStatuses).
		// half-open overlap: existing.check_in < new.check_out AND existing.check_out > new.check_in
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeBookingID != nil {
		q = q.Where("id <> ?", *excludeBookingID)
	}

	var conflicts int64
	if err := q.Count(&conflicts).Error; err != nil {
		return result, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	result.Capacity = roomType.TotalRooms
	result.Conflicts = int(conflicts)
	result.Available = result.Conflicts < result.Capacity
	return result, nil
}

// HasDuplicateBooking is the soft duplicate guard ("smart mode"): true when
// the guest already holds an active booking for the SAME room type over an
// overlapping window. Other room types over the same dates are never blocked.
func (s *AvailabilityService) HasDuplicateBooking(guestID, roomTypeID uint, checkIn, checkOut time.Time) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, errors.New("invalid_date_range")
	}

	var count int64
	err := s.DB.Model(&models.Booking{}).
		Where("guest_id = ? AND room_type_id = ?", guestID, roomTypeID).
		Where("status NOT IN ?", releasedStatuses).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check duplicate bookings: %w", err)
	}
	return count > 0, nil
}
