// services/booking_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"resort-backend/models"
	"resort-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookingService owns the reservation lifecycle: guest reservations, front
// desk walk-ins, cancellation and check-in/out transitions.
type BookingService struct {
	DB           *gorm.DB
	Availability *AvailabilityService
	Promotions   *PromotionService
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{
		DB:           db,
		Availability: NewAvailabilityService(db),
		Promotions:   NewPromotionService(db),
	}
}

// CreateReservationInput carries both the guest flow and the walk-in flow.
type CreateReservationInput struct {
	GuestID       uint
	RoomTypeID    uint
	CheckIn       string // "2006-01-02"
	CheckOut      string
	Adults        int
	Children      int
	PromotionCode string
	Source        models.BookingSource
	// Draft companion names captured at walk-in entry.
	GuestList []map[string]interface{}
}

func parseStayDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

func normalizeGuestList(guestList []map[string]interface{}) []map[string]interface{} {
	if len(guestList) == 0 {
		return []map[string]interface{}{}
	}
	out := make([]map[string]interface{}, 0, len(guestList))
	for _, g := range guestList {
		name := ""
		for _, k := range []string{"name", "fullName", "full_name"} {
			if v, ok := g[k]; ok && v != nil {
				if s, ok2 := v.(string); ok2 {
					name = strings.TrimSpace(s)
				}
				break
			}
		}
		if name == "" {
			continue
		}
		out = append(out, map[string]interface{}{"fullName": name})
	}
	return out
}

// CreateReservation validates the window, runs the duplicate guard and the
// availability check, prices the stay (promotion applied when current) and
// inserts the booking.
//
// The availability check and the insert are two separate statements with no
// lock between them; two concurrent requests for the last unit can both pass.
func (s *BookingService) CreateReservation(in CreateReservationInput) (models.Booking, error) {
	var booking models.Booking

	checkIn, err := parseStayDate(in.CheckIn)
	if err != nil {
		return booking, fmt.Errorf("validation: invalid check_in: %w", err)
	}
	checkOut, err := parseStayDate(in.CheckOut)
	if err != nil {
		return booking, fmt.Errorf("validation: invalid check_out: %w", err)
	}
	if !checkOut.After(checkIn) {
		return booking, errors.New("invalid_date_range")
	}
	if in.Adults <= 0 {
		in.Adults = 1
	}
	if in.Children < 0 {
		in.Children = 0
	}
	if in.Source == "" {
		in.Source = models.BookingSourceOnline
	}

	var guest models.Guest
	if err := s.DB.First(&guest, in.GuestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking, errors.New("guest_not_found")
		}
		return booking, fmt.Errorf("db error checking guest: %w", err)
	}

	var roomType models.RoomType
	if err := s.DB.First(&roomType, in.RoomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking, errors.New("room_type_not_found")
		}
		return booking, fmt.Errorf("db error checking room type: %w", err)
	}

	duplicate, err := s.Availability.HasDuplicateBooking(in.GuestID, in.RoomTypeID, checkIn, checkOut)
	if err != nil {
		return booking, err
	}
	if duplicate {
		return booking, errors.New("duplicate_booking")
	}

	avail, err := s.Availability.CheckAvailability(in.RoomTypeID, checkIn, checkOut, nil)
	if err != nil {
		return booking, err
	}
	if !avail.Available {
		return booking, fmt.Errorf("no_availability: capacity=%d conflicts=%d", avail.Capacity, avail.Conflicts)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	total := float64(nights) * roomType.BasePrice

	promoCode := strings.TrimSpace(strings.ToUpper(in.PromotionCode))
	if promoCode != "" {
		promo, err := s.Promotions.Resolve(promoCode, time.Now().UTC())
		if err != nil {
			return booking, err
		}
		total = total * (1 - promo.PercentOff/100)
	}

	accompanyingJSON, _ := json.Marshal(normalizeGuestList(in.GuestList))

	booking = models.Booking{
		ReferenceCode:      utils.GenerateBookingReference(time.Now().UTC()),
		RoomTypeID:         in.RoomTypeID,
		GuestID:            in.GuestID,
		CheckInDate:        checkIn,
		CheckOutDate:       checkOut,
		Status:             models.BookingStatusPending,
		PaymentStatus:      models.PaymentStatePending,
		Source:             in.Source,
		TotalAmount:        total,
		PromotionCode:      promoCode,
		Adults:             in.Adults,
		Children:           in.Children,
		AccompanyingGuests: datatypes.JSON(accompanyingJSON),
	}

	if err := s.DB.Create(&booking).Error; err != nil {
		return booking, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}

// GetByID loads a booking with its relations.
func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var bk models.Booking
	if err := s.DB.Preload("RoomType").Preload("Guest").Preload("Payments").First(&bk, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("booking_not_found")
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &bk, nil
}

// GetAllWithRelations lists bookings for the admin console, newest first.
func (s *BookingService) GetAllWithRelations() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("RoomType").
		Preload("Guest").
		Preload("Payments").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	for i := range list {
		if list[i].Payments == nil {
			list[i].Payments = []models.Payment{}
		}
	}
	return list, nil
}

// Cancel marks a booking cancelled. Only pending and confirmed bookings can
// be cancelled; a stay that already started goes through checkout instead.
func (s *BookingService) Cancel(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return err
		}

		switch booking.Status {
		case models.BookingStatusPending, models.BookingStatusConfirmed:
			// cancellable
		case models.BookingStatusCancelled:
			return errors.New("already_cancelled")
		default:
			return errors.New("invalid_status_transition")
		}

		return tx.Model(&booking).
			Update("status", models.BookingStatusCancelled).Error
	})
}

// CheckIn moves a pending or confirmed booking into checked_in.
func (s *BookingService) CheckIn(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return err
		}

		switch booking.Status {
		case models.BookingStatusPending, models.BookingStatusConfirmed:
			// ok
		case models.BookingStatusCheckedIn:
			return errors.New("already_checked_in")
		default:
			return errors.New("invalid_status_transition")
		}

		now := time.Now().UTC()
		return tx.Model(&booking).Updates(map[string]interface{}{
			"status":        models.BookingStatusCheckedIn,
			"checked_in_at": now,
		}).Error
	})
}

// CheckOut completes a checked-in stay.
func (s *BookingService) CheckOut(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return err
		}

		if booking.Status != models.BookingStatusCheckedIn {
			return errors.New("not_checked_in")
		}

		now := time.Now().UTC()
		return tx.Model(&booking).Updates(map[string]interface{}{
			"status":         models.BookingStatusCheckedOut,
			"checked_out_at": now,
		}).Error
	})
}
