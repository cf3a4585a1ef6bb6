package services

import (
	"testing"
	"time"

	"resort-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReservation_PricesByNights(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	rt := seedRoomType(t, db, "Deluxe", 3, 3500)
	guest := seedGuest(t, db, "A", "a@example.com")

	bk, err := svc.CreateReservation(CreateReservationInput{
		GuestID:    guest.ID,
		RoomTypeID: rt.ID,
		CheckIn:    "2026-03-10",
		CheckOut:   "2026-03-13",
		Adults:     2,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, bk.Nights())
	assert.Equal(t, 3*3500.0, bk.TotalAmount)
	assert.Equal(t, models.BookingStatusPending, bk.Status)
	assert.Equal(t, models.PaymentStatePending, bk.PaymentStatus)
	assert.Equal(t, models.BookingSourceOnline, bk.Source)
	assert.NotEmpty(t, bk.ReferenceCode)
}

func TestCreateReservation_AppliesCurrentPromotion(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	rt := seedRoomType(t, db, "Standard", 3, 1000)
	guest := seedGuest(t, db, "A", "a@example.com")

	now := time.Now().UTC()
	require.NoError(t, db.Create(&models.Promotion{
		Code:       "SUMMER20",
		PercentOff: 20,
		ValidFrom:  now.Add(-24 * time.Hour),
		ValidUntil: now.Add(24 * time.Hour),
		Active:     true,
	}).Error)

	bk, err := svc.CreateReservation(CreateReservationInput{
		GuestID:       guest.ID,
		RoomTypeID:    rt.ID,
		CheckIn:       "2026-03-10",
		CheckOut:      "2026-03-12",
		PromotionCode: "summer20", // case-insensitive
	})
	require.NoError(t, err)
	assert.Equal(t, 2*1000*0.8, bk.TotalAmount)
	assert.Equal(t, "SUMMER20", bk.PromotionCode)
}

func TestCreateReservation_RejectsExpiredPromotion(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	rt := seedRoomType(t, db, "Standard", 3, 1000)
	guest := seedGuest(t, db, "A", "a@example.com")

	now := time.Now().UTC()
	require.NoError(t, db.Create(&models.Promotion{
		Code:       "GONE",
		PercentOff: 20,
		ValidFrom:  now.Add(-48 * time.Hour),
		ValidUntil: now.Add(-24 * time.Hour),
		Active:     true,
	}).Error)

	_, err := svc.CreateReservation(CreateReservationInput{
		GuestID:       guest.ID,
		RoomTypeID:    rt.ID,
		CheckIn:       "2026-03-10",
		CheckOut:      "2026-03-12",
		PromotionCode: "GONE",
	})
	assert.EqualError(t, err, "promotion_not_valid")
}

func TestCreateReservation_DuplicateGuard(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	deluxe := seedRoomType(t, db, "Deluxe", 5, 3500)
	villa := seedRoomType(t, db, "Pool Villa", 5, 6800)
	guest := seedGuest(t, db, "A", "a@example.com")

	first := CreateReservationInput{
		GuestID:    guest.ID,
		RoomTypeID: deluxe.ID,
		CheckIn:    "2026-04-01",
		CheckOut:   "2026-04-04",
	}
	_, err := svc.CreateReservation(first)
	require.NoError(t, err)

	// Same guest, same room type, overlapping dates: blocked.
	_, err = svc.CreateReservation(first)
	assert.EqualError(t, err, "duplicate_booking")

	// Same dates but a different room type goes through.
	second := first
	second.RoomTypeID = villa.ID
	_, err = svc.CreateReservation(second)
	assert.NoError(t, err)
}

func TestCreateReservation_NoAvailability(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	rt := seedRoomType(t, db, "Standard", 1, 1500)
	guestA := seedGuest(t, db, "A", "a@example.com")
	guestB := seedGuest(t, db, "B", "b@example.com")

	_, err := svc.CreateReservation(CreateReservationInput{
		GuestID:    guestA.ID,
		RoomTypeID: rt.ID,
		CheckIn:    "2026-05-01",
		CheckOut:   "2026-05-04",
	})
	require.NoError(t, err)

	_, err = svc.CreateReservation(CreateReservationInput{
		GuestID:    guestB.ID,
		RoomTypeID: rt.ID,
		CheckIn:    "2026-05-02",
		CheckOut:   "2026-05-05",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_availability")
}

func TestCreateReservation_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	rt := seedRoomType(t, db, "Standard", 1, 1500)
	guest := seedGuest(t, db, "A", "a@example.com")

	_, err := svc.CreateReservation(CreateReservationInput{
		GuestID: guest.ID, RoomTypeID: rt.ID,
		CheckIn: "2026-05-04", CheckOut: "2026-05-01",
	})
	assert.EqualError(t, err, "invalid_date_range")

	_, err = svc.CreateReservation(CreateReservationInput{
		GuestID: guest.ID, RoomTypeID: rt.ID,
		CheckIn: "2026-05-01", CheckOut: "2026-05-01",
	})
	assert.EqualError(t, err, "invalid_date_range")

	_, err = svc.CreateReservation(CreateReservationInput{
		GuestID: guest.ID, RoomTypeID: rt.ID,
		CheckIn: "not-a-date", CheckOut: "2026-05-01",
	})
	assert.Error(t, err)

	_, err = svc.CreateReservation(CreateReservationInput{
		GuestID: 9999, RoomTypeID: rt.ID,
		CheckIn: "2026-05-01", CheckOut: "2026-05-02",
	})
	assert.EqualError(t, err, "guest_not_found")

	_, err = svc.CreateReservation(CreateReservationInput{
		GuestID: guest.ID, RoomTypeID: 9999,
		CheckIn: "2026-05-01", CheckOut: "2026-05-02",
	})
	assert.EqualError(t, err, "room_type_not_found")
}

// The availability check and the booking insert are separate statements with
// nothing locking the window between them. Two requests that both read
// "1 unit free" can both insert; the store accepts the resulting overbooking
// and leaves it to staff to resolve. This pins that behavior.
func TestCreateReservation_LastUnitRaceIsRepresentable(t *testing.T) {
	db := newTestDB(t)
	availability := NewAvailabilityService(db)

	rt := seedRoomType(t, db, "Standard", 1, 1500)
	guestA := seedGuest(t, db, "A", "a@example.com")
	guestB := seedGuest(t, db, "B", "b@example.com")

	checkIn := day(2026, time.June, 1)
	checkOut := day(2026, time.June, 3)

	// Both requests read the same free unit...
	resA, err := availability.CheckAvailability(rt.ID, checkIn, checkOut, nil)
	require.NoError(t, err)
	resB, err := availability.CheckAvailability(rt.ID, checkIn, checkOut, nil)
	require.NoError(t, err)
	assert.True(t, resA.Available)
	assert.True(t, resB.Available)

	// ...and both inserts succeed: no constraint rejects the second one.
	seedBooking(t, db, guestA.ID, rt.ID, checkIn, checkOut, models.BookingStatusPending, 3000)
	seedBooking(t, db, guestB.ID, rt.ID, checkIn, checkOut, models.BookingStatusPending, 3000)

	after, err := availability.CheckAvailability(rt.ID, checkIn, checkOut, nil)
	require.NoError(t, err)
	assert.False(t, after.Available)
	assert.Equal(t, 2, after.Conflicts)
}

func TestBookingLifecycleTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	rt := seedRoomType(t, db, "Standard", 5, 1500)
	guest := seedGuest(t, db, "A", "a@example.com")

	bk := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.July, 1), day(2026, time.July, 3), models.BookingStatusConfirmed, 3000)

	// Cannot check out before checking in.
	assert.EqualError(t, svc.CheckOut(bk.ID), "not_checked_in")

	require.NoError(t, svc.CheckIn(bk.ID))
	var got models.Booking
	require.NoError(t, db.First(&got, bk.ID).Error)
	assert.Equal(t, models.BookingStatusCheckedIn, got.Status)
	assert.NotNil(t, got.CheckedInAt)

	// Double check-in and late cancellation are rejected.
	assert.EqualError(t, svc.CheckIn(bk.ID), "already_checked_in")
	assert.Error(t, svc.Cancel(bk.ID))

	require.NoError(t, svc.CheckOut(bk.ID))
	require.NoError(t, db.First(&got, bk.ID).Error)
	assert.Equal(t, models.BookingStatusCheckedOut, got.Status)
	assert.NotNil(t, got.CheckedOutAt)
}

func TestCancel_OnlyBeforeStayStarts(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	rt := seedRoomType(t, db, "Standard", 5, 1500)
	guest := seedGuest(t, db, "A", "a@example.com")

	bk := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.July, 1), day(2026, time.July, 3), models.BookingStatusPending, 3000)
	require.NoError(t, svc.Cancel(bk.ID))

	var got models.Booking
	require.NoError(t, db.First(&got, bk.ID).Error)
	assert.Equal(t, models.BookingStatusCancelled, got.Status)

	assert.EqualError(t, svc.Cancel(9999), "booking_not_found")
}
