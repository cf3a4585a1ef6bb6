package services

import (
	"testing"
	"time"

	"resort-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAvailability_CountsAgainstCapacity(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)

	rt := seedRoomType(t, db, "Deluxe", 2, 3500)
	guest := seedGuest(t, db, "A", "a@example.com")

	checkIn := day(2026, time.March, 10)
	checkOut := day(2026, time.March, 13)

	res, err := svc.CheckAvailability(rt.ID, checkIn, checkOut, nil)
	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, 2, res.Capacity)
	assert.Equal(t, 0, res.Conflicts)

	seedBooking(t, db, guest.ID, rt.ID, checkIn, checkOut, models.BookingStatusConfirmed, 10500)
	res, err = svc.CheckAvailability(rt.ID, checkIn, checkOut, nil)
	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, 1, res.Conflicts)

	seedBooking(t, db, guest.ID, rt.ID, checkIn, checkOut, models.BookingStatusPending, 10500)
	res, err = svc.CheckAvailability(rt.ID, checkIn, checkOut, nil)
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, 2, res.Conflicts)
}

func TestCheckAvailability_HalfOpenBoundary(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)

	rt := seedRoomType(t, db, "Standard", 1, 1500)
	guest := seedGuest(t, db, "A", "a@example.com")

	// Existing stay Mar 10 -> Mar 13.
	seedBooking(t, db, guest.ID, rt.ID, day(2026, time.March, 10), day(2026, time.March, 13), models.BookingStatusConfirmed, 4500)

	// Back-to-back: new check-in on the existing check-out day is fine.
	res, err := svc.CheckAvailability(rt.ID, day(2026, time.March, 13), day(2026, time.March, 15), nil)
	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, 0, res.Conflicts)

	// Same the other way round: ending exactly when the stay begins.
	res, err = svc.CheckAvailability(rt.ID, day(2026, time.March, 8), day(2026, time.March, 10), nil)
	require.NoError(t, err)
	assert.True(t, res.Available)

	// One night of overlap conflicts.
	res, err = svc.CheckAvailability(rt.ID, day(2026, time.March, 12), day(2026, time.March, 14), nil)
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, 1, res.Conflicts)

	// Fully containing window conflicts too.
	res, err = svc.CheckAvailability(rt.ID, day(2026, time.March, 1), day(2026, time.March, 31), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Conflicts)
}

func TestCheckAvailability_ReleasedStaysFreeTheUnit(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)

	rt := seedRoomType(t, db, "Standard", 1, 1500)
	guest := seedGuest(t, db, "A", "a@example.com")

	checkIn := day(2026, time.April, 1)
	checkOut := day(2026, time.April, 5)

	seedBooking(t, db, guest.ID, rt.ID, checkIn, checkOut, models.BookingStatusCancelled, 6000)
	seedBooking(t, db, guest.ID, rt.ID, checkIn, checkOut, models.BookingStatusCheckedOut, 6000)

	res, err := svc.CheckAvailability(rt.ID, checkIn, checkOut, nil)
	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, 0, res.Conflicts)

	// A checked-in stay still occupies its unit.
	seedBooking(t, db, guest.ID, rt.ID, checkIn, checkOut, models.BookingStatusCheckedIn, 6000)
	res, err = svc.CheckAvailability(rt.ID, checkIn, checkOut, nil)
	require.NoError(t, err)
	assert.False(t, res.Available)
}

func TestCheckAvailability_ZeroCapacityNeverAvailable(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)

	rt := seedRoomType(t, db, "Closed Wing", 0, 1500)

	res, err := svc.CheckAvailability(rt.ID, day(2026, time.May, 1), day(2026, time.May, 2), nil)
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, 0, res.Capacity)
}

func TestCheckAvailability_InvalidInputs(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)

	rt := seedRoomType(t, db, "Standard", 1, 1500)

	_, err := svc.CheckAvailability(rt.ID, day(2026, time.May, 5), day(2026, time.May, 5), nil)
	assert.EqualError(t, err, "invalid_date_range")

	_, err = svc.CheckAvailability(rt.ID, day(2026, time.May, 5), day(2026, time.May, 1), nil)
	assert.EqualError(t, err, "invalid_date_range")

	_, err = svc.CheckAvailability(9999, day(2026, time.May, 1), day(2026, time.May, 2), nil)
	assert.EqualError(t, err, "room_type_not_found")
}

func TestCheckAvailability_ExcludesBookingUnderAmendment(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)

	rt := seedRoomType(t, db, "Standard", 1, 1500)
	guest := seedGuest(t, db, "A", "a@example.com")

	bk := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.June, 1), day(2026, time.June, 4), models.BookingStatusConfirmed, 4500)

	// Re-checking the same window while amending that booking must not count
	// the booking against itself.
	res, err := svc.CheckAvailability(rt.ID, day(2026, time.June, 2), day(2026, time.June, 5), &bk.ID)
	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, 0, res.Conflicts)
}

func TestHasDuplicateBooking_SameRoomTypeOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)

	deluxe := seedRoomType(t, db, "Deluxe", 3, 3500)
	villa := seedRoomType(t, db, "Pool Villa", 2, 6800)
	guest := seedGuest(t, db, "A", "a@example.com")
	other := seedGuest(t, db, "B", "b@example.com")

	checkIn := day(2026, time.July, 1)
	checkOut := day(2026, time.July, 4)
	seedBooking(t, db, guest.ID, deluxe.ID, checkIn, checkOut, models.BookingStatusConfirmed, 10500)

	dup, err := svc.HasDuplicateBooking(guest.ID, deluxe.ID, checkIn, checkOut)
	require.NoError(t, err)
	assert.True(t, dup)

	// Same guest, same dates, different room type: allowed.
	dup, err = svc.HasDuplicateBooking(guest.ID, villa.ID, checkIn, checkOut)
	require.NoError(t, err)
	assert.False(t, dup)

	// Different guest, same room type and dates: allowed.
	dup, err = svc.HasDuplicateBooking(other.ID, deluxe.ID, checkIn, checkOut)
	require.NoError(t, err)
	assert.False(t, dup)

	// Non-overlapping window for the same guest and room type: allowed.
	dup, err = svc.HasDuplicateBooking(guest.ID, deluxe.ID, checkOut, day(2026, time.July, 7))
	require.NoError(t, err)
	assert.False(t, dup)
}

func TestHasDuplicateBooking_IgnoresReleasedStays(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)

	rt := seedRoomType(t, db, "Standard", 5, 1500)
	guest := seedGuest(t, db, "A", "a@example.com")

	checkIn := day(2026, time.August, 1)
	checkOut := day(2026, time.August, 3)
	seedBooking(t, db, guest.ID, rt.ID, checkIn, checkOut, models.BookingStatusCancelled, 3000)

	dup, err := svc.HasDuplicateBooking(guest.ID, rt.ID, checkIn, checkOut)
	require.NoError(t, err)
	assert.False(t, dup)
}
