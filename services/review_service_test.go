package services

import (
	"testing"
	"time"

	"resort-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview_RequiresCompletedStay(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	rt := seedRoomType(t, db, "Standard", 5, 1500)
	guest := seedGuest(t, db, "A", "a@example.com")

	for _, status := range []models.BookingStatus{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusCheckedIn,
		models.BookingStatusCancelled,
	} {
		bk := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.March, 1), day(2026, time.March, 3), status, 3000)
		_, err := svc.Create(bk.ID, 5, "great")
		assert.EqualError(t, err, "stay_not_completed", "status %s", status)
	}

	done := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.April, 1), day(2026, time.April, 3), models.BookingStatusCheckedOut, 3000)
	review, err := svc.Create(done.ID, 4, "  lovely stay  ")
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "lovely stay", review.Comment)
	assert.Equal(t, guest.ID, review.GuestID)
}

func TestCreateReview_OnePerBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	rt := seedRoomType(t, db, "Standard", 5, 1500)
	guest := seedGuest(t, db, "A", "a@example.com")
	bk := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.March, 1), day(2026, time.March, 3), models.BookingStatusCheckedOut, 3000)

	_, err := svc.Create(bk.ID, 5, "first")
	require.NoError(t, err)

	_, err = svc.Create(bk.ID, 3, "second")
	assert.EqualError(t, err, "review_already_exists")
}

func TestCreateReview_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	_, err := svc.Create(1, 0, "")
	assert.EqualError(t, err, "invalid_rating")
	_, err = svc.Create(1, 6, "")
	assert.EqualError(t, err, "invalid_rating")
	_, err = svc.Create(9999, 4, "")
	assert.EqualError(t, err, "booking_not_found")
}

func TestListByRoomType(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	deluxe := seedRoomType(t, db, "Deluxe", 5, 3500)
	villa := seedRoomType(t, db, "Pool Villa", 5, 6800)
	guest := seedGuest(t, db, "A", "a@example.com")

	bkDeluxe := seedBooking(t, db, guest.ID, deluxe.ID, day(2026, time.March, 1), day(2026, time.March, 3), models.BookingStatusCheckedOut, 7000)
	bkVilla := seedBooking(t, db, guest.ID, villa.ID, day(2026, time.April, 1), day(2026, time.April, 3), models.BookingStatusCheckedOut, 13600)

	_, err := svc.Create(bkDeluxe.ID, 5, "deluxe review")
	require.NoError(t, err)
	_, err = svc.Create(bkVilla.ID, 3, "villa review")
	require.NoError(t, err)

	list, err := svc.ListByRoomType(deluxe.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "deluxe review", list[0].Comment)
}
