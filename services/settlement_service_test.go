package services

import (
	"testing"
	"time"

	"resort-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettleBooking_Classification(t *testing.T) {
	cases := []struct {
		name       string
		payments   []float64 // completed amounts
		wantState  models.PaymentState
		wantPaid   float64
		wantStatus models.BookingStatus
	}{
		{"no payments stays pending", nil, models.PaymentStatePending, 0, models.BookingStatusPending},
		{"partial payment", []float64{400}, models.PaymentStatePartial, 400, models.BookingStatusConfirmed},
		{"exact total is paid", []float64{400, 600}, models.PaymentStatePaid, 1000, models.BookingStatusConfirmed},
		{"overpayment is paid", []float64{1200}, models.PaymentStatePaid, 1200, models.BookingStatusConfirmed},
		{"full refund nets to pending", []float64{1000, -1000}, models.PaymentStatePending, 0, models.BookingStatusPending},
		{"partial refund nets to partial", []float64{1000, -700}, models.PaymentStatePartial, 300, models.BookingStatusConfirmed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := newTestDB(t)
			svc := NewSettlementService(db)

			rt := seedRoomType(t, db, "Standard", 5, 500)
			guest := seedGuest(t, db, "A", "a@example.com")
			bk := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.March, 1), day(2026, time.March, 3), models.BookingStatusPending, 1000)

			for _, amount := range tc.payments {
				seedPayment(t, db, bk.ID, amount, models.PaymentStatusCompleted)
			}

			res, err := svc.SettleBooking(bk.ID)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, tc.wantState, res.PaymentStatus)
			assert.Equal(t, tc.wantPaid, res.TotalPaid)
			assert.Equal(t, 1000.0, res.TotalDue)
			assert.Equal(t, tc.wantStatus, res.BookingStatus)

			var got models.Booking
			require.NoError(t, db.First(&got, bk.ID).Error)
			assert.Equal(t, tc.wantState, got.PaymentStatus)
			assert.Equal(t, tc.wantStatus, got.Status)
		})
	}
}

func TestSettleBooking_IgnoresPendingAndFailedPayments(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettlementService(db)

	rt := seedRoomType(t, db, "Standard", 5, 500)
	guest := seedGuest(t, db, "A", "a@example.com")
	bk := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.March, 1), day(2026, time.March, 3), models.BookingStatusPending, 1000)

	seedPayment(t, db, bk.ID, 1000, models.PaymentStatusPending)
	seedPayment(t, db, bk.ID, 1000, models.PaymentStatusFailed)

	res, err := svc.SettleBooking(bk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatePending, res.PaymentStatus)
	assert.Equal(t, 0.0, res.TotalPaid)
	assert.Equal(t, models.BookingStatusPending, res.BookingStatus)
}

func TestSettleBooking_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettlementService(db)

	rt := seedRoomType(t, db, "Standard", 5, 500)
	guest := seedGuest(t, db, "A", "a@example.com")
	bk := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.March, 1), day(2026, time.March, 3), models.BookingStatusPending, 1000)
	seedPayment(t, db, bk.ID, 400, models.PaymentStatusCompleted)

	first, err := svc.SettleBooking(bk.ID)
	require.NoError(t, err)
	second, err := svc.SettleBooking(bk.ID)
	require.NoError(t, err)
	third, err := svc.SettleBooking(bk.ID)
	require.NoError(t, err)

	assert.Equal(t, first.PaymentStatus, second.PaymentStatus)
	assert.Equal(t, second, third)
	assert.Equal(t, 400.0, third.TotalPaid)
}

func TestSettleBooking_NeverDemotesAdvancedStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettlementService(db)

	rt := seedRoomType(t, db, "Standard", 5, 500)
	guest := seedGuest(t, db, "A", "a@example.com")

	for _, status := range []models.BookingStatus{
		models.BookingStatusCheckedIn,
		models.BookingStatusCheckedOut,
		models.BookingStatusCancelled,
	} {
		bk := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.March, 1), day(2026, time.March, 3), status, 1000)
		seedPayment(t, db, bk.ID, 1000, models.PaymentStatusCompleted)

		res, err := svc.SettleBooking(bk.ID)
		require.NoError(t, err)
		assert.Equal(t, status, res.BookingStatus, "status %s must not change", status)
		assert.Equal(t, models.PaymentStatePaid, res.PaymentStatus)

		var got models.Booking
		require.NoError(t, db.First(&got, bk.ID).Error)
		assert.Equal(t, status, got.Status)
	}
}

func TestSettleBooking_NoPromotionWithoutMoney(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettlementService(db)

	rt := seedRoomType(t, db, "Standard", 5, 500)
	guest := seedGuest(t, db, "A", "a@example.com")
	bk := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.March, 1), day(2026, time.March, 3), models.BookingStatusPending, 1000)

	res, err := svc.SettleBooking(bk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, res.BookingStatus)
}

func TestSettleBooking_MissingBookingIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettlementService(db)

	res, err := svc.SettleBooking(424242)
	assert.NoError(t, err)
	assert.Nil(t, res)
}
