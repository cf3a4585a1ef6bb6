package services

import (
	"testing"
	"time"

	"resort-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPayment_GuestSubmissionStaysPending(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)

	rt := seedRoomType(t, db, "Standard", 5, 500)
	guest := seedGuest(t, db, "A", "a@example.com")
	bk := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.March, 1), day(2026, time.March, 3), models.BookingStatusPending, 1000)

	p, err := svc.RecordPayment(RecordPaymentInput{
		BookingID:     bk.ID,
		Amount:        1000,
		PaymentMethod: "bank_transfer",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, p.Status)
	assert.Nil(t, p.VerifiedAt)
	assert.Nil(t, p.RecordedBy)

	// An unverified payment must not move the booking.
	var got models.Booking
	require.NoError(t, db.First(&got, bk.ID).Error)
	assert.Equal(t, models.PaymentStatePending, got.PaymentStatus)
	assert.Equal(t, models.BookingStatusPending, got.Status)
}

func TestRecordPayment_AdminCompletedSettlesImmediately(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)

	rt := seedRoomType(t, db, "Standard", 5, 500)
	guest := seedGuest(t, db, "A", "a@example.com")
	bk := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.March, 1), day(2026, time.March, 3), models.BookingStatusPending, 1000)

	adminID := uint(7)
	p, err := svc.RecordPayment(RecordPaymentInput{
		BookingID:     bk.ID,
		Amount:        400,
		PaymentMethod: "cash",
		RecordedBy:    &adminID,
		Completed:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, p.Status)
	require.NotNil(t, p.VerifiedAt)

	var got models.Booking
	require.NoError(t, db.First(&got, bk.ID).Error)
	assert.Equal(t, models.PaymentStatePartial, got.PaymentStatus)
	assert.Equal(t, models.BookingStatusConfirmed, got.Status)
}

func TestRecordPayment_GuestsCannotRefundOrComplete(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)

	rt := seedRoomType(t, db, "Standard", 5, 500)
	guest := seedGuest(t, db, "A", "a@example.com")
	bk := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.March, 1), day(2026, time.March, 3), models.BookingStatusPending, 1000)

	_, err := svc.RecordPayment(RecordPaymentInput{
		BookingID: bk.ID, Amount: -500, PaymentMethod: "bank_transfer",
	})
	assert.EqualError(t, err, "not_permitted")

	_, err = svc.RecordPayment(RecordPaymentInput{
		BookingID: bk.ID, Amount: 500, PaymentMethod: "bank_transfer", Completed: true,
	})
	assert.EqualError(t, err, "not_permitted")
}

func TestRecordPayment_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)

	rt := seedRoomType(t, db, "Standard", 5, 500)
	guest := seedGuest(t, db, "A", "a@example.com")
	bk := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.March, 1), day(2026, time.March, 3), models.BookingStatusPending, 1000)

	_, err := svc.RecordPayment(RecordPaymentInput{BookingID: bk.ID, Amount: 0, PaymentMethod: "cash"})
	assert.EqualError(t, err, "invalid_amount")

	_, err = svc.RecordPayment(RecordPaymentInput{BookingID: bk.ID, Amount: 100, PaymentMethod: "  "})
	assert.EqualError(t, err, "missing_payment_method")

	_, err = svc.RecordPayment(RecordPaymentInput{BookingID: 9999, Amount: 100, PaymentMethod: "cash"})
	assert.EqualError(t, err, "booking_not_found")

	cancelled := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.April, 1), day(2026, time.April, 3), models.BookingStatusCancelled, 1000)
	_, err = svc.RecordPayment(RecordPaymentInput{BookingID: cancelled.ID, Amount: 100, PaymentMethod: "cash"})
	assert.EqualError(t, err, "booking_cancelled")
}

func TestVerify_ApproveAndReject(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)

	rt := seedRoomType(t, db, "Standard", 5, 500)
	guest := seedGuest(t, db, "A", "a@example.com")
	bk := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.March, 1), day(2026, time.March, 3), models.BookingStatusPending, 1000)

	approve := seedPayment(t, db, bk.ID, 1000, models.PaymentStatusPending)
	reject := seedPayment(t, db, bk.ID, 500, models.PaymentStatusPending)

	verified, err := svc.Verify(approve.ID, true, 3)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, verified.Status)
	require.NotNil(t, verified.RecordedBy)
	assert.Equal(t, uint(3), *verified.RecordedBy)
	assert.NotNil(t, verified.VerifiedAt)

	failed, err := svc.Verify(reject.ID, false, 3)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, failed.Status)

	// Settlement ran off the approval: the booking is fully paid and the
	// failed payment contributed nothing.
	var got models.Booking
	require.NoError(t, db.First(&got, bk.ID).Error)
	assert.Equal(t, models.PaymentStatePaid, got.PaymentStatus)
	assert.Equal(t, models.BookingStatusConfirmed, got.Status)
}

func TestVerify_VerifiedRowsAreImmutable(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)

	rt := seedRoomType(t, db, "Standard", 5, 500)
	guest := seedGuest(t, db, "A", "a@example.com")
	bk := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.March, 1), day(2026, time.March, 3), models.BookingStatusPending, 1000)

	p := seedPayment(t, db, bk.ID, 1000, models.PaymentStatusPending)
	_, err := svc.Verify(p.ID, true, 3)
	require.NoError(t, err)

	_, err = svc.Verify(p.ID, true, 3)
	assert.EqualError(t, err, "payment_already_verified")
	_, err = svc.Verify(p.ID, false, 3)
	assert.EqualError(t, err, "payment_already_verified")

	_, err = svc.Verify(9999, true, 3)
	assert.EqualError(t, err, "payment_not_found")
}

func TestAttachProof_PendingOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)

	rt := seedRoomType(t, db, "Standard", 5, 500)
	guest := seedGuest(t, db, "A", "a@example.com")
	bk := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.March, 1), day(2026, time.March, 3), models.BookingStatusPending, 1000)

	pending := seedPayment(t, db, bk.ID, 1000, models.PaymentStatusPending)
	done := seedPayment(t, db, bk.ID, 500, models.PaymentStatusCompleted)

	require.NoError(t, svc.AttachProof(pending.ID, "uploads/payments/payment_1.jpg"))
	var got models.Payment
	require.NoError(t, db.First(&got, pending.ID).Error)
	assert.Equal(t, "uploads/payments/payment_1.jpg", got.ProofImagePath)

	assert.EqualError(t, svc.AttachProof(done.ID, "x.jpg"), "payment_already_verified")
	assert.EqualError(t, svc.AttachProof(9999, "x.jpg"), "payment_not_found")
}

func TestListPending_OrdersOldestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)

	rt := seedRoomType(t, db, "Standard", 5, 500)
	guest := seedGuest(t, db, "A", "a@example.com")
	bk := seedBooking(t, db, guest.ID, rt.ID, day(2026, time.March, 1), day(2026, time.March, 3), models.BookingStatusPending, 1000)

	seedPayment(t, db, bk.ID, 100, models.PaymentStatusPending)
	seedPayment(t, db, bk.ID, 200, models.PaymentStatusCompleted)
	seedPayment(t, db, bk.ID, 300, models.PaymentStatusPending)

	list, err := svc.ListPending()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 100.0, list[0].Amount)
	assert.Equal(t, 300.0, list[1].Amount)
}
