package services

import (
	"testing"
	"time"

	"resort-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.RoomType{},
		&models.Guest{},
		&models.Promotion{},
		&models.Booking{},
		&models.Payment{},
		&models.Review{},
		&models.InventoryItem{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedRoomType(t *testing.T, db *gorm.DB, name string, totalRooms int, basePrice float64) models.RoomType {
	t.Helper()
	rt := models.RoomType{TypeName: name, TotalRooms: totalRooms, BasePrice: basePrice, MaxGuests: 2}
	if err := db.Create(&rt).Error; err != nil {
		t.Fatalf("failed to seed room type: %v", err)
	}
	return rt
}

func seedGuest(t *testing.T, db *gorm.DB, name, email string) models.Guest {
	t.Helper()
	g := models.Guest{FullName: name, Email: email}
	if err := db.Create(&g).Error; err != nil {
		t.Fatalf("failed to seed guest: %v", err)
	}
	return g
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedBooking(t *testing.T, db *gorm.DB, guestID, roomTypeID uint, checkIn, checkOut time.Time, status models.BookingStatus, total float64) models.Booking {
	t.Helper()
	bk := models.Booking{
		ReferenceCode: "RB-TEST-" + time.Now().Format("150405.000000000") + checkIn.Format("0102"),
		RoomTypeID:    roomTypeID,
		GuestID:       guestID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		Status:        status,
		PaymentStatus: models.PaymentStatePending,
		Source:        models.BookingSourceOnline,
		TotalAmount:   total,
		Adults:        2,
	}
	if err := db.Create(&bk).Error; err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}
	return bk
}

func seedPayment(t *testing.T, db *gorm.DB, bookingID uint, amount float64, status models.PaymentStatus) models.Payment {
	t.Helper()
	p := models.Payment{
		BookingID:     bookingID,
		Amount:        amount,
		Status:        status,
		PaymentMethod: "bank_transfer",
	}
	if status != models.PaymentStatusPending {
		now := time.Now().UTC()
		p.VerifiedAt = &now
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("failed to seed payment: %v", err)
	}
	return p
}
