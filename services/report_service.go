// services/report_service.go
package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"resort-backend/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ReportService builds the analytics views for the admin console: occupancy
// per room type, revenue by day, and the billing Excel export.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

type OccupancyRow struct {
	RoomTypeID uint    `json:"room_type_id"`
	TypeName   string  `json:"type_name"`
	Capacity   int     `json:"capacity"`
	Booked     int     `json:"booked"`
	Rate       float64 `json:"rate"` // booked / capacity, 0 when capacity is 0
}

// Occupancy reports, per room type, how many active bookings overlap the
// given window against that type's capacity.
func (s *ReportService) Occupancy(from, to time.Time) ([]OccupancyRow, error) {
	if !to.After(from) {
		return nil, errors.New("invalid_date_range")
	}

	var roomTypes []models.RoomType
	if err := s.DB.Order("id").Find(&roomTypes).Error; err != nil {
		return nil, fmt.Errorf("failed to load room types: %w", err)
	}

	rows := make([]OccupancyRow, 0, len(roomTypes))
	for _, rt := range roomTypes {
		var booked int64
		err := s.DB.Model(&models.Booking{}).
			Where("room_type_id = ?", rt.ID).
			Where("status NOT IN ?", releasedStatuses).
			Where("check_in_date < ? AND check_out_date > ?", to, from).
			Count(&booked).Error
		if err != nil {
			return nil, fmt.Errorf("failed to count bookings for room type %d: %w", rt.ID, err)
		}

		row := OccupancyRow{
			RoomTypeID: rt.ID,
			TypeName:   rt.TypeName,
			Capacity:   rt.TotalRooms,
			Booked:     int(booked),
		}
		if rt.TotalRooms > 0 {
			row.Rate = float64(booked) / float64(rt.TotalRooms)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type RevenueRow struct {
	Day   string  `json:"day"`
	Total float64 `json:"total"`
}

// Revenue sums completed payments by verification day. Refunds net out.
func (s *ReportService) Revenue(from, to time.Time) ([]RevenueRow, error) {
	if !to.After(from) {
		return nil, errors.New("invalid_date_range")
	}

	var rows []RevenueRow
	err := s.DB.Model(&models.Payment{}).
		Select("DATE(verified_at) AS day, SUM(amount) AS total").
		Where("status = ?", models.PaymentStatusCompleted).
		Where("verified_at >= ? AND verified_at < ?", from, to).
		Group("DATE(verified_at)").
		Order("day").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	return rows, nil
}

// ExportBookingsExcel writes a bookings/billing sheet for the window and
// returns the saved file path.
func (s *ReportService) ExportBookingsExcel(from, to time.Time, dir string) (string, error) {
	if !to.After(from) {
		return "", errors.New("invalid_date_range")
	}

	type exportRow struct {
		ReferenceCode string
		GuestName     string
		GuestEmail    string
		TypeName      string
		CheckIn       time.Time
		CheckOut      time.Time
		Status        string
		PaymentStatus string
		TotalAmount   float64
		TotalPaid     float64
	}

	var results []exportRow
	err := s.DB.Raw(`
SELECT
    b.reference_code AS reference_code,
    g.full_name AS guest_name,
    g.email AS guest_email,
    rt.type_name AS type_name,
    b.check_in_date AS check_in,
    b.check_out_date AS check_out,
    b.status AS status,
    b.payment_status AS payment_status,
    b.total_amount AS total_amount,
    COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.booking_id = b.id AND p.status = 'completed' AND p.deleted_at IS NULL), 0) AS total_paid
FROM bookings b
JOIN guests g ON g.id = b.guest_id
JOIN room_types rt ON rt.id = b.room_type_id
WHERE b.check_in_date < ? AND b.check_out_date > ? AND b.deleted_at IS NULL
ORDER BY b.check_in_date, b.id
`, to, from).Scan(&results).Error
	if err != nil {
		return "", fmt.Errorf("failed to query bookings for export: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Bookings"
	f.NewSheet(sheet)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"Reference", "Guest", "Email", "RoomType", "CheckIn", "CheckOut",
		"Status", "PaymentStatus", "TotalAmount", "TotalPaid", "Balance",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, r := range results {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.ReferenceCode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.GuestName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.GuestEmail)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.TypeName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.CheckIn.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.CheckOut.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), r.Status)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), r.PaymentStatus)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), r.TotalAmount)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), r.TotalPaid)
		f.SetCellValue(sheet, fmt.Sprintf("K%d", row), r.TotalAmount-r.TotalPaid)
	}

	if dir == "" {
		dir = filepath.Join("uploads", "reports")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report dir: %w", err)
	}
	filePath := filepath.Join(dir, fmt.Sprintf("bookings_%s.xlsx", time.Now().UTC().Format("20060102_150405")))
	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("failed to save export: %w", err)
	}
	return filePath, nil
}
