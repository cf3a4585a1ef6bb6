package models

import "time"

// Promotion is a percent-off code applied at reservation time when the stay
// falls inside its validity window.
type Promotion struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Code        string  `gorm:"size:64;uniqueIndex" json:"code"`
	Description string  `gorm:"size:255" json:"description"`
	PercentOff  float64 `gorm:"column:percent_off" json:"percent_off"` // 0..100

	ValidFrom  time.Time `gorm:"column:valid_from" json:"valid_from"`
	ValidUntil time.Time `gorm:"column:valid_until" json:"valid_until"`
	Active     bool      `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CurrentAt reports whether the promotion applies at the given time.
func (p Promotion) CurrentAt(t time.Time) bool {
	return p.Active && !t.Before(p.ValidFrom) && t.Before(p.ValidUntil)
}
