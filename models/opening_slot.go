package models

import "time"

// OpeningSlot adalah jam buka mingguan yang berulang.
// DayOfWeek: 0 = Minggu .. 6 = Sabtu.
type OpeningSlot struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DayOfWeek int       `gorm:"not null;uniqueIndex:idx_day_time" json:"day_of_week"`
	Time      string    `gorm:"type:varchar(8);not null;uniqueIndex:idx_day_time" json:"time"`
	Duration  int       `gorm:"not null;default:90" json:"duration"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
