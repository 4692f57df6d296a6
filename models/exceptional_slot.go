package models

import "time"

type ExceptionalSlot struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	ExceptionalDateID uint      `gorm:"not null;index" json:"exceptional_date_id"`
	Date              string    `gorm:"type:varchar(10);not null" json:"date"`
	Time              string    `gorm:"type:varchar(8);not null" json:"time"`
	Duration          int       `gorm:"not null;default:90" json:"duration"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
