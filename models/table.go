package models

import "time"

// AllowedSeats adalah kapasitas meja yang diizinkan oleh restoran.
var AllowedSeats = []int{2, 4, 6}

type Table struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Seats     int       `gorm:"not null" json:"seats"`
	Name      string    `gorm:"type:varchar(50)" json:"name"`
	Location  string    `gorm:"type:varchar(100)" json:"location,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// SeatsAllowed -> cek apakah jumlah kursi valid (2, 4 atau 6)
func SeatsAllowed(seats int) bool {
	for _, s := range AllowedSeats {
		if seats == s {
			return true
		}
	}
	return false
}
