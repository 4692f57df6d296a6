package models

import "time"

// ExceptionalDate meng-override kalender mingguan untuk satu tanggal:
// tutup penuh, atau set slot tersendiri yang menggantikan slot mingguan.
type ExceptionalDate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"type:varchar(10);unique;not null" json:"date"`
	IsClosed  bool      `gorm:"not null;default:false" json:"is_closed"`
	Note      string    `gorm:"type:varchar(255)" json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Slots []ExceptionalSlot `gorm:"foreignKey:ExceptionalDateID" json:"slots"`
}
