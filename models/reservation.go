package models

import "time"

const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation menyimpan tanggal sebagai string YYYY-MM-DD dan waktu sebagai
// HH:MM:SS supaya urutan leksikal sama dengan urutan kronologis.
type Reservation struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	User           User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	NumberOfPeople int       `gorm:"not null" json:"number_of_people"`
	Date           string    `gorm:"type:varchar(10);not null;index" json:"date"`
	Time           string    `gorm:"type:varchar(8);not null" json:"time"`
	Note           string    `gorm:"type:text" json:"note,omitempty"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`

	Tables []Table `gorm:"many2many:reservation_tables;" json:"tables"`
}
