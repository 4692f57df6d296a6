package models

import "time"

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Firstname    string    `gorm:"type:varchar(100)" json:"firstname"`
	Lastname     string    `gorm:"type:varchar(100)" json:"lastname"`
	Phone        string    `gorm:"type:varchar(30)" json:"phone"`
	Role         string    `gorm:"type:varchar(20);not null;default:'client'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Reservations []Reservation `gorm:"foreignKey:UserID" json:"-"`
}
