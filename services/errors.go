package services

import (
	"errors"
	"fmt"

	"github.com/clduval/resto-resa/models"
)

// Error sentinel untuk seluruh engine reservasi. Controller menerjemahkan
// nilai-nilai ini ke kode HTTP lewat errors.Is.
var (
	ErrMissingDateTime      = errors.New("date and time are required")
	ErrRestaurantClosed     = errors.New("restaurant is closed on this date")
	ErrInvalidSlotTime      = errors.New("not a valid time for that date")
	ErrNoTablesAvailable    = errors.New("no tables available")
	ErrInsufficientCapacity = errors.New("no table combination can seat this party")
	ErrNotFound             = errors.New("not found")
	ErrNotModifiable        = errors.New("reservation is not modifiable")
	ErrInvalidDayOfWeek     = errors.New("day of week must be between 0 and 6")
	ErrInvalidSeats         = errors.New("seats must be 2, 4 or 6")
	ErrTableInUse           = errors.New("table is used by existing reservations")
)

// ClosedError membawa alasan tutupnya restoran (note dari tanggal
// exceptional, atau pesan default).
type ClosedError struct {
	Reason string
}

func (e *ClosedError) Error() string {
	return fmt.Sprintf("restaurant closed: %s", e.Reason)
}

func (e *ClosedError) Is(target error) bool { return target == ErrRestaurantClosed }

// CapacityError dikembalikan saat tidak ada kombinasi meja yang cukup;
// daftar meja yang masih kosong ikut dibawa untuk diagnostik pemanggil.
type CapacityError struct {
	Available []models.Table
}

func (e *CapacityError) Error() string { return ErrInsufficientCapacity.Error() }

func (e *CapacityError) Is(target error) bool { return target == ErrInsufficientCapacity }
