package services

import (
	"fmt"
	"testing"

	"github.com/clduval/resto-resa/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB membuka SQLite in-memory terpisah per test + migrasi model.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.OpeningSlot{},
		&models.ExceptionalDate{},
		&models.ExceptionalSlot{},
		&models.Reservation{},
		&models.ReservationTable{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seatsOf(tables []models.Table) []int {
	seats := make([]int, 0, len(tables))
	for _, t := range tables {
		seats = append(seats, t.Seats)
	}
	return seats
}
