package services

import (
	"errors"
	"fmt"

	"github.com/clduval/resto-resa/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReservationService struct {
	DB       *gorm.DB
	Calendar *CalendarService
	Strategy CombinationStrategy
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{
		DB:       db,
		Calendar: NewCalendarService(db),
		Strategy: ExhaustiveCombination{},
	}
}

type CreateReservationInput struct {
	NumberOfPeople int
	Date           string
	Time           string
	Note           string
}

type UpdateReservationInput struct {
	NumberOfPeople *int    `json:"number_of_people"`
	Date           *string `json:"date"`
	Time           *string `json:"time"`
	Note           *string `json:"note"`
}

// Create menjalankan seluruh alur pemesanan: gerbang kalender, pencocokan
// slot persis, deteksi bentrok, pemilihan kombinasi meja, lalu menyimpan
// reservasi + link mejanya.
//
// Pengecekan bentrok dan penulisan dijalankan dalam SATU transaksi dengan
// locking read pada reservasi tanggal yang sama, supaya dua request paralel
// untuk jendela yang tumpang tindih tidak bisa sama-sama lolos lalu
// double-book meja yang sama.
func (s *ReservationService) Create(userID uint, in CreateReservationInput) (*models.Reservation, error) {
	if in.Date == "" || in.Time == "" {
		return nil, ErrMissingDateTime
	}
	timeStr := NormalizeTime(in.Time)

	schedule, err := s.Calendar.ResolveSlots(in.Date)
	if err != nil {
		return nil, err
	}
	if schedule.IsClosed() {
		return nil, &ClosedError{Reason: schedule.Reason}
	}
	// Hari boleh buka tapi jam yang diminta tetap harus persis sama dengan
	// salah satu slot yang dipublikasikan.
	if !schedule.HasSlotAt(timeStr) {
		return nil, ErrInvalidSlotTime
	}

	var reservation *models.Reservation
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// Locking read: penulis kedua untuk tanggal yang sama menunggu di
		// sini sampai transaksi pertama selesai. SQLite tidak mengenal
		// FOR UPDATE, tapi transaksinya memang satu penulis.
		locked := tx
		if tx.Dialector.Name() != "sqlite" {
			locked = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		occupied, err := occupiedTableIDs(locked, in.Date, timeStr)
		if err != nil {
			return err
		}

		var all []models.Table
		if err := tx.Order("id ASC").Find(&all).Error; err != nil {
			return err
		}

		available := make([]models.Table, 0, len(all))
		for _, t := range all {
			if !occupied[t.ID] {
				available = append(available, t)
			}
		}
		if len(available) == 0 {
			return ErrNoTablesAvailable
		}

		combo := s.Strategy.Assign(available, in.NumberOfPeople)
		if len(combo) == 0 {
			return &CapacityError{Available: available}
		}

		r := models.Reservation{
			UserID:         userID,
			NumberOfPeople: in.NumberOfPeople,
			Date:           in.Date,
			Time:           timeStr,
			Note:           in.Note,
			Status:         models.ReservationPending,
		}
		if err := tx.Omit("Tables").Create(&r).Error; err != nil {
			return err
		}
		for _, table := range combo {
			link := models.ReservationTable{ReservationID: r.ID, TableID: table.ID}
			if err := tx.Create(&link).Error; err != nil {
				return fmt.Errorf("link table %d: %w", table.ID, err)
			}
		}

		r.Tables = combo
		reservation = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

// Update hanya boleh selama status masih pending. Patch diterapkan apa
// adanya, tanpa mengulang pengecekan slot/bentrok.
func (s *ReservationService) Update(id uint, in UpdateReservationInput) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotModifiable
		}
		return nil, err
	}
	if reservation.Status != models.ReservationPending {
		return nil, ErrNotModifiable
	}

	if in.NumberOfPeople != nil {
		reservation.NumberOfPeople = *in.NumberOfPeople
	}
	if in.Date != nil {
		reservation.Date = *in.Date
	}
	if in.Time != nil {
		reservation.Time = NormalizeTime(*in.Time)
	}
	if in.Note != nil {
		reservation.Note = *in.Note
	}

	if err := s.DB.Omit("Tables").Save(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Delete menghapus reservasi beserta seluruh link mejanya dalam satu
// transaksi. Hapus ulang pada id yang sudah hilang -> ErrNotFound.
func (s *ReservationService) Delete(id uint) error {
	var reservation models.Reservation
	if err := s.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reservation_id = ?", reservation.ID).
			Delete(&models.ReservationTable{}).Error; err != nil {
			return err
		}
		return tx.Delete(&reservation).Error
	})
}

// Confirm menandai reservasi sebagai confirmed tanpa guard terhadap status
// saat ini (termasuk yang sudah cancelled); satu-satunya syarat adalah
// barisnya ada.
func (s *ReservationService) Confirm(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.Preload("Tables").First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reservation.Status = models.ReservationConfirmed
	if err := s.DB.Omit("Tables").Save(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// All -> seluruh reservasi beserta pemilik dan mejanya (admin).
func (s *ReservationService) All() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.Preload("User").Preload("Tables").
		Order("date ASC, time ASC").
		Find(&reservations).Error
	return reservations, err
}

// ByUser -> reservasi milik satu user.
func (s *ReservationService) ByUser(userID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.Preload("Tables").
		Where("user_id = ?", userID).
		Order("date ASC, time ASC").
		Find(&reservations).Error
	return reservations, err
}

// Get -> satu reservasi dengan mejanya.
func (s *ReservationService) Get(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.Preload("Tables").First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reservation, nil
}
