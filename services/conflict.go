package services

import (
	"github.com/clduval/resto-resa/models"
	"gorm.io/gorm"
)

// ConflictWindowMinutes adalah jendela simetris di sekitar jam yang diminta:
// reservasi non-cancelled pada tanggal yang sama di dalam +/- 2 jam
// (inklusif) dianggap masih menempati mejanya. Konstanta kebijakan turnover,
// bukan turunan dari durasi slot.
const ConflictWindowMinutes = 120

type ConflictService struct {
	DB *gorm.DB
}

func NewConflictService(db *gorm.DB) *ConflictService {
	return &ConflictService{DB: db}
}

// TablesOccupiedAt mengembalikan ID meja yang terpakai oleh reservasi yang
// bentrok dengan tanggal+jam kandidat.
func (s *ConflictService) TablesOccupiedAt(date, timeStr string) (map[uint]bool, error) {
	return occupiedTableIDs(s.DB, date, timeStr)
}

// AvailableTables = semua meja dikurangi meja yang terpakai pada jam itu.
func (s *ConflictService) AvailableTables(date, timeStr string) ([]models.Table, error) {
	occupied, err := occupiedTableIDs(s.DB, date, timeStr)
	if err != nil {
		return nil, err
	}

	var all []models.Table
	if err := s.DB.Order("id ASC").Find(&all).Error; err != nil {
		return nil, err
	}

	available := make([]models.Table, 0, len(all))
	for _, t := range all {
		if !occupied[t.ID] {
			available = append(available, t)
		}
	}
	return available, nil
}

// occupiedTableIDs dipisah sebagai fungsi package supaya bisa dipanggil di
// dalam transaksi pembuatan reservasi (dengan tx, bukan koneksi utama).
func occupiedTableIDs(db *gorm.DB, date, timeStr string) (map[uint]bool, error) {
	lower, upper, err := conflictWindow(timeStr)
	if err != nil {
		return nil, err
	}

	var overlapping []models.Reservation
	if err := db.Preload("Tables").
		Where("date = ? AND status <> ? AND time BETWEEN ? AND ?",
			date, models.ReservationCancelled, lower, upper).
		Find(&overlapping).Error; err != nil {
		return nil, err
	}

	occupied := make(map[uint]bool)
	for _, r := range overlapping {
		for _, t := range r.Tables {
			occupied[t.ID] = true
		}
	}
	return occupied, nil
}

// conflictWindow menghitung batas bawah/atas jendela bentrok. Jendela
// di-clamp ke batas hari (00:00:00 .. 23:59:59), tidak pernah menyeberang
// ke tanggal lain.
func conflictWindow(timeStr string) (string, string, error) {
	minutes, err := timeToMinutes(NormalizeTime(timeStr))
	if err != nil {
		return "", "", err
	}

	lower := "00:00:00"
	if m := minutes - ConflictWindowMinutes; m > 0 {
		lower = minutesToTime(m)
	}

	upper := "23:59:59"
	if m := minutes + ConflictWindowMinutes; m <= 23*60+59 {
		upper = minutesToTime(m)
	}
	return lower, upper, nil
}
