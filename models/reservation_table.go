package models

// ReservationTable adalah tabel penghubung reservasi <-> meja. Baris dibuat
// bersama reservasinya dan dihapus bersama reservasinya, tidak pernah berdiri
// sendiri.
type ReservationTable struct {
	ReservationID uint `gorm:"primaryKey" json:"reservation_id"`
	TableID       uint `gorm:"primaryKey" json:"table_id"`
}
