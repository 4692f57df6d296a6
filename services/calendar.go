package services

import (
	"errors"
	"sort"

	"github.com/clduval/resto-resa/models"
	"gorm.io/gorm"
)

// DefaultClosedMessage dipakai kalau tanggal exceptional tutup tanpa note.
const DefaultClosedMessage = "Restaurant exceptionally closed"

type ScheduleKind int

const (
	// ScheduleClosed: restoran tutup penuh pada tanggal itu.
	ScheduleClosed ScheduleKind = iota
	// ScheduleExceptional: slot exceptional menggantikan (bukan menambah)
	// slot mingguan untuk tanggal itu.
	ScheduleExceptional
	// ScheduleStandard: slot mingguan biasa berlaku.
	ScheduleStandard
)

// SlotView adalah satu slot buka hasil resolve, sudah dinormalisasi.
type SlotView struct {
	Time          string `json:"time"`
	Duration      int    `json:"duration"`
	IsExceptional bool   `json:"is_exceptional"`
}

// DaySchedule adalah keputusan kalender untuk satu tanggal, diputuskan satu
// kali per query: Closed(reason) | Exceptional(slots) | Standard(slots).
type DaySchedule struct {
	Kind   ScheduleKind
	Reason string
	Slots  []SlotView
}

func (d DaySchedule) IsClosed() bool { return d.Kind == ScheduleClosed }

// HasSlotAt -> cek apakah jam yang diminta persis sama dengan salah satu slot.
func (d DaySchedule) HasSlotAt(timeStr string) bool {
	t := NormalizeTime(timeStr)
	for _, s := range d.Slots {
		if s.Time == t {
			return true
		}
	}
	return false
}

type CalendarService struct {
	DB *gorm.DB
}

func NewCalendarService(db *gorm.DB) *CalendarService {
	return &CalendarService{DB: db}
}

// ResolveSlots menentukan jadwal buka untuk satu tanggal:
//  1. Tanggal exceptional dengan is_closed=true -> tutup, bawa note-nya.
//  2. Tanggal exceptional terbuka dengan >=1 slot -> slot exceptional
//     menggantikan slot mingguan seluruhnya.
//  3. Selain itu -> slot mingguan aktif untuk hari itu. Tanggal exceptional
//     terbuka tanpa slot diperlakukan seperti tidak ada override.
//
// Slot selalu diurutkan naik berdasarkan jam.
func (s *CalendarService) ResolveSlots(date string) (DaySchedule, error) {
	return resolveSlots(s.DB, date)
}

func resolveSlots(db *gorm.DB, date string) (DaySchedule, error) {
	var closure models.ExceptionalDate
	err := db.Where("date = ? AND is_closed = ?", date, true).First(&closure).Error
	if err == nil {
		reason := closure.Note
		if reason == "" {
			reason = DefaultClosedMessage
		}
		return DaySchedule{Kind: ScheduleClosed, Reason: reason}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return DaySchedule{}, err
	}

	var exceptional models.ExceptionalDate
	err = db.Preload("Slots").
		Where("date = ? AND is_closed = ?", date, false).
		First(&exceptional).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return DaySchedule{}, err
	}
	if err == nil && len(exceptional.Slots) > 0 {
		slots := make([]SlotView, 0, len(exceptional.Slots))
		for _, slot := range exceptional.Slots {
			slots = append(slots, SlotView{
				Time:          NormalizeTime(slot.Time),
				Duration:      slot.Duration,
				IsExceptional: true,
			})
		}
		sortSlots(slots)
		return DaySchedule{Kind: ScheduleExceptional, Slots: slots}, nil
	}

	dow, err := DayOfWeek(date)
	if err != nil {
		return DaySchedule{}, err
	}

	var weekly []models.OpeningSlot
	if err := db.Where("day_of_week = ? AND is_active = ?", dow, true).
		Order("time ASC").
		Find(&weekly).Error; err != nil {
		return DaySchedule{}, err
	}

	slots := make([]SlotView, 0, len(weekly))
	for _, slot := range weekly {
		slots = append(slots, SlotView{
			Time:     NormalizeTime(slot.Time),
			Duration: slot.Duration,
		})
	}
	sortSlots(slots)
	return DaySchedule{Kind: ScheduleStandard, Slots: slots}, nil
}

func sortSlots(slots []SlotView) {
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Time < slots[j].Time
	})
}
