package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/clduval/resto-resa/models"
	"github.com/clduval/resto-resa/services"
	"github.com/clduval/resto-resa/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AvailabilityController struct {
	DB       *gorm.DB
	Calendar *services.CalendarService
	Conflict *services.ConflictService
	Strategy services.CombinationStrategy
}

func NewAvailabilityController(db *gorm.DB) *AvailabilityController {
	return &AvailabilityController{
		DB:       db,
		Calendar: services.NewCalendarService(db),
		Conflict: services.NewConflictService(db),
		Strategy: services.ExhaustiveCombination{},
	}
}

type annotatedSlot struct {
	services.SlotView
	Available bool `json:"available"`
}

// GetAvailability -> slot buka untuk satu tanggal (?date=YYYY-MM-DD), tiap
// slot diberi flag available berdasarkan reservasi yang jamnya persis sama.
func (ac *AvailabilityController) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("date is required"))
		return
	}

	schedule, err := ac.Calendar.ResolveSlots(date)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if schedule.IsClosed() {
		utils.RespondJSON(c, http.StatusOK, schedule.Reason, gin.H{
			"date":            date,
			"is_closed":       true,
			"available_slots": []annotatedSlot{},
		})
		return
	}

	// Ambil jam reservasi non-cancelled pada tanggal itu untuk flag available.
	var existing []models.Reservation
	if err := ac.DB.Where("date = ? AND status <> ?", date, models.ReservationCancelled).
		Find(&existing).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	booked := make(map[string]bool, len(existing))
	for _, r := range existing {
		booked[r.Time] = true
	}

	slots := make([]annotatedSlot, 0, len(schedule.Slots))
	for _, s := range schedule.Slots {
		slots = append(slots, annotatedSlot{SlotView: s, Available: !booked[s.Time]})
	}

	utils.RespondJSON(c, http.StatusOK, "Availability for "+date, gin.H{
		"date":            date,
		"is_closed":       false,
		"available_slots": slots,
	})
}

// GetAvailableDates -> 30 hari ke depan beserta jumlah slot per tanggal.
func (ac *AvailabilityController) GetAvailableDates(c *gin.Context) {
	type dayInfo struct {
		Date      string `json:"date"`
		IsClosed  bool   `json:"is_closed"`
		SlotCount int    `json:"slot_count"`
	}

	today := time.Now()
	days := make([]dayInfo, 0, 30)
	for i := 0; i < 30; i++ {
		date := today.AddDate(0, 0, i).Format("2006-01-02")
		schedule, err := ac.Calendar.ResolveSlots(date)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		days = append(days, dayInfo{
			Date:      date,
			IsClosed:  schedule.IsClosed(),
			SlotCount: len(schedule.Slots),
		})
	}

	utils.RespondJSON(c, http.StatusOK, "Next 30 days", days)
}

// GetAvailableTables -> meja yang kosong pada date+time; kalau
// number_of_people ikut dikirim, sekalian dicoba kombinasi mejanya.
func (ac *AvailabilityController) GetAvailableTables(c *gin.Context) {
	date := c.Query("date")
	timeStr := c.Query("time")
	if date == "" || timeStr == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("date and time are required"))
		return
	}

	tables, err := ac.Conflict.AvailableTables(date, timeStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result := gin.H{
		"available": false,
		"tables":    tables,
	}

	var party struct {
		NumberOfPeople int `form:"number_of_people"`
	}
	if err := c.ShouldBindQuery(&party); err == nil && party.NumberOfPeople > 0 {
		combo := ac.Strategy.Assign(tables, party.NumberOfPeople)
		result["available"] = combo != nil
		result["table_assignment"] = combo
	}

	utils.RespondJSON(c, http.StatusOK, "Available tables", result)
}

// GetAllOpeningSlots -> seluruh slot mingguan (admin).
func (ac *AvailabilityController) GetAllOpeningSlots(c *gin.Context) {
	var slots []models.OpeningSlot
	if err := ac.DB.Order("day_of_week ASC, time ASC").Find(&slots).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of opening slots", slots)
}

// UpsertOpeningSlot -> buat atau perbarui slot mingguan dengan kunci
// (day_of_week, time).
func (ac *AvailabilityController) UpsertOpeningSlot(c *gin.Context) {
	var req struct {
		DayOfWeek *int   `json:"day_of_week" binding:"required"`
		Time      string `json:"time" binding:"required"`
		Duration  int    `json:"duration"`
		IsActive  *bool  `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
		respondServiceError(c, services.ErrInvalidDayOfWeek)
		return
	}

	duration := req.Duration
	if duration <= 0 {
		duration = 90
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	timeStr := services.NormalizeTime(req.Time)

	var slot models.OpeningSlot
	err := ac.DB.Where("day_of_week = ? AND time = ?", *req.DayOfWeek, timeStr).First(&slot).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		slot = models.OpeningSlot{
			DayOfWeek: *req.DayOfWeek,
			Time:      timeStr,
			Duration:  duration,
			IsActive:  isActive,
		}
		if err := ac.DB.Create(&slot).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.RespondJSON(c, http.StatusCreated, "Opening slot created", slot)
	case err != nil:
		utils.RespondError(c, http.StatusInternalServerError, err)
	default:
		slot.Duration = duration
		slot.IsActive = isActive
		if err := ac.DB.Save(&slot).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Opening slot updated", slot)
	}
}

// GetAllExceptionalDates -> seluruh tanggal exceptional beserta slotnya.
func (ac *AvailabilityController) GetAllExceptionalDates(c *gin.Context) {
	var dates []models.ExceptionalDate
	if err := ac.DB.Preload("Slots").Order("date ASC").Find(&dates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of exceptional dates", dates)
}

// UpsertExceptionalDate -> buat/perbarui tanggal exceptional. Kalau slots
// dikirim dan tanggalnya tidak tutup, slot lama diganti seluruhnya.
func (ac *AvailabilityController) UpsertExceptionalDate(c *gin.Context) {
	var req struct {
		Date     string `json:"date" binding:"required"`
		IsClosed bool   `json:"is_closed"`
		Note     string `json:"note"`
		Slots    []struct {
			Time     string `json:"time" binding:"required"`
			Duration int    `json:"duration"`
		} `json:"slots"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var exDate models.ExceptionalDate
	created := false
	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("date = ?", req.Date).First(&exDate).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			exDate = models.ExceptionalDate{Date: req.Date, IsClosed: req.IsClosed, Note: req.Note}
			if err := tx.Create(&exDate).Error; err != nil {
				return err
			}
			created = true
		case err != nil:
			return err
		default:
			exDate.IsClosed = req.IsClosed
			exDate.Note = req.Note
			if err := tx.Omit("Slots").Save(&exDate).Error; err != nil {
				return err
			}
		}

		if len(req.Slots) > 0 && !req.IsClosed {
			// Ganti seluruh slot lama dengan yang baru.
			if err := tx.Where("exceptional_date_id = ?", exDate.ID).
				Delete(&models.ExceptionalSlot{}).Error; err != nil {
				return err
			}
			for _, s := range req.Slots {
				duration := s.Duration
				if duration <= 0 {
					duration = 90
				}
				slot := models.ExceptionalSlot{
					ExceptionalDateID: exDate.ID,
					Date:              req.Date,
					Time:              services.NormalizeTime(s.Time),
					Duration:          duration,
				}
				if err := tx.Create(&slot).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := ac.DB.Preload("Slots").First(&exDate, exDate.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if created {
		utils.RespondJSON(c, http.StatusCreated, "Exceptional date created", exDate)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Exceptional date updated", exDate)
}
