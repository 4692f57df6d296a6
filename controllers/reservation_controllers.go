package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/clduval/resto-resa/middlewares"
	"github.com/clduval/resto-resa/services"
	"github.com/clduval/resto-resa/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReservationController struct {
	DB      *gorm.DB
	Service *services.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{
		DB:      db,
		Service: services.NewReservationService(db),
	}
}

// CreateReservation -> buat reservasi dengan penentuan meja otomatis.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	userID, ok := middlewares.CallerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var req struct {
		NumberOfPeople int    `json:"number_of_people" binding:"required,gt=0"`
		Date           string `json:"date" binding:"required"`
		Time           string `json:"time" binding:"required"`
		Note           string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Service.Create(userID, services.CreateReservationInput{
		NumberOfPeople: req.NumberOfPeople,
		Date:           req.Date,
		Time:           req.Time,
		Note:           req.Note,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d created for user %d (%s %s, %d people, %d tables)",
		reservation.ID, userID, reservation.Date, reservation.Time,
		reservation.NumberOfPeople, len(reservation.Tables))
	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// GetAllReservations -> seluruh reservasi (admin).
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := rc.Service.All()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// GetMyReservations -> reservasi milik pemanggil.
func (rc *ReservationController) GetMyReservations(c *gin.Context) {
	userID, ok := middlewares.CallerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	reservations, err := rc.Service.ByUser(userID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "My reservations", reservations)
}

// UpdateReservation -> ubah reservasi selama masih pending. Pemilik atau
// admin saja.
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !rc.callerMayTouch(c, id) {
		return
	}

	var patch services.UpdateReservationInput
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Service.Update(id, patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

// DeleteReservation -> batalkan reservasi (hapus baris + link meja).
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !rc.callerMayTouch(c, id) {
		return
	}

	if err := rc.Service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.InfoLogger.Printf("Reservation %d cancelled", id)
	utils.RespondJSON(c, http.StatusOK, "Reservation cancelled", gin.H{"id": id})
}

// ValidateReservation -> admin mengkonfirmasi reservasi. Transisi tanpa
// guard: reservasi yang ada selalu menjadi confirmed.
func (rc *ReservationController) ValidateReservation(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Service.Confirm(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.InfoLogger.Printf("Reservation %d confirmed", id)
	utils.RespondJSON(c, http.StatusOK, "Reservation confirmed", reservation)
}

// callerMayTouch -> pemilik reservasi atau admin. Menulis respons sendiri
// kalau akses ditolak.
func (rc *ReservationController) callerMayTouch(c *gin.Context, id uint) bool {
	if middlewares.IsAdmin(c) {
		return true
	}

	userID, ok := middlewares.CallerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return false
	}

	reservation, err := rc.Service.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return false
	}
	if reservation.UserID != userID {
		utils.RespondError(c, http.StatusForbidden, errors.New("you do not own this reservation"))
		return false
	}
	return true
}

func parseID(c *gin.Context, param string) (uint, error) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
