package controllers

import (
	"errors"
	"net/http"

	"github.com/clduval/resto-resa/services"
	"github.com/clduval/resto-resa/utils"
	"github.com/gin-gonic/gin"
)

// respondServiceError memetakan error sentinel dari services ke kode HTTP.
// CapacityError membawa daftar meja yang masih kosong ke dalam payload.
func respondServiceError(c *gin.Context, err error) {
	var capErr *services.CapacityError
	if errors.As(err, &capErr) {
		utils.RespondErrorData(c, http.StatusConflict, err, gin.H{
			"available_tables": capErr.Available,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrMissingDateTime),
		errors.Is(err, services.ErrInvalidDayOfWeek),
		errors.Is(err, services.ErrInvalidSeats),
		errors.Is(err, services.ErrTableInUse):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrRestaurantClosed),
		errors.Is(err, services.ErrInvalidSlotTime),
		errors.Is(err, services.ErrNoTablesAvailable),
		errors.Is(err, services.ErrInsufficientCapacity):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrNotModifiable):
		utils.RespondError(c, http.StatusNotFound, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
