package controllers

import (
	"net/http"

	"github.com/clduval/resto-resa/models"
	"github.com/clduval/resto-resa/services"
	"github.com/clduval/resto-resa/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// GetAllTables -> menampilkan seluruh meja.
func (tc *TableController) GetAllTables(c *gin.Context) {
	var tables []models.Table
	if err := tc.DB.Order("id ASC").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// CreateTable -> menambahkan meja baru (admin). Kursi harus 2, 4 atau 6.
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		Seats    int    `json:"seats" binding:"required"`
		Name     string `json:"name"`
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.SeatsAllowed(req.Seats) {
		respondServiceError(c, services.ErrInvalidSeats)
		return
	}

	table := models.Table{Seats: req.Seats, Name: req.Name, Location: req.Location}
	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New table created: id=%d seats=%d", table.ID, table.Seats)
	utils.RespondJSON(c, http.StatusCreated, "Table created", table)
}

// UpdateTable -> ubah meja (admin).
func (tc *TableController) UpdateTable(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Seats    int    `json:"seats" binding:"required"`
		Name     string `json:"name"`
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.SeatsAllowed(req.Seats) {
		respondServiceError(c, services.ErrInvalidSeats)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, id).Error; err != nil {
		respondServiceError(c, services.ErrNotFound)
		return
	}

	table.Seats = req.Seats
	if req.Name != "" {
		table.Name = req.Name
	}
	if req.Location != "" {
		table.Location = req.Location
	}
	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable -> hapus meja (admin). Meja yang pernah dipakai reservasi
// tidak boleh dihapus.
func (tc *TableController) DeleteTable(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, id).Error; err != nil {
		respondServiceError(c, services.ErrNotFound)
		return
	}

	var linkCount int64
	if err := tc.DB.Model(&models.ReservationTable{}).
		Where("table_id = ?", table.ID).
		Count(&linkCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if linkCount > 0 {
		respondServiceError(c, services.ErrTableInUse)
		return
	}

	if err := tc.DB.Delete(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deleted", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": table.ID})
}
