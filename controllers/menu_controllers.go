package controllers

import (
	"net/http"

	"github.com/clduval/resto-resa/models"
	"github.com/clduval/resto-resa/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetMenu -> seluruh menu dikelompokkan per kategori (public).
func (mc *MenuController) GetMenu(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Order("category ASC, name ASC").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	categorized := make(map[string][]models.MenuItem)
	for _, item := range items {
		categorized[item.Category] = append(categorized[item.Category], item)
	}

	utils.RespondJSON(c, http.StatusOK, "Menu", categorized)
}
