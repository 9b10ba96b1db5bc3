package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/utppedidos/backend/models"
	"github.com/utppedidos/backend/utils"
)

type CafeteriaController struct {
	DB *gorm.DB
}

func NewCafeteriaController(db *gorm.DB) *CafeteriaController {
	return &CafeteriaController{DB: db}
}

// GetAllCafeterias lists the cafeterias currently taking orders.
func (cc *CafeteriaController) GetAllCafeterias(c *gin.Context) {
	var cafeterias []models.Cafeteria
	if err := cc.DB.Where("active = ?", true).Find(&cafeterias).Error; err != nil {
		utils.ErrorLogger.Printf("cafeterias: query failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("database error"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "list of cafeterias", gin.H{
		"cafeterias": cafeterias,
	})
}
