package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/utppedidos/backend/utils"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

type productView struct {
	ID           uint    `json:"id"`
	CafeteriaID  uint    `json:"cafeteria_id"`
	CategoryID   uint    `json:"category_id"`
	ScheduleID   uint    `json:"schedule_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	CategoryName string  `json:"category_name"`
	ScheduleName string  `json:"schedule_name"`
}

// GetProductsByCafeteria lists the active products of one cafeteria for a
// serving window (breakfast by default), cheapest first.
func (pc *ProductController) GetProductsByCafeteria(c *gin.Context) {
	cafeteriaID, err := strconv.ParseUint(c.Param("cafeteria_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid cafeteria id"))
		return
	}

	scheduleID := uint64(1)
	if raw := c.Query("schedule_id"); raw != "" {
		scheduleID, err = strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid schedule id"))
			return
		}
	}

	var products []productView
	err = pc.DB.Table("products").
		Select("products.id, products.cafeteria_id, products.category_id, products.schedule_id, products.name, products.description, products.price, product_categories.name AS category_name, schedules.name AS schedule_name").
		Joins("JOIN product_categories ON product_categories.id = products.category_id").
		Joins("JOIN schedules ON schedules.id = products.schedule_id").
		Where("products.cafeteria_id = ? AND products.schedule_id = ? AND products.active = ?", cafeteriaID, scheduleID, true).
		Order("products.price ASC").
		Scan(&products).Error
	if err != nil {
		utils.ErrorLogger.Printf("products: query failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("database error"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "list of products", gin.H{
		"products": products,
	})
}
