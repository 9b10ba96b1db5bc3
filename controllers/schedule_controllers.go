package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/utppedidos/backend/models"
	"github.com/utppedidos/backend/utils"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

// GetAllSchedules lists the active serving windows.
func (sc *ScheduleController) GetAllSchedules(c *gin.Context) {
	var schedules []models.Schedule
	if err := sc.DB.Where("active = ?", true).Find(&schedules).Error; err != nil {
		utils.ErrorLogger.Printf("schedules: query failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("database error"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "list of schedules", gin.H{
		"schedules": schedules,
	})
}
