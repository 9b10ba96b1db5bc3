package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/utppedidos/backend/cache"
	"github.com/utppedidos/backend/models"
	"github.com/utppedidos/backend/utils"
)

const statsCacheTTL = 30 * time.Second

type StatsController struct {
	DB    *gorm.DB
	Cache cache.Cache
}

func NewStatsController(db *gorm.DB, c cache.Cache) *StatsController {
	return &StatsController{DB: db, Cache: c}
}

type systemStats struct {
	TotalUsers           int64  `json:"total_users"`
	TotalOrders          int64  `json:"total_orders"`
	TotalProducts        int64  `json:"total_products"`
	MostPopularCafeteria string `json:"most_popular_cafeteria"`
}

// GetStats returns system-wide counters. The aggregate is cached for a
// short window when redis is configured; a cache failure falls through to
// the direct queries.
func (sc *StatsController) GetStats(c *gin.Context) {
	if sc.Cache != nil {
		key := sc.Cache.GenerateKey("stats", "global")
		if raw, err := sc.Cache.Get(c.Request.Context(), key); err == nil && raw != "" {
			var stats systemStats
			if err := json.Unmarshal([]byte(raw), &stats); err == nil {
				utils.RespondJSON(c, http.StatusOK, "system statistics", gin.H{"stats": stats})
				return
			}
		}
	}

	var stats systemStats

	if err := sc.DB.Model(&models.User{}).Where("active = ?", true).Count(&stats.TotalUsers).Error; err != nil {
		utils.ErrorLogger.Printf("stats: user count failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("database error"))
		return
	}
	if err := sc.DB.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		utils.ErrorLogger.Printf("stats: order count failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("database error"))
		return
	}
	if err := sc.DB.Model(&models.Product{}).Where("active = ?", true).Count(&stats.TotalProducts).Error; err != nil {
		utils.ErrorLogger.Printf("stats: product count failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("database error"))
		return
	}

	var popular struct {
		Name        string
		TotalOrders int64
	}
	err := sc.DB.Table("cafeterias").
		Select("cafeterias.name, COUNT(orders.id) AS total_orders").
		Joins("LEFT JOIN orders ON orders.cafeteria_id = cafeterias.id").
		Group("cafeterias.id, cafeterias.name").
		Order("total_orders DESC").
		Limit(1).
		Scan(&popular).Error
	if err != nil {
		utils.ErrorLogger.Printf("stats: popular cafeteria query failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("database error"))
		return
	}
	stats.MostPopularCafeteria = popular.Name

	if sc.Cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			key := sc.Cache.GenerateKey("stats", "global")
			if err := sc.Cache.Set(c.Request.Context(), key, raw, statsCacheTTL); err != nil {
				utils.ErrorLogger.Printf("stats: cache write failed: %v", err)
			}
		}
	}

	utils.RespondJSON(c, http.StatusOK, "system statistics", gin.H{"stats": stats})
}
