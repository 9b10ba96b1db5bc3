package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/utppedidos/backend/controllers"
	"github.com/utppedidos/backend/models"
	"github.com/utppedidos/backend/utils"
)

func setupCatalogRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	r := gin.New()
	r.GET("/api/cafeterias", controllers.NewCafeteriaController(db).GetAllCafeterias)
	r.GET("/api/schedules", controllers.NewScheduleController(db).GetAllSchedules)
	r.GET("/api/products/:cafeteria_id", controllers.NewProductController(db).GetProductsByCafeteria)
	r.GET("/api/stats", controllers.NewStatsController(db, nil).GetStats)
	return r
}

func TestGetCafeteriasActiveOnly(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Cafeteria{Name: "Cerrada", Active: false})
	r := setupCatalogRouter(db)

	w := doJSON(r, http.MethodGet, "/api/cafeterias", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	cafeterias := resp["cafeterias"].([]interface{})
	assert.Len(t, cafeterias, 1)
	assert.Equal(t, "Cafetería Central", cafeterias[0].(map[string]interface{})["name"])
}

func TestGetSchedulesActiveOnly(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Schedule{Name: "madrugada", Active: false})
	r := setupCatalogRouter(db)

	w := doJSON(r, http.MethodGet, "/api/schedules", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	schedules := resp["schedules"].([]interface{})
	assert.Len(t, schedules, 1)
	assert.Equal(t, "desayuno", schedules[0].(map[string]interface{})["name"])
}

func TestGetProductsOrderedByPrice(t *testing.T) {
	db := setupTestDB(t)
	// An inactive product and one on another schedule must be filtered out.
	db.Create(&models.Schedule{ID: 2, Name: "almuerzo", Active: true})
	db.Create(&models.Product{CafeteriaID: 1, CategoryID: 1, ScheduleID: 1, Name: "Agotado", Price: 0.50, Active: false})
	db.Create(&models.Product{CafeteriaID: 1, CategoryID: 1, ScheduleID: 2, Name: "Almuerzo Ejecutivo", Price: 4.75, Active: true})
	r := setupCatalogRouter(db)

	w := doJSON(r, http.MethodGet, "/api/products/1?schedule_id=1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	products := resp["products"].([]interface{})
	assert.Len(t, products, 2)

	first := products[0].(map[string]interface{})
	second := products[1].(map[string]interface{})
	assert.Equal(t, "Café", first["name"])
	assert.Equal(t, "Sancocho", second["name"])
	assert.Equal(t, "Bebidas", first["category_name"])
	assert.Equal(t, "desayuno", first["schedule_name"])

	// Omitting schedule_id falls back to the primary slot.
	w = doJSON(r, http.MethodGet, "/api/products/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["products"].([]interface{}), 2)
}

func TestGetStats(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.User{Name: "Ana", Surname: "P", Email: "a@utp.ac.pa", Password: "x", Active: true})
	db.Create(&models.User{Name: "Out", Surname: "Q", Email: "b@utp.ac.pa", Password: "x", Active: false})
	db.Create(&models.Order{UserID: 1, CafeteriaID: 1, ScheduleID: 1, Total: 5, Status: models.StatusPending, PickupCode: "c1"})
	db.Create(&models.Order{UserID: 1, CafeteriaID: 1, ScheduleID: 1, Total: 3, Status: models.StatusCompleted, PickupCode: "c2"})
	r := setupCatalogRouter(db)

	w := doJSON(r, http.MethodGet, "/api/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	stats := resp["stats"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["total_users"])
	assert.Equal(t, float64(2), stats["total_orders"])
	assert.Equal(t, float64(2), stats["total_products"])
	assert.Equal(t, "Cafetería Central", stats["most_popular_cafeteria"])
}
