package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/utppedidos/backend/database"
	"github.com/utppedidos/backend/models"
	"github.com/utppedidos/backend/router"
	"github.com/utppedidos/backend/utils"
)

// End-to-end walk through the API: register, login, place an order with
// the issued token, read it back, move it through a status change.
func TestOrderFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Cafeteria{},
		&models.Schedule{},
		&models.ProductCategory{},
		&models.Product{},
		&models.Order{},
		&models.OrderDetail{},
	))
	assert.NoError(t, database.Seed(db))
	db.Create(&models.Product{CafeteriaID: 1, CategoryID: 2, ScheduleID: 1, Name: "Empanada", Price: 1.25, Active: true})

	r := router.SetupRouter(db, nil)

	do := func(method, path, token string, payload interface{}) *httptest.ResponseRecorder {
		var body *bytes.Buffer
		if payload != nil {
			raw, _ := json.Marshal(payload)
			body = bytes.NewBuffer(raw)
		} else {
			body = bytes.NewBuffer(nil)
		}
		req := httptest.NewRequest(method, path, body)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := do(http.MethodPost, "/api/register", "", map[string]interface{}{
		"email":    "flow@utp.ac.pa",
		"password": "secreto1",
		"name":     "Flor",
		"surname":  "Díaz",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(http.MethodPost, "/api/login", "", map[string]string{
		"email":    "flow@utp.ac.pa",
		"password": "secreto1",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var login map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	token := login["token"].(string)
	assert.NotEmpty(t, token)

	// Ordering without a token is rejected before any validation runs.
	w = do(http.MethodPost, "/api/order", "", map[string]interface{}{
		"cafeteria_id": 1,
		"items": []map[string]interface{}{
			{"producto_id": 1, "price": 1.25, "quantity": 2},
		},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(http.MethodPost, "/api/order", token, map[string]interface{}{
		"cafeteria_id": 1,
		"schedule_id":  1,
		"notas":        "para llevar",
		"items": []map[string]interface{}{
			{"producto_id": 1, "price": 1.25, "quantity": 2},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.InDelta(t, 2.50, created["total"].(float64), 1e-9)
	orderID := int(created["order_id"].(float64))

	w = do(http.MethodGet, "/api/orders", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var listed map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	orders := listed["orders"].([]interface{})
	assert.Len(t, orders, 1)
	first := orders[0].(map[string]interface{})
	assert.Equal(t, float64(orderID), first["id"])
	assert.Equal(t, "pending", first["status"])
	assert.Equal(t, "para llevar", first["notas"])
	assert.Len(t, first["detalles"].([]interface{}), 1)

	w = do(http.MethodPut, "/api/order/1/status", token, map[string]string{"status": "cancelled"})
	assert.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	assert.NoError(t, db.First(&order, orderID).Error)
	assert.Equal(t, models.StatusCancelled, order.Status)
}
