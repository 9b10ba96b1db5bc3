package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/utppedidos/backend/models"
	"github.com/utppedidos/backend/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

type orderItemRequest struct {
	ProductID uint    `json:"producto_id" binding:"required"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type orderRequest struct {
	CafeteriaID uint               `json:"cafeteria_id" binding:"required"`
	ScheduleID  uint               `json:"schedule_id"`
	Notes       string             `json:"notas"`
	Items       []orderItemRequest `json:"items" binding:"required"`
}

// CreateOrder inserts an order header and all of its detail rows as a
// single transaction. Either the whole order becomes durable or nothing
// does; a failed detail insert rolls the header back too.
//
// NOTE: the unit price is taken from the request body, not re-read from
// the catalog. Clients can therefore tamper with prices; a hardened
// variant would resolve the price by producto_id server-side.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user not authenticated"))
		return
	}

	var body orderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order data"))
		return
	}

	if len(body.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("order must contain at least one item"))
		return
	}
	for _, item := range body.Items {
		if item.Quantity <= 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("item quantity must be positive"))
			return
		}
		if item.Price < 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("item price must not be negative"))
			return
		}
	}

	if body.ScheduleID == 0 {
		body.ScheduleID = 1
	}

	var total float64
	for _, item := range body.Items {
		total += item.Price * float64(item.Quantity)
	}

	tx := oc.DB.Begin()
	if tx.Error != nil {
		utils.ErrorLogger.Printf("create order: begin failed: %v", tx.Error)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("database error"))
		return
	}

	order := models.Order{
		UserID:      userID,
		CafeteriaID: body.CafeteriaID,
		ScheduleID:  body.ScheduleID,
		Total:       total,
		Notes:       body.Notes,
		Status:      models.StatusPending,
		PickupCode:  uuid.NewString(),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.ErrorLogger.Printf("create order: header insert failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("database error"))
		return
	}

	for _, item := range body.Items {
		detail := models.OrderDetail{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Subtotal:  item.Price * float64(item.Quantity),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := tx.Create(&detail).Error; err != nil {
			tx.Rollback()
			utils.ErrorLogger.Printf("create order: detail insert failed: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, errors.New("database error"))
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.ErrorLogger.Printf("create order: commit failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("database error"))
		return
	}

	utils.InfoLogger.Printf("Order %d created by user %d (total %.2f, %d items)",
		order.ID, userID, total, len(body.Items))

	utils.RespondJSON(c, http.StatusCreated, "order created successfully", gin.H{
		"order_id":    order.ID,
		"total":       total,
		"pickup_code": order.PickupCode,
	})
}

type orderView struct {
	ID            uint         `json:"id"`
	CafeteriaID   uint         `json:"cafeteria_id"`
	ScheduleID    uint         `json:"schedule_id"`
	Total         float64      `json:"total"`
	Notes         string       `json:"notas"`
	Status        string       `json:"status"`
	PickupCode    string       `json:"pickup_code"`
	CreatedAt     time.Time    `json:"created_at"`
	CafeteriaName string       `json:"cafeteria_name"`
	ScheduleName  string       `json:"schedule_name"`
	Details       []detailView `json:"detalles" gorm:"-"`
}

type detailView struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"producto_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"precio_unitario"`
	Subtotal    float64 `json:"subtotal"`
}

// GetUserOrders lists every order of the authenticated user, newest first,
// each with its full detail rows.
func (oc *OrderController) GetUserOrders(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user not authenticated"))
		return
	}

	var orders []orderView
	err := oc.DB.Table("orders").
		Select("orders.id, orders.cafeteria_id, orders.schedule_id, orders.total, orders.notes, orders.status, orders.pickup_code, orders.created_at, cafeterias.name AS cafeteria_name, schedules.name AS schedule_name").
		Joins("JOIN cafeterias ON cafeterias.id = orders.cafeteria_id").
		Joins("JOIN schedules ON schedules.id = orders.schedule_id").
		Where("orders.user_id = ?", userID).
		Order("orders.created_at DESC").
		Scan(&orders).Error
	if err != nil {
		utils.ErrorLogger.Printf("list orders: query failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("database error"))
		return
	}

	for i := range orders {
		var details []detailView
		err := oc.DB.Table("order_details").
			Select("order_details.id, order_details.product_id, order_details.quantity, order_details.unit_price, order_details.subtotal, products.name AS product_name").
			Joins("JOIN products ON products.id = order_details.product_id").
			Where("order_details.order_id = ?", orders[i].ID).
			Scan(&details).Error
		if err != nil {
			utils.ErrorLogger.Printf("list orders: detail query failed for order %d: %v", orders[i].ID, err)
			utils.RespondError(c, http.StatusInternalServerError, errors.New("database error"))
			return
		}
		orders[i].Details = details
	}

	utils.RespondJSON(c, http.StatusOK, "list of orders", gin.H{
		"orders": orders,
	})
}

// UpdateOrderStatus sets the status of an order owned by the requester.
// The update matches both order id and owner, so a non-owner gets the same
// 404 as a nonexistent order and cannot probe which ids exist.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user not authenticated"))
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("status is required"))
		return
	}

	if !models.IsValidOrderStatus(req.Status) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid status %q", req.Status))
		return
	}

	result := oc.DB.Model(&models.Order{}).
		Where("id = ? AND user_id = ?", orderID, userID).
		Update("status", req.Status)
	if result.Error != nil {
		utils.ErrorLogger.Printf("update status: update failed: %v", result.Error)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("database error"))
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	utils.InfoLogger.Printf("Order %d status set to %s by user %d", orderID, req.Status, userID)

	utils.RespondJSON(c, http.StatusOK, "status updated", nil)
}
