package models

import "time"

// Order lifecycle states. The set is closed: any other value is rejected
// at the API boundary before touching the database.
const (
	StatusPending        = "pending"
	StatusAwaitingPickup = "awaiting_pickup"
	StatusPickedUp       = "picked_up"
	StatusCompleted      = "completed"
	StatusCancelled      = "cancelled"
	StatusExpired        = "expired"
)

var orderStatuses = map[string]bool{
	StatusPending:        true,
	StatusAwaitingPickup: true,
	StatusPickedUp:       true,
	StatusCompleted:      true,
	StatusCancelled:      true,
	StatusExpired:        true,
}

// IsValidOrderStatus reports whether s belongs to the recognized status set.
func IsValidOrderStatus(s string) bool {
	return orderStatuses[s]
}

type Order struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	UserID      uint          `gorm:"not null;index" json:"user_id"`
	User        User          `gorm:"foreignKey:UserID;references:ID" json:"-"`
	CafeteriaID uint          `gorm:"not null" json:"cafeteria_id"`
	Cafeteria   Cafeteria     `gorm:"foreignKey:CafeteriaID;references:ID" json:"-"`
	ScheduleID  uint          `gorm:"not null" json:"schedule_id"`
	Schedule    Schedule      `gorm:"foreignKey:ScheduleID;references:ID" json:"-"`
	Total       float64       `gorm:"type:decimal(10,2);not null;default:0.00" json:"total"`
	Notes       string        `gorm:"type:text" json:"notas"`
	Status      string        `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PickupCode  string        `gorm:"type:varchar(36);not null" json:"pickup_code"`
	CreatedAt   time.Time     `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"not null" json:"updated_at"`
	Details     []OrderDetail `gorm:"foreignKey:OrderID" json:"detalles,omitempty"`
}
