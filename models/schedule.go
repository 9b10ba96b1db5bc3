package models

import "time"

// Schedule is a named serving window (breakfast, lunch, dinner) that
// scopes both the product listing and the order it belongs to.
type Schedule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);unique;not null" json:"name"`
	StartTime string    `gorm:"type:varchar(5)" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5)" json:"end_time"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
