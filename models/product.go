package models

import "time"

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CafeteriaID uint            `gorm:"not null;index" json:"cafeteria_id"`
	Cafeteria   Cafeteria       `gorm:"foreignKey:CafeteriaID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CategoryID  uint            `gorm:"not null" json:"category_id"`
	Category    ProductCategory `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ScheduleID  uint            `gorm:"not null" json:"schedule_id"`
	Schedule    Schedule        `gorm:"foreignKey:ScheduleID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Name        string          `gorm:"type:varchar(150);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       float64         `gorm:"type:decimal(10,2);not null" json:"price"`
	Active      bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}
