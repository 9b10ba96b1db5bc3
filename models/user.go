package models

import "time"

type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(100);not null" json:"name"`
	Surname         string    `gorm:"type:varchar(100);not null" json:"surname"`
	Email           string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password        string    `gorm:"type:varchar(255);not null" json:"-"`
	Faculty         string    `gorm:"type:varchar(150)" json:"faculty"`
	Phone           string    `gorm:"type:varchar(30)" json:"phone"`
	DefaultLocation uint      `gorm:"not null;default:1" json:"default_location"`
	Active          bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}
