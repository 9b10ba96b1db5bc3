package database

import (
	"gorm.io/gorm"

	"github.com/utppedidos/backend/models"
)

// Seed inserts the reference data a fresh install needs: the three serving
// windows, the campus cafeterias, and the base product categories. Tables
// that already hold rows are left alone, so Seed is safe to run on every
// startup.
func Seed(db *gorm.DB) error {
	if err := seedSchedules(db); err != nil {
		return err
	}
	if err := seedCafeterias(db); err != nil {
		return err
	}
	return seedCategories(db)
}

func seedSchedules(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Schedule{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	schedules := []models.Schedule{
		{Name: "desayuno", StartTime: "06:30", EndTime: "10:30", Active: true},
		{Name: "almuerzo", StartTime: "11:30", EndTime: "14:30", Active: true},
		{Name: "cena", StartTime: "17:00", EndTime: "20:00", Active: true},
	}
	return db.Create(&schedules).Error
}

func seedCafeterias(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Cafeteria{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cafeterias := []models.Cafeteria{
		{Name: "Cafetería Central", Location: "Edificio 1", Active: true},
		{Name: "Cafetería de Ingeniería", Location: "Edificio 3", Active: true},
	}
	return db.Create(&cafeterias).Error
}

func seedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ProductCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.ProductCategory{
		{Name: "Platos fuertes"},
		{Name: "Bebidas"},
		{Name: "Snacks"},
		{Name: "Postres"},
	}
	return db.Create(&categories).Error
}
