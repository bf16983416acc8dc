package seeders

import (
	"log"

	"github.com/hafizianr/go-catalog-admin/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultCategories is the taxonomy a fresh install starts with.
var DefaultCategories = []string{
	"Ups",
	"Battery",
	"Education products",
	"Solar products",
	"Servo Stabilizer",
	"AVR",
	"Inverter",
	"Waterpump",
}

// EnsureSeeded inserts the default categories when the table is empty.
// Inserts ignore duplicates, so running it against a half-seeded table is
// safe too.
func EnsureSeeded(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, name := range DefaultCategories {
		category := models.Category{Name: name}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&category).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d default categories", len(DefaultCategories))
	return nil
}
