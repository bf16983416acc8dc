package migrations

import (
	"github.com/hafizianr/go-catalog-admin/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Category{}, &models.Subcategory{}, &models.Product{})
}
