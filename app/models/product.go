package models

import "time"

// Product references its category (delete restricted) and optionally a
// subcategory (delete sets the reference to NULL). ModelDescription and
// ModelImage hold storage-relative asset paths.
type Product struct {
	ID               uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID       uint         `gorm:"not null;index" json:"category_id"`
	Category         Category     `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	SubcategoryID    *uint        `gorm:"index" json:"subcategory_id"`
	Subcategory      *Subcategory `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	ModelName        string       `gorm:"size:255;not null" json:"model_name"`
	ModelDescription *string      `gorm:"size:255" json:"model_description"`
	ModelImage       *string      `gorm:"size:255" json:"model_image"`
	CreatedAt        time.Time    `json:"created_at"`
}
