package models

import "time"

// Subcategory names are unique per category, not globally.
type Subcategory struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID uint      `gorm:"not null;uniqueIndex:uq_cat_sub" json:"category_id"`
	Name       string    `gorm:"size:191;not null;uniqueIndex:uq_cat_sub" json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}
