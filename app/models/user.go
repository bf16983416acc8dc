package models

import "time"

// User.Password holds either a bcrypt hash or, for records imported from the
// legacy system, the plaintext password. Legacy values are migrated to a hash
// on first successful login and never move back.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
