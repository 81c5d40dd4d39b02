package models

import "gorm.io/gorm"

// User is an API account, not a shop customer.
type User struct {
	gorm.Model
	Username string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	Role     string `gorm:"size:50;default:user" json:"role"`
}
