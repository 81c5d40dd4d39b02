package models

import "gorm.io/gorm"

// Customer represents a registered customer or order contact.
type Customer struct {
	gorm.Model
	FirstName string `gorm:"size:100;not null"      json:"first_name"`
	LastName  string `gorm:"size:100;not null;index" json:"last_name"`
	Email     string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone     string `gorm:"size:30"  json:"phone"`
	Address   string `gorm:"size:255" json:"address"`
	City      string `gorm:"size:100" json:"city"`
	Country   string `gorm:"size:100" json:"country"`
}
