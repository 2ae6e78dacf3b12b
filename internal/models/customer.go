package models

import "time"

// Customer is a catalog subscriber. PhoneNumber doubles as the login
// username for self-service accounts.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string    `gorm:"size:100;not null" json:"name"`
	Address     string    `gorm:"size:255;not null" json:"address"`
	PhoneNumber string    `gorm:"size:20;uniqueIndex" json:"phone_number"`
	BirthDate   time.Time `gorm:"type:date" json:"birth_date"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
