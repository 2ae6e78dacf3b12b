package models

import "time"

// User is a login identity. CustomerID is set when the username matches a
// customer's phone number; accounts like "admin" stay unlinked.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username       string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	HashedPassword string `gorm:"size:255;not null" json:"-"`

	CustomerID *uint     `gorm:"uniqueIndex" json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
