package models

import "time"

// CustomerProduct links a customer to a subscribed product. A customer
// holds at most one row per product; extra units go in Quantity.
type CustomerProduct struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `gorm:"uniqueIndex:idx_customer_product;not null" json:"customer_id"`
	ProductID  uint `gorm:"uniqueIndex:idx_customer_product;not null" json:"product_id"`
	Quantity   int  `gorm:"default:1" json:"quantity"`

	Customer Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Product  Product  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
