package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int `gorm:"not null" json:"quantity"`
	// Price is the product's unit price at the moment the order was placed.
	// Later catalog price changes must not touch it.
	Price float64 `gorm:"not null" json:"price"`

	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `json:"-"`
}
