package entity

import (
	"gorm.io/gorm"
)

// Order is the immutable record of a completed checkout. Total is computed
// once at placement and never recalculated from current product prices.
type Order struct {
	gorm.Model
	Total float64 `gorm:"not null" json:"total"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	Items []OrderItem `json:"items"`
}
