package entity

import (
	"gorm.io/gorm"
)

// CartItem holds one product line in a cart. At most one row per
// (cart, product); repeated adds bump Quantity instead of inserting.
type CartItem struct {
	gorm.Model
	CartID uint `gorm:"index;not null" json:"cartId"`
	Cart   Cart `json:"-"`

	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `json:"-"`

	Quantity int `gorm:"not null" json:"quantity"`
}
