package entity

import (
	"gorm.io/gorm"
)

// Cart is the per-user staging area for prospective purchases. One cart per
// user; it is created lazily on the first add and emptied on checkout,
// never deleted.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
