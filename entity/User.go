package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	IsAdmin  bool   `gorm:"not null;default:false" json:"isAdmin"`

	// Relations, preloaded only when needed
	Cart   *Cart   `json:"-"`
	Orders []Order `json:"-"`
}
