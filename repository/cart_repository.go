package repository

import (
	"github.com/jorge-trivilin/ecommerce-backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// FindByUser loads the user's cart with items and their products.
// Returns gorm.ErrRecordNotFound when the user has no cart row yet.
func (r *CartRepository) FindByUser(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreate returns the user's cart, creating an empty one if absent.
func (r *CartRepository) GetOrCreate(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if err == nil {
		return &c, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	c = entity.Cart{UserID: userID}
	if err := tx.Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// AddQuantity merges a line into the cart: an existing (cart, product) row has
// its quantity incremented, otherwise a new row is inserted.
func (r *CartRepository) AddQuantity(tx *gorm.DB, cartID, productID uint, qty int) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&exist).Error
	if err == nil {
		exist.Quantity += qty
		return tx.Save(&exist).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	row := entity.CartItem{CartID: cartID, ProductID: productID, Quantity: qty}
	return tx.Create(&row).Error
}

// DeleteItem removes the line for a product and reports whether one existed.
func (r *CartRepository) DeleteItem(tx *gorm.DB, cartID, productID uint) (bool, error) {
	res := tx.Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&entity.CartItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ClearItems drops every line of the cart. Clearing an already-empty cart
// is fine.
func (r *CartRepository) ClearItems(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}
