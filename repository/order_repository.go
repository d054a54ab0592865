package repository

import (
	"time"

	"github.com/jorge-trivilin/ecommerce-backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create persists the order together with its items (gorm inserts the
// association rows in the same statement batch).
func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// OrderSummary is the shape returned for order history listings.
type OrderSummary struct {
	ID        uint      `json:"id"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListByUser returns the user's orders, newest first.
func (r *OrderRepository) ListByUser(userID uint) ([]OrderSummary, error) {
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, total, created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Scan(&out).Error
	return out, err
}

// FindForUser loads an order with its items, scoped to the owning user in the
// query itself. An order belonging to someone else comes back as not found.
func (r *OrderRepository) FindForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}
