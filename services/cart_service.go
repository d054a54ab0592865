package services

import (
	"errors"

	"github.com/jorge-trivilin/ecommerce-backend/repository"

	"gorm.io/gorm"
)

// CartLine is one row of a cart view: product reference, its current catalog
// price, and the accumulated quantity.
type CartLine struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// CartEngine owns all mutable pre-order state for a user.
type CartEngine interface {
	Get(userID uint) ([]CartLine, error)
	AddItem(userID, productID uint, quantity int) error
	RemoveItem(userID, productID uint) error
	Clear(userID uint) error
}

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	Products *repository.ProductRepository
}

var _ CartEngine = (*CartService)(nil)

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, Products: pr}
}

// Get returns the cart contents. A user without a cart row simply has an
// empty cart; that is not an error.
func (s *CartService) Get(userID uint) ([]CartLine, error) {
	cart, err := s.CartRepo.FindByUser(s.DB, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []CartLine{}, nil
	}
	if err != nil {
		return nil, err
	}

	lines := make([]CartLine, 0, len(cart.Items))
	for _, it := range cart.Items {
		// A line whose product was deleted after it was added preloads as a
		// zero Product. Hide it rather than render a nameless zero-price row.
		if it.Product.ID == 0 {
			continue
		}
		lines = append(lines, CartLine{
			ProductID: it.ProductID,
			Name:      it.Product.Name,
			Quantity:  it.Quantity,
			Price:     it.Product.Price,
		})
	}
	return lines, nil
}

// AddItem puts quantity units of a product into the user's cart, creating the
// cart on first use. Adding a product already in the cart accumulates; it
// never overwrites the existing quantity.
func (s *CartService) AddItem(userID, productID uint, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if _, err := s.Products.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreate(tx, userID)
		if err != nil {
			return err
		}
		return s.CartRepo.AddQuantity(tx, cart.ID, productID, quantity)
	})
}

// RemoveItem drops a product line from the cart. A missing cart or a product
// that is not in it must be visible to the caller, never a silent success.
func (s *CartService) RemoveItem(userID, productID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.FindByUser(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartNotFound
		}
		if err != nil {
			return err
		}

		removed, err := s.CartRepo.DeleteItem(tx, cart.ID, productID)
		if err != nil {
			return err
		}
		if !removed {
			return ErrItemNotFound
		}
		return nil
	})
}

// Clear empties the cart. Unlike RemoveItem this is idempotent: an absent or
// already-empty cart clears successfully.
func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.FindByUser(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return s.CartRepo.ClearItems(tx, cart.ID)
	})
}
