package services

import (
	"errors"

	"github.com/jorge-trivilin/ecommerce-backend/entity"
	"github.com/jorge-trivilin/ecommerce-backend/repository"

	"gorm.io/gorm"
)

// PlacedOrder is what checkout hands back to the caller.
type PlacedOrder struct {
	OrderID uint    `json:"orderId"`
	Total   float64 `json:"total"`
}

// OrderEngine turns carts into immutable orders and serves order history.
type OrderEngine interface {
	Place(userID uint) (*PlacedOrder, error)
	History(userID uint) ([]repository.OrderSummary, error)
	Details(userID, orderID uint) (*entity.Order, error)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
}

var _ OrderEngine = (*OrderService)(nil)

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo}
}

// Place converts the user's cart into an order. Reading the cart, snapshotting
// each product's current price into an order item, writing the order and
// clearing the cart all run in one transaction; a failure anywhere rolls back
// everything.
func (s *OrderService) Place(userID uint) (*PlacedOrder, error) {
	var out PlacedOrder
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.FindByUser(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmptyCart
		}
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		var total float64
		items := make([]entity.OrderItem, 0, len(cart.Items))
		for _, it := range cart.Items {
			// A deleted product preloads as a zero value; snapshotting it
			// would record price 0.00. Skip the stale line instead.
			if it.Product.ID == 0 {
				continue
			}
			// Price snapshot: the catalog price right now becomes the
			// permanent price of this line.
			unit := it.Product.Price
			total += unit * float64(it.Quantity)
			items = append(items, entity.OrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     unit,
			})
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		order := entity.Order{
			UserID: userID,
			Total:  total,
			Items:  items,
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		if err := s.CartRepo.ClearItems(tx, cart.ID); err != nil {
			return err
		}

		out = PlacedOrder{OrderID: order.ID, Total: order.Total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// History lists the user's orders, newest first.
func (s *OrderService) History(userID uint) ([]repository.OrderSummary, error) {
	return s.Repo.ListByUser(userID)
}

// Details returns one order with its items. Orders owned by other users look
// exactly like orders that do not exist.
func (s *OrderService) Details(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.FindForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}
