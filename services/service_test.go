package services

import (
	"testing"

	"github.com/jorge-trivilin/ecommerce-backend/configs"
	"github.com/jorge-trivilin/ecommerce-backend/entity"
	"github.com/jorge-trivilin/ecommerce-backend/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Pin the pool to one connection so every query sees the same
	// in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, configs.SetupDatabase(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()
	u := &entity.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, Price: price, Stock: stock}
	require.NoError(t, db.Create(p).Error)
	return p
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewCartRepository(db))
}
