package configs

import (
	"fmt"

	"github.com/jorge-trivilin/ecommerce-backend/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the single process-wide database handle. Everything that
// needs storage gets this handle injected; nothing opens its own.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// SetupDatabase migrates the schema.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
