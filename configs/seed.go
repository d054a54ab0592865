package configs

import (
	"log"

	"github.com/jorge-trivilin/ecommerce-backend/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the initial admin account from the environment. Skipped
// when the credentials are not configured or the user already exists.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminUsername == "" || cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("username = ?", cfg.AdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminUsername)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: string(hash),
		IsAdmin:  true,
	}
	return db.Create(&admin).Error
}

// SeedProducts loads a small demo catalog for development (SEED_DEMO=1).
func SeedProducts(db *gorm.DB, cfg *Config) error {
	if !cfg.SeedDemo {
		return nil
	}

	demo := []entity.Product{
		{Name: "Laptop", Description: "High performance laptop", Price: 1200.00, Stock: 10},
		{Name: "Smartphone", Description: "Latest model smartphone", Price: 800.00, Stock: 25},
		{Name: "Headphones", Description: "Noise cancelling headphones", Price: 150.00, Stock: 50},
		{Name: "Monitor", Description: "27 inch 4K monitor", Price: 350.00, Stock: 15},
	}
	for i := range demo {
		if err := db.Where("name = ?", demo[i].Name).FirstOrCreate(&demo[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
