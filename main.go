package main

import (
	"fmt"
	"log"

	"github.com/jorge-trivilin/ecommerce-backend/configs"
	"github.com/jorge-trivilin/ecommerce-backend/middlewares"
	"github.com/jorge-trivilin/ecommerce-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedProducts(db, cfg); err != nil {
		log.Fatalf("seed products failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
