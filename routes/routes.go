package routes

import (
	"github.com/jorge-trivilin/ecommerce-backend/configs"
	"github.com/jorge-trivilin/ecommerce-backend/controllers"
	"github.com/jorge-trivilin/ecommerce-backend/middlewares"
	"github.com/jorge-trivilin/ecommerce-backend/repository"
	"github.com/jorge-trivilin/ecommerce-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers around the
// shared DB handle and mounts every endpoint.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	productSvc := services.NewProductService(productRepo)
	cartSvc := services.NewCartService(db, cartRepo, productRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(productSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Catalog (reads public, mutations admin-only)
	r.GET("/products", productCtrl.List)
	r.GET("/products/:id", productCtrl.Get)

	admin := r.Group("/products", auth, middlewares.AdminOnly())
	{
		admin.POST("", productCtrl.Create)
		admin.PUT("/:id", productCtrl.Update)
		admin.DELETE("/:id", productCtrl.Delete)
	}

	// Cart (owner-scoped via token identity)
	cart := r.Group("/cart", auth)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("", cartCtrl.Add)
		cart.DELETE("/items/:productId", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders
	orders := r.Group("/orders", auth)
	{
		orders.POST("", orderCtrl.Place)
		orders.GET("", orderCtrl.History)
		orders.GET("/:id", orderCtrl.Details)
	}
}
