package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/Ameer12348/wacky-commerce-backend/config"
	"github.com/Ameer12348/wacky-commerce-backend/database"
	"github.com/Ameer12348/wacky-commerce-backend/handlers"
	"github.com/Ameer12348/wacky-commerce-backend/repository"
	"github.com/Ameer12348/wacky-commerce-backend/services"
)

func main() {
	log := logrus.New()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	// Initialize tables
	if err := db.InitializeTables(); err != nil {
		log.WithError(err).Fatal("Failed to initialize tables")
	}

	// Repositories
	productRepo := repository.NewPostgresProductRepository(db)
	variantRepo := repository.NewPostgresVariantRepository(db)
	categoryRepo := repository.NewPostgresCategoryRepository(db)
	orderRepo := repository.NewPostgresCustomerOrderRepository(db)
	orderLineRepo := repository.NewPostgresOrderLineRepository(db)
	wishlistRepo := repository.NewPostgresWishlistRepository(db)

	// Services
	catalogService := services.NewCatalogQueryService(productRepo, log)
	productService := services.NewProductService(productRepo, variantRepo, orderLineRepo, wishlistRepo, log)
	orderService := services.NewOrderService(orderRepo, orderLineRepo, variantRepo, log)
	wishlistService := services.NewWishlistService(wishlistRepo, log)
	categoryService := services.NewCategoryService(categoryRepo, log)
	imageService, err := services.NewImageService(cfg.CloudinaryURL, cfg.UploadDir, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize image storage")
	}

	// Handlers
	productHandler := handlers.NewProductHandler(catalogService, productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	imageHandler := handlers.NewImageHandler(imageService)

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Storefront server is running",
		})
	})

	api := router.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/search", productHandler.Search)
			products.GET("/:id", productHandler.Get)
			products.POST("", productHandler.Create)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.Get)
			categories.POST("", categoryHandler.Create)
			categories.PUT("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("", orderHandler.CreateOrder)
			orders.PUT("/:id", orderHandler.UpdateOrder)
			orders.DELETE("/:id", orderHandler.DeleteOrder)
		}

		// order lines, addressed by customer order id
		orderProduct := api.Group("/order-product")
		{
			orderProduct.GET("", orderHandler.Grouped)
			orderProduct.GET("/:id", orderHandler.LinesByOrder)
			orderProduct.POST("", orderHandler.CreateLine)
			orderProduct.PUT("/:id", orderHandler.UpdateLine)
			orderProduct.DELETE("/:id", orderHandler.DeleteLines)
		}

		wishlist := api.Group("/wishlist")
		{
			wishlist.GET("", wishlistHandler.All)
			wishlist.GET("/:userId", wishlistHandler.ByUser)
			wishlist.GET("/:userId/:productVariantId", wishlistHandler.Item)
			wishlist.POST("", wishlistHandler.Add)
			wishlist.DELETE("/:userId", wishlistHandler.Clear)
			wishlist.DELETE("/:userId/:productVariantId", wishlistHandler.Remove)
		}

		api.POST("/main-image", imageHandler.UploadMainImage)
	}

	// CORS middleware wraps the whole router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	log.WithField("port", cfg.ServerPort).Info("Starting storefront server")
	if err := http.ListenAndServe("0.0.0.0:"+cfg.ServerPort, corsHandler.Handler(router)); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
