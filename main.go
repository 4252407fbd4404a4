package main

import (
	"log/slog"
	"os"

	"catalog-be/internal/cache"
	"catalog-be/internal/config"
	"catalog-be/internal/controllers"
	"catalog-be/internal/database"
	"catalog-be/internal/logger"
	"catalog-be/internal/middleware"
	"catalog-be/internal/repository"
	"catalog-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Warn("failed to connect to Redis, continuing without cache", slog.Any("error", err))
		cacheClient = nil
	} else {
		log.Info("connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenRepo, cacheClient)
	userService := service.NewUserService(userRepo, tokenRepo, cacheClient)
	categoryService := service.NewCategoryService(categoryRepo)
	productService := service.NewProductService(productRepo, categoryRepo, cacheClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)
	categoryController := controllers.NewCategoryController(categoryService)
	productController := controllers.NewProductController(productService)
	qrcodeController := controllers.NewQRCodeController(productService, cfg.FrontendURL)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog(log))

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API v1 routes group with general rate limiting
	api := router.Group("/api/v1")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// Auth routes with stricter rate limiting
		auth := api.Group("/auth")
		auth.Use(authRateLimiter.LimitMiddleware())
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		// User management - requires authentication
		users := api.Group("/users")
		users.Use(middleware.RequireAuth(authService))
		{
			users.GET("", userController.List)
			users.POST("", userController.Create)
			users.GET("/:id", userController.Get)
			users.PUT("/:id", userController.Update)
			users.PATCH("/:id", userController.Update)
			users.DELETE("/:id", userController.Delete)
		}

		// Categories - reads are public, writes require authentication
		api.GET("/categories", categoryController.List)
		api.GET("/categories/:id", categoryController.Get)
		categoriesWrite := api.Group("/categories")
		categoriesWrite.Use(middleware.RequireAuth(authService))
		{
			categoriesWrite.POST("", categoryController.Create)
			categoriesWrite.PUT("/:id", categoryController.Update)
			categoriesWrite.PATCH("/:id", categoryController.Update)
			categoriesWrite.DELETE("/:id", categoryController.Delete)
		}

		// Products - reads are public, writes require authentication
		// (ownership is enforced in the service layer)
		api.GET("/products", productController.List)
		api.GET("/products/:id", productController.Get)
		api.GET("/products/:id/qrcode", qrcodeController.GenerateProductQR)
		productsWrite := api.Group("/products")
		productsWrite.Use(middleware.RequireAuth(authService))
		{
			productsWrite.POST("", productController.Create)
			productsWrite.PUT("/:id", productController.Update)
			productsWrite.PATCH("/:id", productController.Update)
			productsWrite.DELETE("/:id", productController.Delete)
		}
	}

	log.Info("server starting", slog.String("addr", cfg.ServerAddr))
	if err := router.Run(cfg.ServerAddr); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}
