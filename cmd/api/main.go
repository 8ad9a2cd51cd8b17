package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farmgate/farmgate-api/internal/application/service"
	"github.com/farmgate/farmgate-api/internal/config"
	"github.com/farmgate/farmgate-api/internal/infrastructure/database"
	infraGeo "github.com/farmgate/farmgate-api/internal/infrastructure/geo"
	"github.com/farmgate/farmgate-api/internal/infrastructure/repository"
	"github.com/farmgate/farmgate-api/internal/presentation/http/handler"
	"github.com/farmgate/farmgate-api/internal/presentation/http/routes"
	"github.com/farmgate/farmgate-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	logisticsRepo := repository.NewLogisticsProviderRepository(db)
	loyaltyRepo := repository.NewLoyaltyRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize the distance matrix client
	distanceProvider := infraGeo.NewMatrixClient(infraGeo.MatrixClientConfig{
		BaseURL: cfg.Geolocation.BaseURL,
		APIKey:  cfg.Geolocation.APIKey,
		Timeout: time.Duration(cfg.Geolocation.TimeoutSeconds) * time.Second,
	})
	if !distanceProvider.IsConfigured() {
		log.Printf("Warning: distance matrix API key not set, third-party shipping quotes will fail")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo)
	logisticsService := service.NewLogisticsService(logisticsRepo)
	shippingService := service.NewShippingService(logisticsRepo, distanceProvider)
	checkoutService := service.NewCheckoutService(productRepo, loyaltyRepo, shippingService, cfg.Loyalty.PointValueRM)
	orderService := service.NewOrderService(orderRepo, productRepo, loyaltyRepo, checkoutService, cfg.Loyalty.EarnRatePerRM)
	loyaltyService := service.NewLoyaltyService(loyaltyRepo, cfg.Loyalty.PointValueRM)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Product:   handler.NewProductHandler(productService),
		Logistics: handler.NewLogisticsHandler(logisticsService),
		Checkout:  handler.NewCheckoutHandler(checkoutService),
		Order:     handler.NewOrderHandler(orderService),
		Loyalty:   handler.NewLoyaltyHandler(loyaltyService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
