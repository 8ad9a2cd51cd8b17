package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farmgate/farmgate-api/internal/config"
	"github.com/farmgate/farmgate-api/internal/domain/entity"
	domainRepo "github.com/farmgate/farmgate-api/internal/domain/repository"
	"github.com/farmgate/farmgate-api/internal/presentation/http/handler"
	"github.com/farmgate/farmgate-api/internal/presentation/http/middleware"
	"github.com/farmgate/farmgate-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Logistics *handler.LogisticsHandler
	Checkout  *handler.CheckoutHandler
	Order     *handler.OrderHandler
	Loyalty   *handler.LoyaltyHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile
	protected.GET("/profile", h.Auth.Me)

	// Produce listings
	registerProductRoutes(protected, h)

	// Logistics providers
	registerLogisticsRoutes(protected, h)

	// Checkout quotes and orders
	registerCheckoutRoutes(protected, h)
	registerOrderRoutes(protected, h, deps)

	// Loyalty points
	registerLoyaltyRoutes(protected, h)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/:slug", h.Product.Get)

		sellerOnly := products.Group("")
		sellerOnly.Use(middleware.RequireRole(entity.RoleSeller))
		{
			sellerOnly.POST("", h.Product.Create)
			sellerOnly.GET("/mine/listings", h.Product.Mine)
			sellerOnly.PUT("/:slug", h.Product.Update)
			sellerOnly.DELETE("/:slug", h.Product.Delete)
		}
	}
}

func registerLogisticsRoutes(protected *gin.RouterGroup, h *Handlers) {
	logistics := protected.Group("/logistics")
	{
		// Any authenticated user can see who ships
		logistics.GET("/providers", h.Logistics.ListActive)

		profile := logistics.Group("/profile")
		profile.Use(middleware.RequireRole(entity.RoleLogistics))
		{
			profile.POST("", h.Logistics.CreateProfile)
			profile.GET("", h.Logistics.GetProfile)
			profile.PUT("", h.Logistics.UpdateProfile)
		}
	}
}

func registerCheckoutRoutes(protected *gin.RouterGroup, h *Handlers) {
	checkout := protected.Group("/checkout")
	checkout.Use(middleware.RequireRole(entity.RoleBuyer))
	{
		checkout.POST("/quote", h.Checkout.Quote)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	{
		// Order creation uses idempotency middleware to prevent duplicates
		orders.POST("", middleware.RequireRole(entity.RoleBuyer), middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.GET("", middleware.RequireRole(entity.RoleBuyer), h.Order.ListMine)
		orders.GET("/sales", middleware.RequireRole(entity.RoleSeller), h.Order.ListSales)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id/status", middleware.RequireRole(entity.RoleSeller), h.Order.UpdateStatus)
		orders.POST("/:id/cancel", middleware.RequireRole(entity.RoleBuyer), h.Order.Cancel)
	}
}

func registerLoyaltyRoutes(protected *gin.RouterGroup, h *Handlers) {
	loyalty := protected.Group("/loyalty")
	loyalty.Use(middleware.RequireRole(entity.RoleBuyer))
	{
		loyalty.GET("/balance", h.Loyalty.GetBalance)
		loyalty.GET("/transactions", h.Loyalty.ListTransactions)
		loyalty.POST("/preview", h.Loyalty.PreviewRedemption)
	}
}
