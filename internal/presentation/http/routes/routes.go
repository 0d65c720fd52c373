package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chococroco/orders-api/internal/config"
	"github.com/chococroco/orders-api/internal/presentation/http/handler"
	"github.com/chococroco/orders-api/internal/presentation/http/middleware"
	"github.com/chococroco/orders-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Customer *handler.CustomerHandler
	Catalog  *handler.CatalogHandler
	Order    *handler.OrderHandler
	Report   *handler.ReportHandler
	Export   *handler.ExportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
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
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(&deps.Cfg.RateLimit)
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(rg *gin.RouterGroup, h *Handlers) {
	customers := rg.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.Catalog.ListCategories)
		categories.POST("", h.Catalog.CreateCategory)
		categories.PUT("/:id", h.Catalog.UpdateCategory)
		categories.DELETE("/:id", h.Catalog.DeleteCategory)
	}

	sizes := rg.Group("/sizes")
	{
		sizes.GET("", h.Catalog.ListSizes)
		sizes.POST("", h.Catalog.CreateSize)
		sizes.PUT("/:id", h.Catalog.UpdateSize)
		sizes.DELETE("/:id", h.Catalog.DeleteSize)
	}

	products := rg.Group("/products")
	{
		products.GET("", h.Catalog.ListProducts)
		products.POST("", h.Catalog.CreateProduct)
		products.GET("/:id", h.Catalog.GetProduct)
		products.PUT("/:id", h.Catalog.UpdateProduct)
		products.DELETE("/:id", h.Catalog.DeleteProduct)
	}

	orders := rg.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Create)
		orders.POST("/invoice", h.Order.BulkInvoice)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id", h.Order.Update)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.DELETE("/:id", h.Order.Delete)
		orders.GET("/:id/payments", h.Order.ListPayments)
		orders.POST("/:id/payments", h.Order.CreatePayment)
		orders.GET("/:id/invoice", h.Order.Invoice)
		orders.GET("/:id/delivery-slip", h.Order.DeliverySlip)
	}

	payments := rg.Group("/payments")
	{
		payments.DELETE("/:id", h.Order.DeletePayment)
	}

	reports := rg.Group("/reports")
	{
		reports.GET("/orders", h.Report.Orders)
	}

	exports := rg.Group("/exports")
	{
		exports.GET("/customers.csv", h.Export.Customers)
		exports.GET("/products.csv", h.Export.Products)
		exports.GET("/orders.csv", h.Export.Orders)
		exports.GET("/payments.csv", h.Export.Payments)
		exports.GET("/profit-loss.csv", h.Export.ProfitLossCSV)
		exports.GET("/profit-loss.xlsx", h.Export.ProfitLossXLSX)
	}
}
