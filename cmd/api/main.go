package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/chococroco/orders-api/internal/application/service"
	"github.com/chococroco/orders-api/internal/config"
	"github.com/chococroco/orders-api/internal/infrastructure/database"
	"github.com/chococroco/orders-api/internal/infrastructure/repository"
	"github.com/chococroco/orders-api/internal/presentation/http/handler"
	"github.com/chococroco/orders-api/internal/presentation/http/routes"
	"github.com/chococroco/orders-api/pkg/document"
	"github.com/chococroco/orders-api/pkg/utils"
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

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Hash the operator password once at boot
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	sizeRepo := repository.NewSizeRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Initialize services
	authService := service.NewAuthService(jwtManager, cfg.Admin.Email, passwordHash)
	customerService := service.NewCustomerService(customerRepo)
	catalogService := service.NewCatalogService(categoryRepo, sizeRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, customerRepo, productRepo)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo)
	reportService := service.NewReportService(orderRepo)
	documentService := service.NewDocumentService(orderRepo, document.CompanyInfo{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		Phone:   cfg.Company.Phone,
	})
	exportService := service.NewExportService(customerRepo, productRepo, orderRepo, paymentRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Customer: handler.NewCustomerHandler(customerService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Order:    handler.NewOrderHandler(orderService, paymentService, documentService),
		Report:   handler.NewReportHandler(reportService),
		Export:   handler.NewExportHandler(exportService),
	}

	// Setup router and start the server
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s on port %s", cfg.App.Name, port)
	if err := router.Run(":" + port); err != nil {
		log.Printf("Server error: %v", err)
		os.Exit(1)
	}
}
