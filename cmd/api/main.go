package main

import (
	"log"
	"os"

	"github.com/dvillalba/fogonpos-api/internal/application/service"
	"github.com/dvillalba/fogonpos-api/internal/config"
	"github.com/dvillalba/fogonpos-api/internal/infrastructure/database"
	"github.com/dvillalba/fogonpos-api/internal/infrastructure/repository"
	"github.com/dvillalba/fogonpos-api/internal/presentation/http/handler"
	"github.com/dvillalba/fogonpos-api/internal/presentation/http/routes"
	"github.com/dvillalba/fogonpos-api/pkg/printer"
	"github.com/gin-gonic/gin"
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

	// Initialize repositories
	saleRepo := repository.NewSaleRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize the print dispatcher; nil opener means the default
	// device-file/TCP opener
	dispatcher := printer.NewDispatcher(nil, cfg.Printer.OpenTimeout)
	lister := printer.ListDevicesWith(cfg.Printer.DevicePaths)

	// Initialize services
	saleService := service.NewSaleService(saleRepo, productRepo)
	productService := service.NewProductService(productRepo)
	customerService := service.NewCustomerService(customerRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	printService := service.NewPrintService(dispatcher, settingsRepo, lister)

	// Initialize handlers
	handlers := &routes.Handlers{
		Print:    handler.NewPrintHandler(printService),
		Sale:     handler.NewSaleHandler(saleService),
		Product:  handler.NewProductHandler(productService),
		Customer: handler.NewCustomerHandler(customerService),
		Settings: handler.NewSettingsHandler(settingsService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Start server
	port := cfg.App.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	log.Printf("Starting %s on port %s (env: %s)", cfg.App.Name, port, cfg.App.Env)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
