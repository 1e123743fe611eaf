package routes

import (
	"time"

	"github.com/dvillalba/fogonpos-api/internal/config"
	domainRepo "github.com/dvillalba/fogonpos-api/internal/domain/repository"
	"github.com/dvillalba/fogonpos-api/internal/presentation/http/handler"
	"github.com/dvillalba/fogonpos-api/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Print    *handler.PrintHandler
	Sale     *handler.SaleHandler
	Product  *handler.ProductHandler
	Customer *handler.CustomerHandler
	Settings *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
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

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Print surface, consumed directly by the cashier frontend
	api := router.Group("/api")
	{
		api.GET("/printers", h.Print.ListPrinters)
		api.POST("/print/kitchen", h.Print.PrintKitchen)
		api.POST("/print/client", h.Print.PrintClient)
		api.POST("/print/both", h.Print.PrintBoth)
		api.POST("/print/test", h.Print.TestPrint)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerSaleRoutes(v1, h, deps)
		registerProductRoutes(v1, h)
		registerCustomerRoutes(v1, h)
		registerSettingsRoutes(v1, h)
	}

	return router
}

func registerSaleRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := v1.Group("/sales")
	{
		// Recording a sale must survive frontend retries without
		// duplicating it, so the create endpoint demands a key.
		sales.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Sale.CreateSale)
		sales.GET("", h.Sale.ListSales)
		sales.GET("/:id", h.Sale.GetSale)
		sales.POST("/:id/cancel", h.Sale.CancelSale)
	}

	v1.GET("/reports/daily", h.Sale.DailyReport)
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.POST("", h.Product.CreateProduct)
		products.GET("", h.Product.ListProducts)
		products.GET("/:id", h.Product.GetProduct)
		products.PUT("/:id", h.Product.UpdateProduct)
		products.DELETE("/:id", h.Product.DeleteProduct)
	}
}

func registerCustomerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	customers := v1.Group("/customers")
	{
		customers.POST("", h.Customer.CreateCustomer)
		customers.GET("", h.Customer.ListCustomers)
		customers.GET("/lookup", h.Customer.FindByPhone)
		customers.GET("/:id", h.Customer.GetCustomer)
		customers.PUT("/:id", h.Customer.UpdateCustomer)
		customers.DELETE("/:id", h.Customer.DeleteCustomer)
	}
}

func registerSettingsRoutes(v1 *gin.RouterGroup, h *Handlers) {
	settings := v1.Group("/settings")
	{
		settings.GET("/printers", h.Settings.GetPrinterSettings)
		settings.PUT("/printers", h.Settings.UpdatePrinterSettings)
		settings.GET("/format", h.Settings.GetFormatConfig)
		settings.PUT("/format", h.Settings.UpdateFormatConfig)
	}
}
