// @title           Fabrication Shop Backend API
// @version         1.0.0
// @description     Backend API for a custom-fabrication shop: staff create price quotes, convert accepted quotes into production orders, track order status and payment, and read revenue/cost/margin metrics. Backed by Supabase (Postgres, Storage, Realtime, Auth).

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fabshop-backend/docs"
	"fabshop-backend/internal/config"
	"fabshop-backend/internal/database"
	"fabshop-backend/internal/handlers"
	"fabshop-backend/internal/middleware"
	"fabshop-backend/internal/services"
	"fabshop-backend/internal/supabase"
)

func main() {
	// Load .env when present; real deployments set env vars directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	// Initialize Supabase clients
	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}

	refClient := supabase.NewReferenceClient(supabaseClient)
	realtimeClient := supabase.NewRealtimeClient(supabaseClient.Supabase)

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	// Direct database connection for row CRUD and migrations
	var dbClient *supabase.DatabaseClient
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL not set. Quote and order operations will be unavailable.")
		log.Println("Please set DATABASE_URL with your Supabase PostgreSQL connection string")
	} else {
		dbClient, err = supabase.NewDatabaseClient(cfg.DatabaseURL)
		if err != nil {
			log.Printf("Warning: Failed to initialize database client: %v", err)
			log.Println("Database operations will be limited. Please configure DATABASE_URL properly.")
		} else {
			defer dbClient.Close()

			migrator, err := database.NewMigrator(cfg.DatabaseURL)
			if err != nil {
				log.Printf("Warning: Failed to initialize migrator: %v", err)
			} else {
				defer migrator.Close()
				if err := migrator.Run(); err != nil {
					log.Printf("Warning: Migration failed: %v", err)
				} else {
					log.Println("Migrations completed successfully")
				}
			}
		}
	}

	var attachmentService *services.AttachmentService
	var quoteStore handlers.QuoteStore
	var orderStore handlers.OrderStore
	if dbClient != nil {
		attachmentService = services.NewAttachmentService(dbClient, storageClient, realtimeClient)
		quoteStore = dbClient
		orderStore = dbClient
	}

	// Initialize handlers (stores might be nil, handlers respond 500 then)
	quotesHandler := handlers.NewQuotesHandler(cfg, quoteStore, refClient, realtimeClient)
	ordersHandler := handlers.NewOrdersHandler(orderStore, refClient, realtimeClient)
	referenceHandler := handlers.NewReferenceHandler(refClient)
	metricsHandler := handlers.NewMetricsHandler(dbClient, refClient)
	filesHandler := handlers.NewFilesHandler(dbClient, attachmentService)

	// Setup router
	router := gin.Default()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	// Quotes
	api.GET("/quotes", quotesHandler.ListQuotes)
	api.POST("/quotes", quotesHandler.CreateQuote)
	api.GET("/quotes/:quote_id", quotesHandler.GetQuote)
	api.PUT("/quotes/:quote_id", quotesHandler.UpdateQuote)
	api.POST("/quotes/:quote_id/convert", quotesHandler.ConvertQuote)

	// Orders
	api.GET("/orders", ordersHandler.ListOrders)
	api.GET("/orders/:order_id", ordersHandler.GetOrder)
	api.PATCH("/orders/:order_id", ordersHandler.UpdateOrder)

	// Reference data
	api.GET("/reference/quote-statuses", referenceHandler.GetQuoteStatuses)
	api.GET("/reference/order-statuses", referenceHandler.GetOrderStatuses)
	api.GET("/reference/print-types", referenceHandler.GetPrintTypes)

	// Metrics
	api.GET("/metrics/dashboard", metricsHandler.GetDashboard)

	// Quote attachments
	api.POST("/quotes/:quote_id/files", filesHandler.UploadFile)
	api.GET("/quotes/:quote_id/files", filesHandler.GetFiles)
	api.DELETE("/files/:file_id", filesHandler.DeleteFile)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
