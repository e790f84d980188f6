package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "avocado-hub-backend/internal/api/http"
	"avocado-hub-backend/internal/config"
	"avocado-hub-backend/internal/logger"
	"avocado-hub-backend/internal/repository/postgres"
	"avocado-hub-backend/internal/security"
	"avocado-hub-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Local overrides; absence of a .env file is fine
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Avocado Hub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	farmerSvc := service.NewFarmerService(store.FarmerRepository)
	buyerSvc := service.NewBuyerService(store.BuyerRepository)
	orderSvc := service.NewOrderService(store.OrderRepository, store.FarmerRepository)
	saleSvc := service.NewSaleService(store.SaleRepository, store.BuyerRepository)

	// Initialize HTTP handlers
	authHandler := httpapi.NewAuthHandler(authSvc)
	farmerHandler := httpapi.NewFarmerHandler(farmerSvc)
	buyerHandler := httpapi.NewBuyerHandler(buyerSvc)
	orderHandler := httpapi.NewOrderHandler(orderSvc)
	saleHandler := httpapi.NewSaleHandler(saleSvc)

	router := httpapi.NewRouter(authHandler, farmerHandler, buyerHandler, orderHandler, saleHandler)

	// Browser clients hit this API directly, so CORS mirrors the frontend origins
	origins := cfg.CORS.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), cors(router)); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
