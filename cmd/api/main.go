package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hishab/internal/advisor"
	"hishab/internal/config"
	"hishab/internal/database"
	"hishab/internal/handlers"
	"hishab/internal/ledger"
	"hishab/internal/logger"
	"hishab/internal/middleware"
	"hishab/internal/storage"
	"hishab/internal/validator"

	_ "hishab/internal/docs" // Import swagger docs
)

// @title           Hishab API
// @version         1.0
// @description     Hishab is a single-user household finance tracker: transactions, loans, savings goals, special payments, and an AI advisory report.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the snapshot database
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	snapshots, err := storage.NewSnapshotStore(dbManager.DB())
	if err != nil {
		return fmt.Errorf("failed to create snapshot store: %w", err)
	}

	// Initialize the ledger: load the persisted snapshot or seed defaults.
	store := ledger.NewStore(snapshots)
	finance := store.Initialize()
	log.Infow("ledger initialized",
		"bank_balance", finance.BankBalance.String(),
		"transactions", len(finance.Transactions),
	)

	// Register custom binding validators
	validator.Register()

	// Initialize handlers
	authHandler, err := handlers.NewAuthHandler(appConfig.Password)
	if err != nil {
		return fmt.Errorf("failed to create auth handler: %w", err)
	}
	ledgerHandler := handlers.NewLedgerHandler(store)
	dashboardHandler := handlers.NewDashboardHandler(store)

	geminiClient := advisor.NewGeminiClient(&http.Client{Timeout: appConfig.AdvisorTimeout}, appConfig.GeminiAPIKey, appConfig.GeminiModel)
	advisorHandler := handlers.NewAdvisorHandler(store, geminiClient, appConfig.AdvisorTimeout)

	advisorLimiter, err := middleware.NewLimiter(appConfig.AdvisorRateLimit)
	if err != nil {
		return fmt.Errorf("failed to create advisor rate limiter: %w", err)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/ledger", ledgerHandler.GetSnapshot)
	protected.POST("/ledger/transactions", ledgerHandler.AddTransaction)
	protected.GET("/ledger/transactions", ledgerHandler.ListTransactions)
	protected.DELETE("/ledger/transactions/:id", ledgerHandler.DeleteTransaction)
	protected.POST("/ledger/loans", ledgerHandler.AddLoan)
	protected.POST("/ledger/goals", ledgerHandler.AddGoal)
	protected.POST("/ledger/special-payments/:id/pay", ledgerHandler.PaySpecialPayment)

	protected.GET("/dashboard", dashboardHandler.GetDashboard)

	advisorRoutes := protected.Group("/advisor")
	advisorRoutes.Use(middleware.RateLimit(advisorLimiter))
	advisorRoutes.POST("/report", advisorHandler.GenerateReport)

	log.Infof("Starting server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
