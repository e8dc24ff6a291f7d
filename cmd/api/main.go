package main

import (
	"fmt"
	"net/http"
	"os"

	"safespend/internal/config"
	"safespend/internal/database"
	"safespend/internal/handlers"
	"safespend/internal/logger"
	"safespend/internal/middleware"
	"safespend/internal/services"
	"safespend/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "safespend/internal/docs" // Import swagger docs
)

// @title           SafeSpend API
// @version         1.0
// @description     SafeSpend is a personal budgeting service that turns income, commitments, and goals into a single safe-to-spend number, re-paced daily against the transaction ledger.
// @termsOfService  http://swagger.io/terms/

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

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	onboardingService := services.NewOnboardingService(db)
	pacingService := services.NewPacingService(db)
	ledgerService := services.NewLedgerService(db)
	insightsService := services.NewInsightsService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService, auditService)
	pacingHandler := handlers.NewPacingHandler(pacingService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService, auditService)
	insightsHandler := handlers.NewInsightsHandler(insightsService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

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
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Onboarding
	protected.POST("/onboarding", onboardingHandler.CompleteOnboarding)

	// Pacing views
	protected.GET("/dashboard", pacingHandler.GetDashboard)
	protected.GET("/pacing", pacingHandler.GetDailyPacing)

	// Ledger routes
	transactions := protected.Group("/transactions")
	transactions.POST("", ledgerHandler.RecordSpend)
	transactions.GET("", ledgerHandler.GetTransactions)
	transactions.GET("/:id", ledgerHandler.GetTransaction)

	// Insights
	protected.GET("/insights", insightsHandler.GetMonthInsights)

	log.Infof("Starting SafeSpend backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
