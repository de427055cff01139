package main

import (
	"context"
	"log"
	"os"

	"github.com/akfoods/pos-api/internal/application/service"
	"github.com/akfoods/pos-api/internal/config"
	"github.com/akfoods/pos-api/internal/infrastructure/database"
	"github.com/akfoods/pos-api/internal/infrastructure/repository"
	"github.com/akfoods/pos-api/internal/presentation/http/handler"
	"github.com/akfoods/pos-api/internal/presentation/http/routes"
	"github.com/akfoods/pos-api/pkg/email"
	"github.com/akfoods/pos-api/pkg/printer"
	"github.com/akfoods/pos-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Ensure the upload directory exists before it is served
	if err := os.MkdirAll(cfg.Storage.Path, 0o755); err != nil {
		log.Printf("Warning: Failed to create storage directory: %v", err)
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
	if err := database.SeedDefaultData(db, &cfg.Admin); err != nil {
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
	menuRepo := repository.NewMenuItemRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	billRepo := repository.NewBillRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	expenseCategoryRepo := repository.NewExpenseCategoryRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	reportRepo := repository.NewReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service when enabled
	var emailService *email.EmailService
	if cfg.Email.Enabled {
		emailService = email.NewEmailService(email.EmailConfig{
			SMTPHost:     cfg.Email.SMTPHost,
			SMTPPort:     cfg.Email.SMTPPort,
			SMTPUsername: cfg.Email.SMTPUsername,
			SMTPPassword: cfg.Email.SMTPPassword,
			FromName:     cfg.Email.FromName,
			FromEmail:    cfg.Email.FromEmail,
		})
	}

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, settingsRepo, cfg.Printer.Type, cfg.Printer.CharWidth)

	// Initialize services. Carts start with tax disabled and pick up the
	// persisted tax configuration right after the settings service exists.
	cartService := service.NewCartService(false, 0)
	settingsService := service.NewSettingsService(settingsRepo, cartService)
	if taxEnabled, taxPercentage, err := settingsService.TaxConfig(context.Background()); err != nil {
		log.Printf("Warning: Failed to load tax configuration: %v", err)
	} else {
		cartService.SetTaxConfig(taxEnabled, taxPercentage)
	}

	storeName := cfg.App.Name
	if settings, err := settingsService.GetSettings(context.Background()); err == nil {
		if name, ok := settings["restaurant_name"]; ok && name != "" {
			storeName = name
		}
	}

	authService := service.NewAuthService(userRepo, jwtManager)
	billingService := service.NewBillingService(billRepo, cartService, printerService)
	menuService := service.NewMenuService(menuRepo, categoryRepo)
	expenseService := service.NewExpenseService(expenseRepo, expenseCategoryRepo)
	reportService := service.NewReportService(reportRepo, emailService, cfg.Email.SummaryTo, storeName)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Cart:     handler.NewCartHandler(cartService, billingService),
		Bill:     handler.NewBillHandler(billingService),
		Menu:     handler.NewMenuHandler(menuService, &cfg.Storage),
		Expense:  handler.NewExpenseHandler(expenseService),
		Report:   handler.NewReportHandler(reportService),
		Settings: handler.NewSettingsHandler(settingsService),
		User:     handler.NewUserHandler(userService),
		Printer:  handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
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
