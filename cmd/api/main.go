package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/liupeizhou/coffee-pos/internal/application/service"
	"github.com/liupeizhou/coffee-pos/internal/config"
	"github.com/liupeizhou/coffee-pos/internal/infrastructure/database"
	"github.com/liupeizhou/coffee-pos/internal/infrastructure/repository"
	"github.com/liupeizhou/coffee-pos/internal/presentation/http/handler"
	"github.com/liupeizhou/coffee-pos/internal/presentation/http/routes"
	"github.com/liupeizhou/coffee-pos/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the local store
	db, err := database.NewSQLiteDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize credential verifier
	verifier := utils.NewBcryptVerifier()

	// Seed default data on first run
	if err := database.SeedDefaultData(db, verifier); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	optionRepo := repository.NewProductOptionRepository(db)
	preparationRepo := repository.NewProductPreparationRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	reportRepo := repository.NewReportRepository(db)
	summaryRepo := repository.NewDailySummaryRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)

	// Initialize services
	authService := service.NewAuthService(staffRepo, shiftRepo, jwtManager, verifier)
	categoryService := service.NewCategoryService(categoryRepo)
	productService := service.NewProductService(productRepo, categoryRepo)
	optionService := service.NewProductOptionService(optionRepo, productRepo)
	preparationService := service.NewProductPreparationService(preparationRepo, productRepo)
	orderService := service.NewOrderService(orderRepo)
	shiftService := service.NewShiftService(shiftRepo, staffRepo)
	reportService := service.NewReportService(reportRepo, summaryRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	exportService := service.NewExportService(reportRepo, orderRepo, cfg.Export.Dir)
	staffService := service.NewStaffService(staffRepo, verifier)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Category: handler.NewCategoryHandler(categoryService),
		Product:  handler.NewProductHandler(productService, optionService, preparationService),
		Order:    handler.NewOrderHandler(orderService),
		Shift:    handler.NewShiftHandler(shiftService),
		Report:   handler.NewReportHandler(reportService),
		Settings: handler.NewSettingsHandler(settingsService),
		Export:   handler.NewExportHandler(exportService),
		Staff:    handler.NewStaffHandler(staffService),
		Admin:    handler.NewAdminHandler(maintenanceService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
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
