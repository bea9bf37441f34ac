package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/liupeizhou/coffee-pos/internal/config"
	"github.com/liupeizhou/coffee-pos/internal/presentation/http/handler"
	"github.com/liupeizhou/coffee-pos/internal/presentation/http/middleware"
	"github.com/liupeizhou/coffee-pos/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
	Order    *handler.OrderHandler
	Shift    *handler.ShiftHandler
	Report   *handler.ReportHandler
	Settings *handler.SettingsHandler
	Export   *handler.ExportHandler
	Staff    *handler.StaffHandler
	Admin    *handler.AdminHandler
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
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-staff rate limiter
		rateLimiter := middleware.NewStaffRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.POST("/auth/logout", h.Auth.Logout)

	registerCatalogRoutes(protected, h)
	registerOrderRoutes(protected, h)
	registerShiftRoutes(protected, h)
	registerReportRoutes(protected, h)
	registerSettingsRoutes(protected, h)
	registerExportRoutes(protected, h)
	registerStaffRoutes(protected, h)
	registerAdminRoutes(protected, h)
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.POST("", h.Category.Create)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)
	}

	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/options", h.Product.ListOptions)
		products.POST("/options", h.Product.CreateOption)
		products.PUT("/options/:id", h.Product.UpdateOption)
		products.DELETE("/options/:id", h.Product.DeleteOption)
		products.POST("/preparations", h.Product.CreatePreparation)
		products.PUT("/preparations/:id", h.Product.UpdatePreparation)
		products.DELETE("/preparations/:id", h.Product.DeletePreparation)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
		products.GET("/:id/preparations", h.Product.ListPreparations)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Create)
		orders.GET("/:id/items", h.Order.GetItems)
	}
}

func registerShiftRoutes(protected *gin.RouterGroup, h *Handlers) {
	shifts := protected.Group("/shifts")
	{
		shifts.GET("", h.Shift.List)
		shifts.POST("", h.Shift.Start)
		shifts.GET("/current", h.Shift.GetCurrent)
		shifts.GET("/active", h.Shift.GetActive)
		shifts.GET("/:id", h.Shift.Get)
		shifts.POST("/:id/end", h.Shift.End)
		shifts.POST("/:id/recompute", h.Shift.Recompute)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	{
		reports.GET("/sales", h.Report.Sales)
		reports.GET("/products", h.Report.ProductSales)
		reports.GET("/daily", h.Report.Daily)
		reports.GET("/comparison", h.Report.Comparison)
		reports.GET("/summary", h.Report.GetSummary)
		reports.POST("/summary", h.Report.UpdateSummary)
	}
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/settings", h.Settings.GetSettings)
	protected.GET("/settings/:key", h.Settings.GetSetting)
	protected.PUT("/settings", middleware.RequireRole("admin"), h.Settings.UpdateSettings)
}

func registerExportRoutes(protected *gin.RouterGroup, h *Handlers) {
	exports := protected.Group("/exports")
	{
		exports.GET("/daily", h.Export.Daily)
		exports.POST("/monthly", h.Export.Monthly)
	}
}

func registerStaffRoutes(protected *gin.RouterGroup, h *Handlers) {
	staff := protected.Group("/staff")
	staff.Use(middleware.RequireRole("admin"))
	{
		staff.GET("", h.Staff.List)
		staff.POST("", h.Staff.Create)
		staff.GET("/:id", h.Staff.Get)
		staff.PUT("/:id", h.Staff.Update)
		staff.DELETE("/:id", h.Staff.Delete)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole("admin"))
	{
		admin.POST("/clear-data", h.Admin.ClearData)
	}
}
