package routes

import (
	"time"

	"github.com/akfoods/pos-api/internal/config"
	domainRepo "github.com/akfoods/pos-api/internal/domain/repository"
	"github.com/akfoods/pos-api/internal/presentation/http/handler"
	"github.com/akfoods/pos-api/internal/presentation/http/middleware"
	"github.com/akfoods/pos-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Cart     *handler.CartHandler
	Bill     *handler.BillHandler
	Menu     *handler.MenuHandler
	Expense  *handler.ExpenseHandler
	Report   *handler.ReportHandler
	Settings *handler.SettingsHandler
	User     *handler.UserHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
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

	// Uploaded menu images are served straight off local disk
	router.Static("/uploads", deps.Cfg.Storage.Path)

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
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Carts (one per terminal)
	registerCartRoutes(protected, h, deps)

	// Bills
	registerBillRoutes(protected, h)

	// Menu
	registerMenuRoutes(protected, h)

	// Expenses
	registerExpenseRoutes(protected, h)

	// Reports (Admin)
	registerReportRoutes(protected, h)

	// Settings
	registerSettingsRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)

	// Printer
	registerPrinterRoutes(protected, h)
}

func registerCartRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	carts := protected.Group("/carts/:terminal")
	{
		carts.GET("", h.Cart.Get)
		carts.POST("/items", h.Cart.AddItem)
		carts.DELETE("/items/:item_id", h.Cart.RemoveItem)
		carts.PUT("/items/:item_id/quantity", h.Cart.UpdateQuantity)
		carts.PUT("/items/:item_id/note", h.Cart.UpdateNote)
		carts.PUT("/items/:item_id/extra-charge", h.Cart.UpdateExtraCharge)
		carts.PUT("/order", h.Cart.UpdateOrder)
		carts.DELETE("", h.Cart.Clear)
		// Checkout uses idempotency middleware to prevent duplicate bills
		carts.POST("/checkout", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Cart.Checkout)
	}
}

func registerBillRoutes(protected *gin.RouterGroup, h *Handlers) {
	bills := protected.Group("/bills")
	{
		bills.GET("", h.Bill.List)
		bills.GET("/:id", h.Bill.Get)
		bills.POST("/:id/reprint", h.Bill.Reprint)
		bills.POST("/:id/reprint-kot", h.Bill.ReprintKOT)
	}
}

func registerMenuRoutes(protected *gin.RouterGroup, h *Handlers) {
	menu := protected.Group("/menu")
	{
		menu.GET("/items", h.Menu.List)
		menu.GET("/items/:id", h.Menu.Get)
		menu.PUT("/items/:id/availability", h.Menu.SetAvailability)
		menu.GET("/categories", h.Menu.ListCategories)

		// Menu edits are restricted to admins
		admin := menu.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/items", h.Menu.Create)
			admin.PUT("/items/:id", h.Menu.Update)
			admin.DELETE("/items/:id", h.Menu.Delete)
			admin.POST("/items/:id/image", h.Menu.UploadImage)
			admin.POST("/categories", h.Menu.CreateCategory)
			admin.PUT("/categories/:id", h.Menu.UpdateCategory)
			admin.DELETE("/categories/:id", h.Menu.DeleteCategory)
		}
	}
}

func registerExpenseRoutes(protected *gin.RouterGroup, h *Handlers) {
	expenses := protected.Group("/expenses")
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.GET("/categories", h.Expense.ListCategories)
		expenses.POST("/categories", middleware.RequireAdmin(), h.Expense.CreateCategory)
		expenses.GET("/:id", h.Expense.Get)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", middleware.RequireAdmin(), h.Expense.Delete)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	reports.Use(middleware.RequireAdmin())
	{
		reports.GET("/day", h.Report.DaySummary)
		reports.GET("/range", h.Report.RangeSummary)
		reports.GET("/hourly", h.Report.HourlySales)
		reports.GET("/top-items", h.Report.TopItems)
		reports.POST("/day/email", h.Report.SendDailySummary)
	}
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", middleware.RequireAdmin(), h.Settings.Update)
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireAdmin())
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.Status)
		printerGroup.POST("/test", middleware.RequireAdmin(), h.Printer.TestPrint)
	}
}
