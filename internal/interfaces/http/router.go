package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billmate-pos/internal/application/alerts"
	"github.com/jhoicas/billmate-pos/internal/application/analytics"
	"github.com/jhoicas/billmate-pos/internal/application/billing"
	"github.com/jhoicas/billmate-pos/internal/application/usecase"
	"github.com/jhoicas/billmate-pos/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	SettingsUC  *usecase.SettingsUseCase
	SaleUC      *billing.SaleUseCase
	CustomerUC  *billing.CustomerUseCase
	DashboardUC *analytics.DashboardUseCase

	AlertEngine   *alerts.Engine
	AlertPoller   *alerts.Poller
	DismissedRepo repository.DismissedAlertRepository
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/frequent", productHandler.ListFrequent)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/categories", productHandler.ListCategories)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/stock", productHandler.AdjustStock)
	products.Delete("/:id", productHandler.Delete)

	// Sales
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/checkout", saleHandler.Checkout)
	sales.Get("/", saleHandler.List)
	sales.Get("/stats/today", saleHandler.TodayStats)
	sales.Get("/top-products", saleHandler.TopProducts)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Post("/:id/refund", saleHandler.Refund)

	// Customers (khata)
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/search", customerHandler.Search)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Get("/:id/history", customerHandler.History)
	customers.Patch("/:id/balance", customerHandler.UpdateBalance)
	customers.Delete("/:id", customerHandler.Delete)

	// Expenses
	expenses := api.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/today/total", expenseHandler.TodayTotal)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Settings
	settings := api.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.GetAll)
	settings.Put("/:key", settingsHandler.Set)

	// Alerts
	alertGroup := api.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertEngine, deps.AlertPoller, deps.DismissedRepo)
	alertGroup.Get("/", alertHandler.List)
	alertGroup.Get("/badge", alertHandler.Badge)
	alertGroup.Post("/:id/dismiss", alertHandler.Dismiss)
	alertGroup.Post("/dismiss-all", alertHandler.DismissAll)
	alertGroup.Post("/clear-dismissed", alertHandler.ClearDismissed)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
