package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-ledger/internal/application/analytics"
	"github.com/jhoicas/tienda-ledger/internal/application/b2b"
	"github.com/jhoicas/tienda-ledger/internal/application/billing"
	"github.com/jhoicas/tienda-ledger/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC     *inventory.InventoryUseCase
	ReplenishmentUC *inventory.ReplenishmentUseCase
	SaleUC          *billing.SaleUseCase
	OrderUC         *billing.OrderUseCase
	CashUC          *billing.CashUseCase
	CustomerUC      *billing.CustomerUseCase
	B2BUC           *b2b.B2BUseCase
	DashboardUC     *analytics.DashboardUseCase
	MarginsUC       *analytics.MarginsUseCase
	Sessions        sessionSource
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Todas las rutas de /api requieren Bearer Token; el tenant sale del claim owner_id.
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	managers := RequireRole(RoleOwner, RoleManager)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.InventoryUC)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.ReplenishmentUC)
	products.Get("/", productHandler.List)
	products.Post("/", managers, productHandler.Create)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/replenishment", inventoryHandler.GetReplenishmentList)
	products.Post("/:id/stock", managers, productHandler.AdjustStock)

	// Sales
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)
	sales.Put("/:id", managers, saleHandler.Update)
	sales.Delete("/:id", managers, saleHandler.Cancel)

	// Orders
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Put("/:id", orderHandler.Edit)
	orders.Post("/:id/accept", orderHandler.Accept)
	orders.Post("/:id/confirm", orderHandler.Confirm)
	orders.Post("/:id/cancel", orderHandler.Cancel)

	// Cash
	cash := api.Group("/cash")
	cashHandler := NewCashHandler(deps.CashUC)
	cash.Get("/", cashHandler.List)
	cash.Get("/balance", cashHandler.Balance)
	cash.Post("/", cashHandler.Add)

	// Transactions (entradas de proveedor y bajas)
	transactions := api.Group("/transactions")
	transactions.Get("/", inventoryHandler.ListTransactions)
	transactions.Post("/intake", managers, inventoryHandler.PostIntake)
	transactions.Post("/write-off", managers, inventoryHandler.PostWriteOff)
	transactions.Delete("/:id", managers, inventoryHandler.DeleteTransaction)

	// Customers / Suppliers
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	api.Get("/customers", customerHandler.List)
	api.Post("/customers", customerHandler.Create)
	api.Get("/suppliers", customerHandler.ListSuppliers)
	api.Post("/suppliers", managers, customerHandler.CreateSupplier)

	// B2B
	b2bGroup := api.Group("/b2b", managers)
	b2bHandler := NewB2BHandler(deps.B2BUC)
	b2bGroup.Get("/pending", b2bHandler.Pending)
	b2bGroup.Post("/import", b2bHandler.Import)
	b2bGroup.Post("/reconcile", b2bHandler.Reconcile)

	// Dashboard y analítica
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", managers, dashboardHandler.GetSummary)
	analyticsHandler := NewAnalyticsHandler(deps.MarginsUC)
	api.Get("/analytics/margins", managers, analyticsHandler.GetMargins)

	// Sync
	syncHandler := NewSyncHandler(deps.Sessions)
	api.Get("/sync/status", syncHandler.Status)
	api.Post("/sync/flush", syncHandler.Flush)
}
