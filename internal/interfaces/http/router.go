package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaoplug/erp-api/internal/application/auth"
	"github.com/gestaoplug/erp-api/internal/application/finance"
	"github.com/gestaoplug/erp-api/internal/application/fiscal"
	"github.com/gestaoplug/erp-api/internal/application/inventory"
	"github.com/gestaoplug/erp-api/internal/application/sales"
	"github.com/gestaoplug/erp-api/internal/application/usecase"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
	"github.com/gestaoplug/erp-api/internal/infrastructure/pdf"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	CustomerUC   *usecase.CustomerUseCase
	InventoryUC  *inventory.UseCase
	Reconciler   *inventory.Reconciler
	OrderUC      *sales.OrderUseCase
	QuoteUC      *sales.QuoteUseCase
	FinanceUC    *finance.UseCase
	FiscalUC     *fiscal.UseCase
	CategoryUC   *usecase.CategoryUseCase
	AccountUC    *usecase.AccountUseCase
	RentalUC     *usecase.RentalUseCase
	ScheduleUC   *usecase.ScheduleUseCase
	DashboardUC  *usecase.DashboardUseCase
	AuthUC       *auth.AuthUseCase
	Carne        *pdf.CarneGenerator
	CustomerRepo repository.CustomerRepository
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido) + movimentos e recálculo por produto
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.Reconciler)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/movements", inventoryHandler.ListMovements)
	products.Post("/:id/recompute", inventoryHandler.RecomputeStock)

	// Inventory movements (protegido)
	financeHandler := NewFinanceHandler(deps.FinanceUC, deps.Carne, deps.CustomerRepo)
	invGroup := protected.Group("/inventory")
	invGroup.Post("/movements", inventoryHandler.CreateMovement)
	invGroup.Delete("/movements/:id", inventoryHandler.DeleteMovement)
	invGroup.Post("/movements/:id/payable", financeHandler.GeneratePayable)
	invGroup.Post("/rebuild", AdminOnly(), inventoryHandler.RebuildAll)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Sales orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Post("/:id/status", orderHandler.ChangeStatus)
	orders.Post("/:id/items", orderHandler.AddItem)
	orders.Put("/items/:itemId", orderHandler.UpdateItem)
	orders.Delete("/items/:itemId", orderHandler.RemoveItem)
	orders.Post("/:id/receivable", financeHandler.GenerateReceivable)

	// Quotes (protegido)
	quotes := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Delete("/:id", quoteHandler.Delete)
	quotes.Post("/:id/status", quoteHandler.ChangeStatus)
	quotes.Post("/:id/convert", quoteHandler.ConvertToOrder)
	quotes.Post("/:id/items", quoteHandler.AddItem)
	quotes.Put("/items/:itemId", quoteHandler.UpdateItem)
	quotes.Delete("/items/:itemId", quoteHandler.RemoveItem)

	// Finance (protegido)
	fin := protected.Group("/finance")
	fin.Post("/documents", financeHandler.CreateDocument)
	fin.Get("/documents", financeHandler.ListDocuments)
	fin.Get("/documents/:id", financeHandler.GetDocument)
	fin.Delete("/documents/:id", AdminOnly(), financeHandler.DeleteDocument)
	fin.Get("/documents/:id/carne", financeHandler.Carne)
	fin.Get("/entries", financeHandler.ListEntries)
	fin.Post("/entries/:id/settle", financeHandler.SettleEntry)
	fin.Post("/entries/:id/reopen", financeHandler.ReopenEntry)
	fin.Get("/cashbook", financeHandler.Cashbook)

	// Fiscal (protegido)
	fiscalGroup := protected.Group("/fiscal")
	fiscalHandler := NewFiscalHandler(deps.FiscalUC)
	fiscalGroup.Post("/documents", fiscalHandler.Issue)
	fiscalGroup.Get("/documents", fiscalHandler.List)
	fiscalGroup.Get("/documents/:id", fiscalHandler.GetByID)

	// Expense categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Delete("/:id", categoryHandler.Delete)

	// Accounts e payment methods (protegido)
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts := protected.Group("/accounts")
	accounts.Post("/", accountHandler.CreateAccount)
	accounts.Get("/", accountHandler.ListAccounts)
	accounts.Delete("/:id", accountHandler.DeactivateAccount)
	accounts.Get("/:id/balance", financeHandler.AccountBalance)
	methods := protected.Group("/payment-methods")
	methods.Post("/", accountHandler.CreatePaymentMethod)
	methods.Get("/", accountHandler.ListPaymentMethods)
	methods.Delete("/:id", accountHandler.DeactivatePaymentMethod)

	// Rentals (protegido)
	rentals := protected.Group("/rentals")
	rentalHandler := NewRentalHandler(deps.RentalUC)
	rentals.Post("/", rentalHandler.Create)
	rentals.Get("/", rentalHandler.List)
	rentals.Get("/:id", rentalHandler.GetByID)
	rentals.Delete("/:id", rentalHandler.Delete)
	rentals.Post("/:id/status", rentalHandler.ChangeStatus)

	// Schedule (protegido)
	schedule := protected.Group("/schedule")
	scheduleHandler := NewScheduleHandler(deps.ScheduleUC)
	schedule.Post("/events", scheduleHandler.Create)
	schedule.Get("/events", scheduleHandler.ListBetween)
	schedule.Delete("/events/:id", scheduleHandler.Delete)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Totals)
}
