package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gestaoplug/erp-api/internal/application/auth"
	appfinance "github.com/gestaoplug/erp-api/internal/application/finance"
	appfiscal "github.com/gestaoplug/erp-api/internal/application/fiscal"
	"github.com/gestaoplug/erp-api/internal/application/inventory"
	"github.com/gestaoplug/erp-api/internal/application/sales"
	"github.com/gestaoplug/erp-api/internal/application/usecase"
	infrafiscal "github.com/gestaoplug/erp-api/internal/infrastructure/fiscal"
	infrapdf "github.com/gestaoplug/erp-api/internal/infrastructure/pdf"
	"github.com/gestaoplug/erp-api/internal/infrastructure/postgres"
	httpRouter "github.com/gestaoplug/erp-api/internal/interfaces/http"
	"github.com/gestaoplug/erp-api/pkg/config"
	"github.com/gestaoplug/erp-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewSalesOrderRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	docRepo := postgres.NewFinanceDocumentRepository(pool)
	entryRepo := postgres.NewLedgerEntryRepository(pool)
	categoryRepo := postgres.NewExpenseCategoryRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	methodRepo := postgres.NewPaymentMethodRepository(pool)
	reservationRepo := postgres.NewReservationRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	fiscalRepo := postgres.NewFiscalDocumentRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	reconciler := inventory.NewReconciler(productRepo, movementRepo, orderRepo, txRunner, log)
	inventoryUC := inventory.NewUseCase(productRepo, movementRepo, reconciler)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	orderUC := sales.NewOrderUseCase(orderRepo, customerRepo, reconciler)
	quoteUC := sales.NewQuoteUseCase(quoteRepo, customerRepo, orderUC)
	financeUC := appfinance.NewUseCase(
		docRepo, entryRepo, orderRepo, movementRepo, productRepo, accountRepo,
		txRunner, log,
	)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	accountUC := usecase.NewAccountUseCase(accountRepo, methodRepo)
	rentalUC := usecase.NewRentalUseCase(reservationRepo, productRepo, customerRepo)
	scheduleUC := usecase.NewScheduleUseCase(eventRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)

	// Provedor fiscal: só o stub por enquanto. Um provedor real entra aqui
	// no lugar do MockProvider conforme cfg.Fiscal.Provider.
	xmlBuilder := infrafiscal.NewXMLBuilder(cfg.Fiscal.EmitterName, cfg.Fiscal.EmitterCNPJ, cfg.Fiscal.Env)
	provider := infrafiscal.NewMockProvider(time.Now().UnixNano())
	fiscalUC := appfiscal.NewUseCase(fiscalRepo, orderRepo, customerRepo, xmlBuilder, provider, log)

	carne := infrapdf.NewCarneGenerator(cfg.Fiscal.EmitterName)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GestaoPlug API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		CustomerUC:   customerUC,
		InventoryUC:  inventoryUC,
		Reconciler:   reconciler,
		OrderUC:      orderUC,
		QuoteUC:      quoteUC,
		FinanceUC:    financeUC,
		FiscalUC:     fiscalUC,
		CategoryUC:   categoryUC,
		AccountUC:    accountUC,
		RentalUC:     rentalUC,
		ScheduleUC:   scheduleUC,
		DashboardUC:  dashboardUC,
		AuthUC:       authUC,
		Carne:        carne,
		CustomerRepo: customerRepo,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
