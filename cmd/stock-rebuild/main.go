package main

import (
	"context"
	"time"

	"github.com/gestaoplug/erp-api/internal/application/inventory"
	"github.com/gestaoplug/erp-api/internal/infrastructure/postgres"
	"github.com/gestaoplug/erp-api/pkg/config"
	"github.com/gestaoplug/erp-api/pkg/logger"
)

// Recalcula o estoque de todos os produtos em uma única transação.
// Pensado para rodar sob demanda ou agendado (cron).
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	orderRepo := postgres.NewSalesOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	reconciler := inventory.NewReconciler(productRepo, movementRepo, orderRepo, txRunner, log)

	changed, err := reconciler.RebuildAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("rebuild de estoque")
	}

	log.Info().Int("changed", changed).Msg("rebuild de estoque concluído")
}
