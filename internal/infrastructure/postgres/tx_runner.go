package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appfinance "github.com/gestaoplug/erp-api/internal/application/finance"
	"github.com/gestaoplug/erp-api/internal/application/inventory"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
)

// Garante que TxRunner implementa as portas transacionais.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ appfinance.FinanceTxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação com os repositórios do reconciliador de estoque
// e faz Commit ou Rollback. Usado pelo rebuild administrativo (os bloqueios
// FOR UPDATE de ProductRepository.ListIDsForUpdate vivem nesta transação).
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	orderRepo repository.SalesOrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	movRepo := NewStockMovementRepository(tx)
	orderRepo := NewSalesOrderRepository(tx)

	if err := fn(productRepo, movRepo, orderRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunFinance inicia uma transação com os repositórios financeiros: a criação
// de documento + parcelas é atômica (ou existe tudo, ou nada).
func (r *TxRunner) RunFinance(ctx context.Context, fn func(
	docRepo repository.FinanceDocumentRepository,
	entryRepo repository.LedgerEntryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	docRepo := NewFinanceDocumentRepository(tx)
	entryRepo := NewLedgerEntryRepository(tx)

	if err := fn(docRepo, entryRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
