package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
	"github.com/gestaoplug/erp-api/pkg/logger"
)

// Reconciler mantém Product.CurrentStock consistente com as fontes de
// verdade: movimentos de estoque e itens de pedidos confirmados/faturados.
// É o único escritor de current_stock em todo o sistema.
type Reconciler struct {
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
	orderRepo   repository.SalesOrderRepository
	tx          TxRunner
	log         *logger.Logger
}

// NewReconciler constrói o reconciliador.
func NewReconciler(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	orderRepo repository.SalesOrderRepository,
	tx TxRunner,
	log *logger.Logger,
) *Reconciler {
	return &Reconciler{
		productRepo: productRepo,
		movRepo:     movRepo,
		orderRepo:   orderRepo,
		tx:          tx,
		log:         log,
	}
}

// Recompute recalcula o estoque de um produto a partir das fontes:
//
//	estoque = entradas (IN) + ajustes (ADJ) - itens de pedidos confirmados/faturados
//
// Grava só se o valor derivado diferir do armazenado (idempotente) e devolve
// o valor calculado. Produto inexistente não é erro: devolve zero.
func (r *Reconciler) Recompute(productID string) (decimal.Decimal, error) {
	product, err := r.productRepo.GetByID(productID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("load product %s: %w", productID, err)
	}
	if product == nil {
		return decimal.Zero, nil
	}

	qty, err := r.derive(r.movRepo, r.orderRepo, productID)
	if err != nil {
		return decimal.Zero, err
	}

	if !qty.Equal(product.CurrentStock) {
		if err := r.productRepo.UpdateCurrentStock(productID, qty); err != nil {
			return decimal.Zero, fmt.Errorf("store stock for %s: %w", productID, err)
		}
	}
	return qty, nil
}

// derive soma as três fontes com os repositórios recebidos (pool ou tx).
func (r *Reconciler) derive(
	movRepo repository.StockMovementRepository,
	orderRepo repository.SalesOrderRepository,
	productID string,
) (decimal.Decimal, error) {
	in, err := movRepo.SumQuantityByType(productID, entity.MovementTypeIn)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum inbound for %s: %w", productID, err)
	}
	adj, err := movRepo.SumQuantityByType(productID, entity.MovementTypeAdjust)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum adjustments for %s: %w", productID, err)
	}
	out, err := orderRepo.SumStockAffectingQuantity(productID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum order outbound for %s: %w", productID, err)
	}
	return in.Add(adj).Sub(out), nil
}

// RebuildAll recalcula o estoque de todos os produtos numa única transação,
// com bloqueio de linha nos produtos. Devolve quantos produtos tiveram o
// estoque corrigido.
func (r *Reconciler) RebuildAll(ctx context.Context) (int, error) {
	changed := 0
	err := r.tx.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		orderRepo repository.SalesOrderRepository,
	) error {
		ids, err := productRepo.ListIDsForUpdate()
		if err != nil {
			return fmt.Errorf("lock products: %w", err)
		}
		for _, id := range ids {
			product, err := productRepo.GetByID(id)
			if err != nil {
				return fmt.Errorf("load product %s: %w", id, err)
			}
			if product == nil {
				continue
			}
			qty, err := r.derive(movRepo, orderRepo, id)
			if err != nil {
				return err
			}
			if qty.Equal(product.CurrentStock) {
				continue
			}
			if err := productRepo.UpdateCurrentStock(id, qty); err != nil {
				return fmt.Errorf("store stock for %s: %w", id, err)
			}
			changed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	r.log.Info().Int("changed", changed).Msg("estoque reconstruído")
	return changed, nil
}

// Trigger recalcula em resposta a uma escrita (movimento, item de pedido,
// mudança de status). Falha de recálculo nunca derruba a operação que o
// disparou: o erro é registrado e absorvido; o rebuild administrativo corrige.
func (r *Reconciler) Trigger(productID string) {
	if productID == "" {
		return
	}
	if _, err := r.Recompute(productID); err != nil {
		r.log.Error().Err(err).Str("product_id", productID).Msg("falha ao recalcular estoque")
	}
}

// TriggerMany dispara o recálculo para um conjunto de produtos, uma vez cada.
func (r *Reconciler) TriggerMany(productIDs []string) {
	seen := make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		r.Trigger(id)
	}
}
