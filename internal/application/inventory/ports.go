package inventory

import (
	"context"

	"github.com/gestaoplug/erp-api/internal/domain/repository"
)

// TxRunner executa o callback dentro de uma transação, entregando
// repositórios ligados a ela. Usado pelo rebuild administrativo de estoque.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		orderRepo repository.SalesOrderRepository,
	) error) error
}
