package repository

import (
	"github.com/shopspring/decimal"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
)

// StockMovementRepository porta de persistência de StockMovement.
type StockMovementRepository interface {
	Create(mov *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
	Delete(id string) error
	// SumQuantityByType soma as quantidades do produto para um tipo (IN/ADJ),
	// com coerção para numeric no banco.
	SumQuantityByType(productID, movType string) (decimal.Decimal, error)
}
