package repository

import (
	"github.com/shopspring/decimal"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
)

// ProductRepository porta de persistência de Product.
// UpdateCurrentStock é uso exclusivo do reconciliador de estoque.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateCurrentStock(productID string, qty decimal.Decimal) error
	List(limit, offset int) ([]*entity.Product, error)
	Search(term string, limit, offset int) ([]*entity.Product, error)
	// ListIDsForUpdate lista todos os ids com bloqueio de linha (FOR UPDATE).
	// Só faz sentido dentro de uma transação (rebuild administrativo).
	ListIDsForUpdate() ([]string, error)
	Delete(id string) error
}
