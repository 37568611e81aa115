package repository

import (
	"github.com/shopspring/decimal"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
)

// SalesOrderRepository porta de persistência de SalesOrder e seus itens.
type SalesOrderRepository interface {
	Create(order *entity.SalesOrder) error
	GetByID(id string) (*entity.SalesOrder, error)
	Update(order *entity.SalesOrder) error
	List(status string, limit, offset int) ([]*entity.SalesOrder, error)
	Delete(id string) error

	CreateItem(item *entity.SalesOrderItem) error
	GetItem(itemID string) (*entity.SalesOrderItem, error)
	UpdateItem(item *entity.SalesOrderItem) error
	DeleteItem(itemID string) error

	// SumStockAffectingQuantity soma as quantidades do produto em itens de
	// pedidos confirmados/faturados (saída derivada de estoque).
	SumStockAffectingQuantity(productID string) (decimal.Decimal, error)
}
