package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimento de estoque.
const (
	MovementTypeIn     = "IN"  // entrada com custo unitário
	MovementTypeAdjust = "ADJ" // ajuste manual, quantidade com sinal
)

// StockMovement registra uma entrada ou ajuste contra um produto.
// Imutável depois de criado, exceto exclusão.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // IN, ADJ
	Quantity  decimal.Decimal
	UnitCost  *decimal.Decimal // obrigatório em IN; nulo em ADJ
	Reason    string
	CreatedBy string // UserID
	CreatedAt time.Time
}

// TotalCost retorna quantidade x custo unitário (zero quando não há custo).
func (m *StockMovement) TotalCost() decimal.Decimal {
	if m.UnitCost == nil {
		return decimal.Zero
	}
	return m.Quantity.Mul(*m.UnitCost)
}
