package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
)

// CreateMovementRequest entrada de registro de movimento de estoque.
// IN exige unit_cost; ADJ aceita quantidade com sinal.
type CreateMovementRequest struct {
	ProductID string           `json:"product_id" validate:"required"`
	Type      string           `json:"type" validate:"required,oneof=IN ADJ"`
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitCost  *decimal.Decimal `json:"unit_cost"`
	Reason    string           `json:"reason"`
}

// MovementResponse saída de um movimento.
type MovementResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"product_id"`
	Type      string           `json:"type"`
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitCost  *decimal.Decimal `json:"unit_cost,omitempty"`
	Reason    string           `json:"reason,omitempty"`
	CreatedBy string           `json:"created_by,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// MovementListResponse lista paginada de movimentos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// RebuildResponse resultado do rebuild administrativo de estoque.
type RebuildResponse struct {
	Changed int `json:"changed"`
}

// StockResponse estoque atual de um produto após recálculo.
type StockResponse struct {
	ProductID    string          `json:"product_id"`
	CurrentStock decimal.Decimal `json:"current_stock"`
}

// ToMovementResponse converte a entidade para a resposta.
func ToMovementResponse(m *entity.StockMovement) *MovementResponse {
	return &MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		UnitCost:  m.UnitCost,
		Reason:    m.Reason,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}
