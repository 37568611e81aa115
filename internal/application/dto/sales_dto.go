package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
)

// ItemRequest linha de pedido ou orçamento. Sem product_id a descrição é
// obrigatória (item avulso).
type ItemRequest struct {
	ProductID   *string         `json:"product_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// ItemResponse linha nas respostas.
type ItemResponse struct {
	ID          string          `json:"id"`
	ProductID   *string         `json:"product_id,omitempty"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CreateOrderRequest entrada de criação de pedido.
type CreateOrderRequest struct {
	CustomerID    string          `json:"customer_id" validate:"required"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	Notes         string          `json:"notes"`
	Items         []ItemRequest   `json:"items"`
}

// UpdateOrderRequest entrada de atualização do cabeçalho do pedido.
type UpdateOrderRequest struct {
	TotalDiscount decimal.Decimal `json:"total_discount"`
	Notes         string          `json:"notes"`
}

// ChangeStatusRequest mudança de status de pedido ou orçamento.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderResponse saída de um pedido.
type OrderResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	Status        string          `json:"status"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	GrossTotal    decimal.Decimal `json:"gross_total"`
	NetTotal      decimal.Decimal `json:"net_total"`
	Notes         string          `json:"notes,omitempty"`
	CreatedBy     string          `json:"created_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Items         []ItemResponse  `json:"items"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// CreateQuoteRequest entrada de criação de orçamento.
type CreateQuoteRequest struct {
	CustomerID    string          `json:"customer_id" validate:"required"`
	ValidUntil    *time.Time      `json:"valid_until"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	Notes         string          `json:"notes"`
	Items         []ItemRequest   `json:"items"`
}

// QuoteResponse saída de um orçamento.
type QuoteResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	Status        string          `json:"status"`
	ValidUntil    *time.Time      `json:"valid_until,omitempty"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	GrossTotal    decimal.Decimal `json:"gross_total"`
	NetTotal      decimal.Decimal `json:"net_total"`
	Notes         string          `json:"notes,omitempty"`
	OrderID       *string         `json:"order_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Items         []ItemResponse  `json:"items"`
}

// QuoteListResponse lista paginada de orçamentos.
type QuoteListResponse struct {
	Items []QuoteResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ToOrderResponse converte a entidade para a resposta.
func ToOrderResponse(o *entity.SalesOrder) *OrderResponse {
	resp := &OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		Status:        o.Status,
		TotalDiscount: o.TotalDiscount,
		GrossTotal:    o.GrossTotal(),
		NetTotal:      o.NetTotal(),
		Notes:         o.Notes,
		CreatedBy:     o.CreatedBy,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Items:         make([]ItemResponse, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, ItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal(),
		})
	}
	return resp
}

// ToQuoteResponse converte a entidade para a resposta.
func ToQuoteResponse(q *entity.Quote) *QuoteResponse {
	resp := &QuoteResponse{
		ID:            q.ID,
		CustomerID:    q.CustomerID,
		Status:        q.Status,
		ValidUntil:    q.ValidUntil,
		TotalDiscount: q.TotalDiscount,
		GrossTotal:    q.GrossTotal(),
		NetTotal:      q.NetTotal(),
		Notes:         q.Notes,
		OrderID:       q.OrderID,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
		Items:         make([]ItemResponse, 0, len(q.Items)),
	}
	for _, it := range q.Items {
		resp.Items = append(resp.Items, ItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal(),
		})
	}
	return resp
}
