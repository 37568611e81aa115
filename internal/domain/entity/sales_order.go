package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status do pedido de venda.
const (
	OrderStatusDraft     = "draft"
	OrderStatusConfirmed = "confirmed"
	OrderStatusInvoiced  = "invoiced"
	OrderStatusCanceled  = "canceled"
)

// OrderStatusAffectsStock indica se os itens do pedido contam como saída de estoque.
func OrderStatusAffectsStock(status string) bool {
	return status == OrderStatusConfirmed || status == OrderStatusInvoiced
}

// ValidOrderStatus valida o status de pedido.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusDraft, OrderStatusConfirmed, OrderStatusInvoiced, OrderStatusCanceled:
		return true
	}
	return false
}

// SalesOrder é um pedido de venda. Itens de pedidos confirmed/invoiced
// entram como saída no cálculo de estoque dos produtos.
type SalesOrder struct {
	ID            string
	CustomerID    string
	Status        string
	TotalDiscount decimal.Decimal
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []*SalesOrderItem
}

// GrossTotal soma dos subtotais dos itens.
func (o *SalesOrder) GrossTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// NetTotal total bruto menos desconto.
func (o *SalesOrder) NetTotal() decimal.Decimal {
	return o.GrossTotal().Sub(o.TotalDiscount)
}

// SalesOrderItem linha do pedido: quantidade x preço unitário, opcionalmente
// vinculada a um produto (itens avulsos só têm descrição).
type SalesOrderItem struct {
	ID          string
	OrderID     string
	ProductID   *string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// Subtotal quantidade x preço unitário.
func (i *SalesOrderItem) Subtotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}
