package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status do orçamento.
const (
	QuoteStatusDraft    = "draft"
	QuoteStatusSent     = "sent"
	QuoteStatusApproved = "approved"
	QuoteStatusRejected = "rejected"
	QuoteStatusCanceled = "canceled"
	QuoteStatusExpired  = "expired"
)

// ValidQuoteStatus valida o status de orçamento.
func ValidQuoteStatus(status string) bool {
	switch status {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusApproved,
		QuoteStatusRejected, QuoteStatusCanceled, QuoteStatusExpired:
		return true
	}
	return false
}

// Quote orçamento de venda; pode ser convertido uma única vez em pedido
// (OrderID guarda o vínculo).
type Quote struct {
	ID            string
	CustomerID    string
	Status        string
	ValidUntil    *time.Time
	TotalDiscount decimal.Decimal
	Notes         string
	OrderID       *string // pedido gerado pela conversão, se houver
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []*QuoteItem
}

// GrossTotal soma dos subtotais dos itens.
func (q *Quote) GrossTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range q.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// NetTotal total bruto menos desconto.
func (q *Quote) NetTotal() decimal.Decimal {
	return q.GrossTotal().Sub(q.TotalDiscount)
}

// QuoteItem linha do orçamento.
type QuoteItem struct {
	ID          string
	QuoteID     string
	ProductID   *string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// Subtotal quantidade x preço unitário.
func (i *QuoteItem) Subtotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}
