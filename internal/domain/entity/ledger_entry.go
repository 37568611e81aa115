package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de exibição de uma parcela, calculado em relação a "hoje".
const (
	EntryStatusPaid     = "paid"
	EntryStatusOverdue  = "overdue"
	EntryStatusDueToday = "due_today"
	EntryStatusOpen     = "open"
)

// LedgerEntry parcela de um documento financeiro (ou lançamento avulso).
type LedgerEntry struct {
	ID            string
	DocumentID    *string // nulo em lançamentos avulsos
	CustomerID    *string // CR
	Type          string  // CR, CP
	Description   string
	Amount        decimal.Decimal
	DueDate       time.Time // somente data
	PaidAt        *time.Time
	PaymentMethod string // Pix, Boleto, Cartão ou nome da conta

	// Classificação opcional (CP e, por convenção, CR "Receitas")
	ExpenseCategoryID       *string
	ExpenseCategoryParentID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open indica parcela ainda não paga.
func (e *LedgerEntry) Open() bool { return e.PaidAt == nil }
