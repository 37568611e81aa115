package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
)

// CashbookFilter filtros do extrato (livro-caixa): só parcelas pagas.
type CashbookFilter struct {
	PaymentMethod string // nome da conta; vazio = todas
	Start         *time.Time
	End           *time.Time
}

// LedgerEntryRepository porta de persistência de LedgerEntry.
type LedgerEntryRepository interface {
	Create(entry *entity.LedgerEntry) error
	GetByID(id string) (*entity.LedgerEntry, error)
	Update(entry *entity.LedgerEntry) error
	// Settle grava baixa: pago_em e meio de pagamento, sem guarda de re-baixa
	// (re-baixar sobrescreve os dados de pagamento).
	Settle(id string, paidAt time.Time, paymentMethod string) error
	ListByDocument(documentID string) ([]*entity.LedgerEntry, error)
	// ListByType lista parcelas de um tipo (CR/CP) ordenadas por
	// vencida < vence hoje < em aberto < paga, depois vencimento e id.
	ListByType(docType string, today time.Time, limit, offset int) ([]*entity.LedgerEntry, error)
	Cashbook(filter CashbookFilter) ([]*entity.LedgerEntry, error)
	// SumPaidByMethod soma parcelas pagas de um tipo casadas pelo meio de
	// pagamento (nome da conta).
	SumPaidByMethod(paymentMethod, docType string) (decimal.Decimal, error)
	Delete(id string) error
}
