package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento financeiro.
const (
	DocTypeReceivable = "CR" // conta a receber
	DocTypePayable    = "CP" // conta a pagar
)

// Status agregado do documento, derivado das parcelas.
const (
	DocStatusOpen     = "open"
	DocStatusPartial  = "partial"
	DocStatusPaid     = "paid"
	DocStatusCanceled = "canceled"
)

// Tipos de origem de documentos gerados a partir de outros registros.
const (
	OriginSalesOrder    = "sales_order"
	OriginStockMovement = "stock_movement"
)

// FinanceDocument título financeiro (CR ou CP) com parcelas (LedgerEntry).
// No máximo um documento por (origem, tipo): pré-checado na geração e
// garantido por índice único parcial no banco.
type FinanceDocument struct {
	ID           string
	Type         string // CR, CP
	Description  string
	TotalAmount  decimal.Decimal
	Status       string  // open, partial, paid, canceled
	CustomerID   *string // CR
	SupplierName string  // CP
	OriginType   *string // sales_order, stock_movement
	OriginID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Entries []*LedgerEntry
}

// InstallmentsTotal soma dos valores das parcelas. Pode divergir de
// TotalAmount em até (n-1) centavos pelo arredondamento independente.
func (d *FinanceDocument) InstallmentsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range d.Entries {
		total = total.Add(e.Amount)
	}
	return total
}
