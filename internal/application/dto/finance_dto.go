package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
)

// PlanRequest parâmetros de parcelamento.
type PlanRequest struct {
	Installments int       `json:"installments"`
	FirstDue     time.Time `json:"first_due" validate:"required"`
	IntervalDays int       `json:"interval_days"`
}

// CreateDocumentRequest entrada de criação manual de título.
type CreateDocumentRequest struct {
	Type                    string          `json:"type" validate:"required,oneof=CR CP"`
	Description             string          `json:"description" validate:"required"`
	TotalAmount             decimal.Decimal `json:"total_amount"`
	CustomerID              *string         `json:"customer_id"`
	SupplierName            string          `json:"supplier_name"`
	Plan                    PlanRequest     `json:"plan"`
	ExpenseCategoryID       *string         `json:"expense_category_id"`
	ExpenseCategoryParentID *string         `json:"expense_category_parent_id"`
}

// GenerateFromOriginRequest geração de título a partir de pedido ou entrada
// de estoque.
type GenerateFromOriginRequest struct {
	Plan                    PlanRequest `json:"plan"`
	SupplierName            string      `json:"supplier_name"`
	ExpenseCategoryID       *string     `json:"expense_category_id"`
	ExpenseCategoryParentID *string     `json:"expense_category_parent_id"`
}

// SettleRequest baixa de parcela: conta ou rótulo do meio de pagamento.
type SettleRequest struct {
	PaidAt    time.Time `json:"paid_at" validate:"required"`
	AccountID string    `json:"account_id"`
	Method    string    `json:"method"`
}

// EntryResponse parcela com status de exibição.
type EntryResponse struct {
	ID            string          `json:"id"`
	DocumentID    *string         `json:"document_id,omitempty"`
	CustomerID    *string         `json:"customer_id,omitempty"`
	Type          string          `json:"type"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"due_date"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Status        string          `json:"status"`
}

// EntryListResponse lista de parcelas.
type EntryListResponse struct {
	Items []EntryResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// DocumentResponse título com parcelas.
type DocumentResponse struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Description  string          `json:"description"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	CustomerID   *string         `json:"customer_id,omitempty"`
	SupplierName string          `json:"supplier_name,omitempty"`
	OriginType   *string         `json:"origin_type,omitempty"`
	OriginID     *string         `json:"origin_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	Entries      []EntryResponse `json:"entries"`
}

// DocumentListResponse lista paginada de títulos.
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// BalanceResponse saldo de uma conta.
type BalanceResponse struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

// ToEntryResponse converte parcela + status para a resposta.
func ToEntryResponse(e *entity.LedgerEntry, status string) EntryResponse {
	return EntryResponse{
		ID:            e.ID,
		DocumentID:    e.DocumentID,
		CustomerID:    e.CustomerID,
		Type:          e.Type,
		Description:   e.Description,
		Amount:        e.Amount,
		DueDate:       e.DueDate,
		PaidAt:        e.PaidAt,
		PaymentMethod: e.PaymentMethod,
		Status:        status,
	}
}

// ToDocumentResponse converte o título para a resposta. Status das parcelas
// é calculado pelo chamador (depende de "hoje").
func ToDocumentResponse(d *entity.FinanceDocument, entryStatus func(*entity.LedgerEntry) string) *DocumentResponse {
	resp := &DocumentResponse{
		ID:           d.ID,
		Type:         d.Type,
		Description:  d.Description,
		TotalAmount:  d.TotalAmount,
		Status:       d.Status,
		CustomerID:   d.CustomerID,
		SupplierName: d.SupplierName,
		OriginType:   d.OriginType,
		OriginID:     d.OriginID,
		CreatedAt:    d.CreatedAt,
		Entries:      make([]EntryResponse, 0, len(d.Entries)),
	}
	for _, e := range d.Entries {
		resp.Entries = append(resp.Entries, ToEntryResponse(e, entryStatus(e)))
	}
	return resp
}
