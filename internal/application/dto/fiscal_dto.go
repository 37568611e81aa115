package dto

import (
	"time"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
)

// IssueFiscalRequest emissão de documento fiscal a partir de um pedido faturado.
type IssueFiscalRequest struct {
	OrderID string `json:"order_id" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=nfe nfce nfse"`
	Series  int    `json:"series"`
}

// FiscalDocumentResponse saída de um documento fiscal.
type FiscalDocumentResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Number    *int      `json:"number,omitempty"`
	Series    int       `json:"series"`
	AccessKey string    `json:"access_key,omitempty"`
	Status    string    `json:"status"`
	OrderID   *string   `json:"order_id,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FiscalListResponse lista paginada de documentos fiscais.
type FiscalListResponse struct {
	Items []FiscalDocumentResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}

// ToFiscalDocumentResponse converte a entidade para a resposta.
func ToFiscalDocumentResponse(d *entity.FiscalDocument) *FiscalDocumentResponse {
	return &FiscalDocumentResponse{
		ID:        d.ID,
		Type:      d.Type,
		Number:    d.Number,
		Series:    d.Series,
		AccessKey: d.AccessKey,
		Status:    d.Status,
		OrderID:   d.OrderID,
		Reason:    d.Reason,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
