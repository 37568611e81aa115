package repository

import "github.com/gestaoplug/erp-api/internal/domain/entity"

// FinanceDocumentRepository porta de persistência de FinanceDocument.
// As parcelas (LedgerEntry) ficam em LedgerEntryRepository; a exclusão de um
// documento cascateia as parcelas no banco.
type FinanceDocumentRepository interface {
	Create(doc *entity.FinanceDocument) error
	GetByID(id string) (*entity.FinanceDocument, error)
	UpdateStatus(id, status string) error
	List(docType string, limit, offset int) ([]*entity.FinanceDocument, error)
	Delete(id string) error
	// ExistsForOrigin pré-checagem de duplicidade por (origem, tipo).
	ExistsForOrigin(originType, originID, docType string) (bool, error)
}
