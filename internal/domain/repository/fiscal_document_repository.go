package repository

import "github.com/gestaoplug/erp-api/internal/domain/entity"

// FiscalDocumentRepository porta de persistência dos stubs fiscais.
type FiscalDocumentRepository interface {
	Create(doc *entity.FiscalDocument) error
	GetByID(id string) (*entity.FiscalDocument, error)
	Update(doc *entity.FiscalDocument) error
	List(limit, offset int) ([]*entity.FiscalDocument, error)
}
