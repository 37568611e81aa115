package repository

import "github.com/gestaoplug/erp-api/internal/domain/entity"

// ExpenseCategoryRepository porta de persistência de ExpenseCategory
// (árvore de dois níveis; (name, parent) único).
type ExpenseCategoryRepository interface {
	Create(category *entity.ExpenseCategory) error
	GetByID(id string) (*entity.ExpenseCategory, error)
	List() ([]*entity.ExpenseCategory, error)
	ListChildren(parentID string) ([]*entity.ExpenseCategory, error)
	Delete(id string) error
}
