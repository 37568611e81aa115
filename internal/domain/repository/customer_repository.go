package repository

import "github.com/gestaoplug/erp-api/internal/domain/entity"

// CustomerRepository porta de persistência de Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByTaxID(taxID string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	List(limit, offset int) ([]*entity.Customer, error)
	Search(term string, limit, offset int) ([]*entity.Customer, error)
	Delete(id string) error
}
