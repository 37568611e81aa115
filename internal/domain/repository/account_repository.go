package repository

import "github.com/gestaoplug/erp-api/internal/domain/entity"

// AccountRepository porta de persistência de contas financeiras.
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	ListActive() ([]*entity.Account, error)
	Deactivate(id string) error
}

// PaymentMethodRepository porta de persistência de meios de pagamento.
type PaymentMethodRepository interface {
	Create(method *entity.PaymentMethod) error
	ListActive() ([]*entity.PaymentMethod, error)
	Deactivate(id string) error
}
