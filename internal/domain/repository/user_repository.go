package repository

import "github.com/gestaoplug/erp-api/internal/domain/entity"

// UserRepository porta de persistência de User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
