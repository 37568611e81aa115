package repository

import "github.com/gestaoplug/erp-api/internal/domain/entity"

// ReservationRepository porta de persistência de reservas de locação.
type ReservationRepository interface {
	Create(res *entity.Reservation) error
	GetByID(id string) (*entity.Reservation, error)
	Update(res *entity.Reservation) error
	List(status string, limit, offset int) ([]*entity.Reservation, error)
	Delete(id string) error
}
