package repository

import (
	"time"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
)

// EventRepository porta de persistência da agenda.
type EventRepository interface {
	Create(event *entity.Event) error
	GetByID(id string) (*entity.Event, error)
	Update(event *entity.Event) error
	// ListBetween eventos com início dentro do período, ordenados por início.
	ListBetween(start, end time.Time) ([]*entity.Event, error)
	Delete(id string) error
}
