package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestaoplug/erp-api/internal/application/dto"
	"github.com/gestaoplug/erp-api/internal/domain"
	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
)

// ScheduleUseCase compromissos da agenda.
type ScheduleUseCase struct {
	repo repository.EventRepository
}

func NewScheduleUseCase(repo repository.EventRepository) *ScheduleUseCase {
	return &ScheduleUseCase{repo: repo}
}

// Create cria um compromisso. Sem fim informado assume uma hora de duração.
func (uc *ScheduleUseCase) Create(in dto.CreateEventRequest) (*dto.EventResponse, error) {
	endsAt := in.EndsAt
	if endsAt.IsZero() {
		endsAt = in.StartsAt.Add(time.Hour)
	}
	if endsAt.Before(in.StartsAt) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	event := &entity.Event{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		StartsAt:    in.StartsAt,
		EndsAt:      endsAt,
		CustomerID:  in.CustomerID,
		Location:    in.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(event); err != nil {
		return nil, err
	}
	return dto.ToEventResponse(event), nil
}

// ListBetween compromissos do período.
func (uc *ScheduleUseCase) ListBetween(start, end time.Time) ([]dto.EventResponse, error) {
	if !end.After(start) {
		return nil, domain.ErrInvalidInput
	}
	events, err := uc.repo.ListBetween(start, end)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, *dto.ToEventResponse(e))
	}
	return out, nil
}

// Delete exclui um compromisso.
func (uc *ScheduleUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
