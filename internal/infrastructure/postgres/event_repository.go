package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gestaoplug/erp-api/internal/domain"
	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

const eventColumns = `id, title, description, starts_at, ends_at, customer_id, location, created_at, updated_at`

// EventRepo implementação de EventRepository sobre PostgreSQL.
type EventRepo struct {
	q Querier
}

func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

func (r *EventRepo) Create(e *entity.Event) error {
	query := `
		INSERT INTO schedule_events (id, title, description, starts_at, ends_at, customer_id, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Title, e.Description, e.StartsAt, e.EndsAt, e.CustomerID, e.Location, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventRepo) GetByID(id string) (*entity.Event, error) {
	var e entity.Event
	err := r.q.QueryRow(context.Background(),
		`SELECT `+eventColumns+` FROM schedule_events WHERE id = $1`, id).
		Scan(&e.ID, &e.Title, &e.Description, &e.StartsAt, &e.EndsAt, &e.CustomerID, &e.Location, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}
	return &e, nil
}

func (r *EventRepo) Update(e *entity.Event) error {
	query := `
		UPDATE schedule_events SET title = $2, description = $3, starts_at = $4, ends_at = $5,
			customer_id = $6, location = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Title, e.Description, e.StartsAt, e.EndsAt, e.CustomerID, e.Location, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func (r *EventRepo) ListBetween(start, end time.Time) ([]*entity.Event, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+eventColumns+` FROM schedule_events WHERE starts_at >= $1 AND starts_at < $2 ORDER BY starts_at, id`,
		start, end)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []*entity.Event
	for rows.Next() {
		var e entity.Event
		err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.StartsAt, &e.EndsAt, &e.CustomerID, &e.Location, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (r *EventRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM schedule_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
