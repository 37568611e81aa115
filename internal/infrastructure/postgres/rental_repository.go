package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestaoplug/erp-api/internal/domain"
	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
)

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

const reservationColumns = `id, product_id, customer_id, quantity, start_date, end_date,
	status, daily_rate, deposit, notes, created_at, updated_at`

// ReservationRepo implementação de ReservationRepository sobre PostgreSQL.
type ReservationRepo struct {
	q Querier
}

func NewReservationRepository(q Querier) *ReservationRepo {
	return &ReservationRepo{q: q}
}

func (r *ReservationRepo) Create(res *entity.Reservation) error {
	query := `
		INSERT INTO rental_reservations (id, product_id, customer_id, quantity, start_date, end_date,
			status, daily_rate, deposit, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		res.ID, res.ProductID, res.CustomerID, res.Quantity, res.StartDate, res.EndDate,
		res.Status, res.DailyRate, res.Deposit, res.Notes, res.CreatedAt, res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

func (r *ReservationRepo) GetByID(id string) (*entity.Reservation, error) {
	var res entity.Reservation
	err := r.q.QueryRow(context.Background(),
		`SELECT `+reservationColumns+` FROM rental_reservations WHERE id = $1`, id).
		Scan(&res.ID, &res.ProductID, &res.CustomerID, &res.Quantity, &res.StartDate, &res.EndDate,
			&res.Status, &res.DailyRate, &res.Deposit, &res.Notes, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}
	return &res, nil
}

func (r *ReservationRepo) Update(res *entity.Reservation) error {
	query := `
		UPDATE rental_reservations SET quantity = $2, start_date = $3, end_date = $4,
			status = $5, daily_rate = $6, deposit = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		res.ID, res.Quantity, res.StartDate, res.EndDate,
		res.Status, res.DailyRate, res.Deposit, res.Notes, res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	return nil
}

// List reservas, opcionalmente por status, mais recentes primeiro.
func (r *ReservationRepo) List(status string, limit, offset int) ([]*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM rental_reservations`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1 ORDER BY start_date DESC, id LIMIT $2 OFFSET $3`
		args = append(args, status, limit, offset)
	} else {
		query += ` ORDER BY start_date DESC, id LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var out []*entity.Reservation
	for rows.Next() {
		var res entity.Reservation
		err := rows.Scan(&res.ID, &res.ProductID, &res.CustomerID, &res.Quantity, &res.StartDate, &res.EndDate,
			&res.Status, &res.DailyRate, &res.Deposit, &res.Notes, &res.CreatedAt, &res.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		out = append(out, &res)
	}
	return out, rows.Err()
}

func (r *ReservationRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM rental_reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
