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

var (
	_ repository.AccountRepository       = (*AccountRepo)(nil)
	_ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)
)

// AccountRepo implementação de AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	q Querier
}

func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

func (r *AccountRepo) Create(a *entity.Account) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO accounts (id, name, type, active, created_at) VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Name, a.Type, a.Active, a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	var a entity.Account
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, type, active, created_at FROM accounts WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.Type, &a.Active, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	return &a, nil
}

func (r *AccountRepo) ListActive() ([]*entity.Account, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, type, active, created_at FROM accounts WHERE active ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var out []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.Active, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// Deactivate desativação lógica: a conta some das listagens mas o histórico
// do extrato continua casando pelo nome.
func (r *AccountRepo) Deactivate(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE accounts SET active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate account: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// PaymentMethodRepo implementação de PaymentMethodRepository sobre PostgreSQL.
type PaymentMethodRepo struct {
	q Querier
}

func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

func (r *PaymentMethodRepo) Create(m *entity.PaymentMethod) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO payment_methods (id, name, type, active, created_at) VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.Name, m.Type, m.Active, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

func (r *PaymentMethodRepo) ListActive() ([]*entity.PaymentMethod, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, type, active, created_at FROM payment_methods WHERE active ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()

	var out []*entity.PaymentMethod
	for rows.Next() {
		var m entity.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name, &m.Type, &m.Active, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (r *PaymentMethodRepo) Deactivate(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE payment_methods SET active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate payment method: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
