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

var _ repository.ExpenseCategoryRepository = (*ExpenseCategoryRepo)(nil)

// ExpenseCategoryRepo implementação de ExpenseCategoryRepository sobre PostgreSQL.
type ExpenseCategoryRepo struct {
	q Querier
}

func NewExpenseCategoryRepository(q Querier) *ExpenseCategoryRepo {
	return &ExpenseCategoryRepo{q: q}
}

func (r *ExpenseCategoryRepo) Create(c *entity.ExpenseCategory) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO expense_categories (id, name, parent_id) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.ParentID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert expense category: %w", err)
	}
	return nil
}

func (r *ExpenseCategoryRepo) GetByID(id string) (*entity.ExpenseCategory, error) {
	var c entity.ExpenseCategory
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, parent_id FROM expense_categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.ParentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan expense category: %w", err)
	}
	return &c, nil
}

// List todas as categorias: raízes primeiro, depois filhas, por nome.
func (r *ExpenseCategoryRepo) List() ([]*entity.ExpenseCategory, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, parent_id FROM expense_categories ORDER BY parent_id NULLS FIRST, name`)
	if err != nil {
		return nil, fmt.Errorf("list expense categories: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *ExpenseCategoryRepo) ListChildren(parentID string) ([]*entity.ExpenseCategory, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, parent_id FROM expense_categories WHERE parent_id = $1 ORDER BY name`,
		parentID)
	if err != nil {
		return nil, fmt.Errorf("list child categories: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *ExpenseCategoryRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM expense_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ExpenseCategoryRepo) collect(rows pgx.Rows) ([]*entity.ExpenseCategory, error) {
	var out []*entity.ExpenseCategory
	for rows.Next() {
		var c entity.ExpenseCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID); err != nil {
			return nil, fmt.Errorf("scan expense category: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
