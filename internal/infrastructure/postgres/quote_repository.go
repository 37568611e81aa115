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

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementação de QuoteRepository sobre PostgreSQL.
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// Create persiste o orçamento e seus itens.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO quotes (id, customer_id, status, valid_until, total_discount, notes, order_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		quote.ID, quote.CustomerID, quote.Status, quote.ValidUntil, quote.TotalDiscount,
		quote.Notes, quote.OrderID, quote.CreatedBy, quote.CreatedAt, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	for _, it := range quote.Items {
		if err := r.CreateItem(it); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtém o orçamento com itens.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	var q entity.Quote
	err := r.q.QueryRow(context.Background(), `
		SELECT id, customer_id, status, valid_until, total_discount, notes, order_id, created_by, created_at, updated_at
		FROM quotes WHERE id = $1`, id).Scan(
		&q.ID, &q.CustomerID, &q.Status, &q.ValidUntil, &q.TotalDiscount,
		&q.Notes, &q.OrderID, &q.CreatedBy, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	items, err := r.listItems(q.ID)
	if err != nil {
		return nil, err
	}
	q.Items = items
	return &q, nil
}

// Update atualiza o cabeçalho do orçamento.
func (r *QuoteRepo) Update(quote *entity.Quote) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE quotes SET customer_id = $2, status = $3, valid_until = $4, total_discount = $5, notes = $6, updated_at = $7
		WHERE id = $1`,
		quote.ID, quote.CustomerID, quote.Status, quote.ValidUntil, quote.TotalDiscount, quote.Notes, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	return nil
}

// SetOrderID grava o vínculo com o pedido gerado na conversão.
func (r *QuoteRepo) SetOrderID(quoteID, orderID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE quotes SET order_id = $2, updated_at = now() WHERE id = $1`,
		quoteID, orderID,
	)
	if err != nil {
		return fmt.Errorf("set quote order: %w", err)
	}
	return nil
}

// List lista orçamentos, filtrando por status quando informado.
func (r *QuoteRepo) List(status string, limit, offset int) ([]*entity.Quote, error) {
	query := `
		SELECT id, customer_id, status, valid_until, total_discount, notes, order_id, created_by, created_at, updated_at
		FROM quotes`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, status, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()
	var out []*entity.Quote
	for rows.Next() {
		var q entity.Quote
		if err := rows.Scan(&q.ID, &q.CustomerID, &q.Status, &q.ValidUntil, &q.TotalDiscount, &q.Notes, &q.OrderID, &q.CreatedBy, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		out = append(out, &q)
	}
	return out, rows.Err()
}

// Delete remove o orçamento; os itens cascateiam no banco.
func (r *QuoteRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateItem persiste um item do orçamento.
func (r *QuoteRepo) CreateItem(it *entity.QuoteItem) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO quote_items (id, quote_id, product_id, description, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		it.ID, it.QuoteID, it.ProductID, it.Description, it.Quantity, it.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert quote item: %w", err)
	}
	return nil
}

// GetItem obtém um item por ID.
func (r *QuoteRepo) GetItem(itemID string) (*entity.QuoteItem, error) {
	var it entity.QuoteItem
	err := r.q.QueryRow(context.Background(), `
		SELECT id, quote_id, product_id, description, quantity, unit_price
		FROM quote_items WHERE id = $1`, itemID).Scan(
		&it.ID, &it.QuoteID, &it.ProductID, &it.Description, &it.Quantity, &it.UnitPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote item: %w", err)
	}
	return &it, nil
}

// UpdateItem atualiza um item do orçamento.
func (r *QuoteRepo) UpdateItem(it *entity.QuoteItem) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE quote_items SET product_id = $2, description = $3, quantity = $4, unit_price = $5
		WHERE id = $1`,
		it.ID, it.ProductID, it.Description, it.Quantity, it.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("update quote item: %w", err)
	}
	return nil
}

// DeleteItem remove um item do orçamento.
func (r *QuoteRepo) DeleteItem(itemID string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM quote_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete quote item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *QuoteRepo) listItems(quoteID string) ([]*entity.QuoteItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, quote_id, product_id, description, quantity, unit_price
		FROM quote_items WHERE quote_id = $1 ORDER BY id`, quoteID)
	if err != nil {
		return nil, fmt.Errorf("list quote items: %w", err)
	}
	defer rows.Close()
	var out []*entity.QuoteItem
	for rows.Next() {
		var it entity.QuoteItem
		if err := rows.Scan(&it.ID, &it.QuoteID, &it.ProductID, &it.Description, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan quote item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}
