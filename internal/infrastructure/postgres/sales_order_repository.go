package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gestaoplug/erp-api/internal/domain"
	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
)

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo implementação de SalesOrderRepository sobre PostgreSQL.
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

// Create persiste o pedido e seus itens.
func (r *SalesOrderRepo) Create(o *entity.SalesOrder) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO sales_orders (id, customer_id, status, total_discount, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID, o.CustomerID, o.Status, o.TotalDiscount, o.Notes, o.CreatedBy, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sales order: %w", err)
	}
	for _, it := range o.Items {
		if err := r.CreateItem(it); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtém o pedido com itens.
func (r *SalesOrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	ctx := context.Background()
	var o entity.SalesOrder
	err := r.q.QueryRow(ctx, `
		SELECT id, customer_id, status, total_discount, notes, created_by, created_at, updated_at
		FROM sales_orders WHERE id = $1`, id).Scan(
		&o.ID, &o.CustomerID, &o.Status, &o.TotalDiscount, &o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales order: %w", err)
	}
	items, err := r.listItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// Update atualiza o cabeçalho do pedido (status, desconto, observações).
func (r *SalesOrderRepo) Update(o *entity.SalesOrder) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE sales_orders SET customer_id = $2, status = $3, total_discount = $4, notes = $5, updated_at = $6
		WHERE id = $1`,
		o.ID, o.CustomerID, o.Status, o.TotalDiscount, o.Notes, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sales order: %w", err)
	}
	return nil
}

// List lista pedidos, filtrando por status quando informado.
func (r *SalesOrderRepo) List(status string, limit, offset int) ([]*entity.SalesOrder, error) {
	query := `
		SELECT id, customer_id, status, total_discount, notes, created_by, created_at, updated_at
		FROM sales_orders`
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
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	defer rows.Close()
	var out []*entity.SalesOrder
	for rows.Next() {
		var o entity.SalesOrder
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Status, &o.TotalDiscount, &o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sales order: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

// Delete remove o pedido; os itens cascateiam no banco.
func (r *SalesOrderRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sales_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sales order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateItem persiste um item do pedido.
func (r *SalesOrderRepo) CreateItem(it *entity.SalesOrderItem) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO sales_order_items (id, order_id, product_id, description, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		it.ID, it.OrderID, it.ProductID, it.Description, it.Quantity, it.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetItem obtém um item por ID.
func (r *SalesOrderRepo) GetItem(itemID string) (*entity.SalesOrderItem, error) {
	var it entity.SalesOrderItem
	err := r.q.QueryRow(context.Background(), `
		SELECT id, order_id, product_id, description, quantity, unit_price
		FROM sales_order_items WHERE id = $1`, itemID).Scan(
		&it.ID, &it.OrderID, &it.ProductID, &it.Description, &it.Quantity, &it.UnitPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return &it, nil
}

// UpdateItem atualiza um item do pedido.
func (r *SalesOrderRepo) UpdateItem(it *entity.SalesOrderItem) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE sales_order_items SET product_id = $2, description = $3, quantity = $4, unit_price = $5
		WHERE id = $1`,
		it.ID, it.ProductID, it.Description, it.Quantity, it.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("update order item: %w", err)
	}
	return nil
}

// DeleteItem remove um item do pedido.
func (r *SalesOrderRepo) DeleteItem(itemID string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sales_order_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SumStockAffectingQuantity soma as quantidades do produto em itens de pedidos
// confirmados/faturados, com coerção para numeric.
func (r *SalesOrderRepo) SumStockAffectingQuantity(productID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(i.quantity::numeric), 0)
		FROM sales_order_items i
		JOIN sales_orders o ON o.id = i.order_id
		WHERE i.product_id = $1 AND o.status IN ($2, $3)`,
		productID, entity.OrderStatusConfirmed, entity.OrderStatusInvoiced).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum order items: %w", err)
	}
	return total, nil
}

func (r *SalesOrderRepo) listItems(orderID string) ([]*entity.SalesOrderItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, order_id, product_id, description, quantity, unit_price
		FROM sales_order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var out []*entity.SalesOrderItem
	for rows.Next() {
		var it entity.SalesOrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Description, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}
