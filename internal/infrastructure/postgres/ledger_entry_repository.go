package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gestaoplug/erp-api/internal/domain"
	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
)

var _ repository.LedgerEntryRepository = (*LedgerEntryRepo)(nil)

const ledgerColumns = `id, document_id, customer_id, type, description, amount, due_date,
	paid_at, payment_method, expense_category_id, expense_category_parent_id, created_at, updated_at`

// LedgerEntryRepo implementação de LedgerEntryRepository sobre PostgreSQL.
type LedgerEntryRepo struct {
	q Querier
}

// NewLedgerEntryRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewLedgerEntryRepository(q Querier) *LedgerEntryRepo {
	return &LedgerEntryRepo{q: q}
}

// Create persiste uma parcela.
func (r *LedgerEntryRepo) Create(e *entity.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (id, document_id, customer_id, type, description, amount, due_date,
			paid_at, payment_method, expense_category_id, expense_category_parent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.DocumentID, e.CustomerID, e.Type, e.Description, e.Amount, e.DueDate,
		e.PaidAt, e.PaymentMethod, e.ExpenseCategoryID, e.ExpenseCategoryParentID, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

func (r *LedgerEntryRepo) scan(row pgx.Row) (*entity.LedgerEntry, error) {
	var e entity.LedgerEntry
	err := row.Scan(
		&e.ID, &e.DocumentID, &e.CustomerID, &e.Type, &e.Description, &e.Amount, &e.DueDate,
		&e.PaidAt, &e.PaymentMethod, &e.ExpenseCategoryID, &e.ExpenseCategoryParentID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan ledger entry: %w", err)
	}
	return &e, nil
}

// GetByID obtém uma parcela por ID.
func (r *LedgerEntryRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	return r.scan(r.q.QueryRow(context.Background(),
		`SELECT `+ledgerColumns+` FROM ledger_entries WHERE id = $1`, id))
}

// Update atualiza descrição, valor, vencimento e classificação (edição manual).
func (r *LedgerEntryRepo) Update(e *entity.LedgerEntry) error {
	query := `
		UPDATE ledger_entries SET description = $2, amount = $3, due_date = $4,
			expense_category_id = $5, expense_category_parent_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Description, e.Amount, e.DueDate,
		e.ExpenseCategoryID, e.ExpenseCategoryParentID, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ledger entry: %w", err)
	}
	return nil
}

// Settle grava a baixa: pago_em e meio de pagamento. Re-baixar uma parcela já
// paga sobrescreve os dados de pagamento (sem guarda).
func (r *LedgerEntryRepo) Settle(id string, paidAt time.Time, paymentMethod string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE ledger_entries SET paid_at = $2, payment_method = $3, updated_at = now() WHERE id = $1`,
		id, paidAt, paymentMethod,
	)
	if err != nil {
		return fmt.Errorf("settle ledger entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByDocument lista as parcelas de um documento por vencimento.
func (r *LedgerEntryRepo) ListByDocument(documentID string) ([]*entity.LedgerEntry, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+ledgerColumns+` FROM ledger_entries WHERE document_id = $1 ORDER BY due_date, id`,
		documentID)
	if err != nil {
		return nil, fmt.Errorf("list document entries: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// ListByType lista as parcelas de um tipo (CR/CP) ordenadas por
// vencida (0) < vence hoje (1) < em aberto (2) < paga (3), depois
// vencimento e id. Mesma chave de finance.SortRank, calculada no banco.
func (r *LedgerEntryRepo) ListByType(docType string, today time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT `+ledgerColumns+` FROM ledger_entries
		WHERE type = $1
		ORDER BY
			CASE
				WHEN paid_at IS NULL AND due_date < $2 THEN 0
				WHEN paid_at IS NULL AND due_date = $2 THEN 1
				WHEN paid_at IS NULL THEN 2
				ELSE 3
			END,
			due_date, id
		LIMIT $3 OFFSET $4`,
		docType, today, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list entries by type: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// Cashbook extrato: só parcelas pagas, filtradas por meio de pagamento e
// período de pagamento, ordenadas por pago_em e id.
func (r *LedgerEntryRepo) Cashbook(filter repository.CashbookFilter) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE paid_at IS NOT NULL`
	args := []any{}
	n := 1
	if filter.PaymentMethod != "" {
		query += fmt.Sprintf(" AND payment_method = $%d", n)
		args = append(args, filter.PaymentMethod)
		n++
	}
	if filter.Start != nil {
		query += fmt.Sprintf(" AND paid_at >= $%d", n)
		args = append(args, *filter.Start)
		n++
	}
	if filter.End != nil {
		query += fmt.Sprintf(" AND paid_at <= $%d", n)
		args = append(args, *filter.End)
		n++
	}
	query += " ORDER BY paid_at, id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cashbook: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// SumPaidByMethod soma parcelas pagas de um tipo casadas pelo meio de pagamento.
func (r *LedgerEntryRepo) SumPaidByMethod(paymentMethod, docType string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(amount::numeric), 0)
		FROM ledger_entries
		WHERE payment_method = $1 AND type = $2 AND paid_at IS NOT NULL`,
		paymentMethod, docType).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum paid entries: %w", err)
	}
	return total, nil
}

// Delete remove uma parcela.
func (r *LedgerEntryRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM ledger_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ledger entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LedgerEntryRepo) collect(rows pgx.Rows) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		err := rows.Scan(
			&e.ID, &e.DocumentID, &e.CustomerID, &e.Type, &e.Description, &e.Amount, &e.DueDate,
			&e.PaidAt, &e.PaymentMethod, &e.ExpenseCategoryID, &e.ExpenseCategoryParentID, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
