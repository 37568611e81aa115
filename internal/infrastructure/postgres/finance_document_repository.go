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

var _ repository.FinanceDocumentRepository = (*FinanceDocumentRepo)(nil)

const financeDocColumns = `id, type, description, total_amount, status, customer_id,
	supplier_name, origin_type, origin_id, created_at, updated_at`

// FinanceDocumentRepo implementação de FinanceDocumentRepository sobre PostgreSQL.
// O índice único parcial em (origin_type, origin_id, type) fecha a corrida
// check-then-act que a pré-checagem de duplicidade deixa aberta.
type FinanceDocumentRepo struct {
	q Querier
}

// NewFinanceDocumentRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFinanceDocumentRepository(q Querier) *FinanceDocumentRepo {
	return &FinanceDocumentRepo{q: q}
}

// Create persiste o documento. Retorna ErrDuplicateOrigin se já existir
// documento para a mesma (origem, tipo).
func (r *FinanceDocumentRepo) Create(doc *entity.FinanceDocument) error {
	query := `
		INSERT INTO finance_documents (id, type, description, total_amount, status, customer_id,
			supplier_name, origin_type, origin_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.Type, doc.Description, doc.TotalAmount, doc.Status, doc.CustomerID,
		doc.SupplierName, doc.OriginType, doc.OriginID, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateOrigin
		}
		return fmt.Errorf("insert finance document: %w", err)
	}
	return nil
}

// GetByID obtém o documento com as parcelas.
func (r *FinanceDocumentRepo) GetByID(id string) (*entity.FinanceDocument, error) {
	var d entity.FinanceDocument
	err := r.q.QueryRow(context.Background(),
		`SELECT `+financeDocColumns+` FROM finance_documents WHERE id = $1`, id).Scan(
		&d.ID, &d.Type, &d.Description, &d.TotalAmount, &d.Status, &d.CustomerID,
		&d.SupplierName, &d.OriginType, &d.OriginID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get finance document: %w", err)
	}
	entries, err := NewLedgerEntryRepository(r.q).ListByDocument(d.ID)
	if err != nil {
		return nil, err
	}
	d.Entries = entries
	return &d, nil
}

// UpdateStatus grava o status agregado (derivado das parcelas).
func (r *FinanceDocumentRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE finance_documents SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	return nil
}

// List lista documentos, mais recentes primeiro. Tipo vazio lista todos.
func (r *FinanceDocumentRepo) List(docType string, limit, offset int) ([]*entity.FinanceDocument, error) {
	query := `SELECT ` + financeDocColumns + ` FROM finance_documents`
	args := []any{}
	n := 1
	if docType != "" {
		query += fmt.Sprintf(" WHERE type = $%d", n)
		args = append(args, docType)
		n++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", n, n+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list finance documents: %w", err)
	}
	defer rows.Close()
	var out []*entity.FinanceDocument
	for rows.Next() {
		var d entity.FinanceDocument
		err := rows.Scan(
			&d.ID, &d.Type, &d.Description, &d.TotalAmount, &d.Status, &d.CustomerID,
			&d.SupplierName, &d.OriginType, &d.OriginID, &d.CreatedAt, &d.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan finance document: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// Delete remove o documento; as parcelas cascateiam no banco.
func (r *FinanceDocumentRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM finance_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete finance document: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ExistsForOrigin pré-checagem de duplicidade por (origem, tipo).
func (r *FinanceDocumentRepo) ExistsForOrigin(originType, originID, docType string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(), `
		SELECT EXISTS (
			SELECT 1 FROM finance_documents
			WHERE origin_type = $1 AND origin_id = $2 AND type = $3
		)`,
		originType, originID, docType).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check origin document: %w", err)
	}
	return exists, nil
}
