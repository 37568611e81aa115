package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
)

var _ repository.FiscalDocumentRepository = (*FiscalDocumentRepo)(nil)

const fiscalColumns = `id, type, number, series, access_key, status, xml, payload,
	provider_id, order_id, reason, created_at, updated_at`

// FiscalDocumentRepo implementação de FiscalDocumentRepository sobre PostgreSQL.
type FiscalDocumentRepo struct {
	q Querier
}

func NewFiscalDocumentRepository(q Querier) *FiscalDocumentRepo {
	return &FiscalDocumentRepo{q: q}
}

func (r *FiscalDocumentRepo) Create(d *entity.FiscalDocument) error {
	query := `
		INSERT INTO fiscal_documents (id, type, number, series, access_key, status, xml, payload,
			provider_id, order_id, reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Type, d.Number, d.Series, d.AccessKey, d.Status, d.XML, d.Payload,
		d.ProviderID, d.OrderID, d.Reason, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert fiscal document: %w", err)
	}
	return nil
}

func (r *FiscalDocumentRepo) GetByID(id string) (*entity.FiscalDocument, error) {
	var d entity.FiscalDocument
	err := r.q.QueryRow(context.Background(),
		`SELECT `+fiscalColumns+` FROM fiscal_documents WHERE id = $1`, id).
		Scan(&d.ID, &d.Type, &d.Number, &d.Series, &d.AccessKey, &d.Status, &d.XML, &d.Payload,
			&d.ProviderID, &d.OrderID, &d.Reason, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan fiscal document: %w", err)
	}
	return &d, nil
}

// Update grava o retorno do provedor (situação, número, chave, motivo).
func (r *FiscalDocumentRepo) Update(d *entity.FiscalDocument) error {
	query := `
		UPDATE fiscal_documents SET number = $2, access_key = $3, status = $4, xml = $5,
			provider_id = $6, reason = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Number, d.AccessKey, d.Status, d.XML, d.ProviderID, d.Reason, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update fiscal document: %w", err)
	}
	return nil
}

func (r *FiscalDocumentRepo) List(limit, offset int) ([]*entity.FiscalDocument, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+fiscalColumns+` FROM fiscal_documents ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list fiscal documents: %w", err)
	}
	defer rows.Close()

	var out []*entity.FiscalDocument
	for rows.Next() {
		var d entity.FiscalDocument
		err := rows.Scan(&d.ID, &d.Type, &d.Number, &d.Series, &d.AccessKey, &d.Status, &d.XML, &d.Payload,
			&d.ProviderID, &d.OrderID, &d.Reason, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan fiscal document: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}
