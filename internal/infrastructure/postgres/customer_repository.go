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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, person_type, name, legal_name, tax_id, state_reg, email, phone,
	whatsapp, birth_date, address, city, state, zip_code, active, created_at, updated_at`

// CustomerRepo implementação de CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste um cliente. CPF/CNPJ é único.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, person_type, name, legal_name, tax_id, state_reg, email, phone,
			whatsapp, birth_date, address, city, state, zip_code, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.PersonType, c.Name, c.LegalName, c.TaxID, c.StateReg, c.Email, c.Phone,
		c.WhatsApp, c.BirthDate, c.Address, c.City, c.State, c.ZipCode, c.Active, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) scan(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.PersonType, &c.Name, &c.LegalName, &c.TaxID, &c.StateReg, &c.Email, &c.Phone,
		&c.WhatsApp, &c.BirthDate, &c.Address, &c.City, &c.State, &c.ZipCode, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}
	return &c, nil
}

// GetByID obtém um cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.scan(r.q.QueryRow(context.Background(),
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
}

// GetByTaxID obtém um cliente por CPF/CNPJ.
func (r *CustomerRepo) GetByTaxID(taxID string) (*entity.Customer, error) {
	return r.scan(r.q.QueryRow(context.Background(),
		`SELECT `+customerColumns+` FROM customers WHERE tax_id = $1`, taxID))
}

// Update atualiza um cliente.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	query := `
		UPDATE customers SET person_type = $2, name = $3, legal_name = $4, state_reg = $5,
			email = $6, phone = $7, whatsapp = $8, birth_date = $9, address = $10, city = $11,
			state = $12, zip_code = $13, active = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.PersonType, c.Name, c.LegalName, c.StateReg,
		c.Email, c.Phone, c.WhatsApp, c.BirthDate, c.Address, c.City,
		c.State, c.ZipCode, c.Active, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// List lista clientes com paginação.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+customerColumns+` FROM customers ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// Search busca por nome, razão social ou CPF/CNPJ (case-insensitive).
func (r *CustomerRepo) Search(term string, limit, offset int) ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+customerColumns+` FROM customers
		 WHERE name ILIKE '%' || $1 || '%' OR legal_name ILIKE '%' || $1 || '%' OR tax_id ILIKE '%' || $1 || '%'
		 ORDER BY name LIMIT $2 OFFSET $3`,
		term, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// Delete remove um cliente.
func (r *CustomerRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CustomerRepo) collect(rows pgx.Rows) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		err := rows.Scan(
			&c.ID, &c.PersonType, &c.Name, &c.LegalName, &c.TaxID, &c.StateReg, &c.Email, &c.Phone,
			&c.WhatsApp, &c.BirthDate, &c.Address, &c.City, &c.State, &c.ZipCode, &c.Active, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
