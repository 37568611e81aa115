package dto

import (
	"time"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
)

// CreateCustomerRequest entrada para criar um cliente (PF ou PJ).
type CreateCustomerRequest struct {
	PersonType string     `json:"person_type" validate:"required,oneof=F J"`
	Name       string     `json:"name" validate:"required,min=1,max=200"`
	LegalName  string     `json:"legal_name"`
	TaxID      string     `json:"tax_id" validate:"required"`
	StateReg   string     `json:"state_reg"`
	Email      string     `json:"email" validate:"omitempty,email"`
	Phone      string     `json:"phone"`
	WhatsApp   string     `json:"whatsapp"`
	BirthDate  *time.Time `json:"birth_date"`
	Address    string     `json:"address"`
	City       string     `json:"city"`
	State      string     `json:"state"`
	ZipCode    string     `json:"zip_code"`
}

// UpdateCustomerRequest entrada para atualizar um cliente.
type UpdateCustomerRequest struct {
	Name      *string    `json:"name" validate:"omitempty,min=1,max=200"`
	LegalName *string    `json:"legal_name"`
	StateReg  *string    `json:"state_reg"`
	Email     *string    `json:"email" validate:"omitempty,email"`
	Phone     *string    `json:"phone"`
	WhatsApp  *string    `json:"whatsapp"`
	BirthDate *time.Time `json:"birth_date"`
	Address   *string    `json:"address"`
	City      *string    `json:"city"`
	State     *string    `json:"state"`
	ZipCode   *string    `json:"zip_code"`
	Active    *bool      `json:"active"`
}

// CustomerResponse saída de um cliente.
type CustomerResponse struct {
	ID         string     `json:"id"`
	PersonType string     `json:"person_type"`
	Name       string     `json:"name"`
	LegalName  string     `json:"legal_name,omitempty"`
	TaxID      string     `json:"tax_id"`
	StateReg   string     `json:"state_reg,omitempty"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	WhatsApp   string     `json:"whatsapp,omitempty"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`
	Address    string     `json:"address,omitempty"`
	City       string     `json:"city,omitempty"`
	State      string     `json:"state,omitempty"`
	ZipCode    string     `json:"zip_code,omitempty"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ToCustomerResponse converte a entidade para a resposta.
func ToCustomerResponse(c *entity.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:         c.ID,
		PersonType: c.PersonType,
		Name:       c.Name,
		LegalName:  c.LegalName,
		TaxID:      c.TaxID,
		StateReg:   c.StateReg,
		Email:      c.Email,
		Phone:      c.Phone,
		WhatsApp:   c.WhatsApp,
		BirthDate:  c.BirthDate,
		Address:    c.Address,
		City:       c.City,
		State:      c.State,
		ZipCode:    c.ZipCode,
		Active:     c.Active,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
