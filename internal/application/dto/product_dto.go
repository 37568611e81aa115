package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
)

// CreateProductRequest entrada para criar um produto. Estoque não entra aqui:
// current_stock é derivado dos movimentos e pedidos.
type CreateProductRequest struct {
	SKU             string          `json:"sku" validate:"required,min=1,max=100"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Cost            decimal.Decimal `json:"cost"`
	Unit            string          `json:"unit"`
	NCM             string          `json:"ncm"`
	CFOP            string          `json:"cfop"`
	RentalAvailable bool            `json:"rental_available"`
	DailyRate       decimal.Decimal `json:"daily_rate"`
	Deposit         decimal.Decimal `json:"deposit"`
}

// UpdateProductRequest entrada para atualizar um produto (sem estoque).
type UpdateProductRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description     *string          `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	Cost            *decimal.Decimal `json:"cost"`
	Unit            *string          `json:"unit"`
	NCM             *string          `json:"ncm"`
	CFOP            *string          `json:"cfop"`
	RentalAvailable *bool            `json:"rental_available"`
	DailyRate       *decimal.Decimal `json:"daily_rate"`
	Deposit         *decimal.Decimal `json:"deposit"`
	Active          *bool            `json:"active"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID              string          `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Cost            decimal.Decimal `json:"cost"`
	Unit            string          `json:"unit"`
	NCM             string          `json:"ncm"`
	CFOP            string          `json:"cfop"`
	CurrentStock    decimal.Decimal `json:"current_stock"`
	RentalAvailable bool            `json:"rental_available"`
	DailyRate       decimal.Decimal `json:"daily_rate"`
	Deposit         decimal.Decimal `json:"deposit"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de produtos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ToProductResponse converte a entidade para a resposta.
func ToProductResponse(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:              p.ID,
		SKU:             p.SKU,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		Cost:            p.Cost,
		Unit:            p.Unit,
		NCM:             p.NCM,
		CFOP:            p.CFOP,
		CurrentStock:    p.CurrentStock,
		RentalAvailable: p.RentalAvailable,
		DailyRate:       p.DailyRate,
		Deposit:         p.Deposit,
		Active:          p.Active,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
