package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto (SKU único). CurrentStock é estado derivado:
// só o reconciliador de estoque escreve nele; o restante do sistema apenas lê.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Price       decimal.Decimal // preço de venda
	Cost        decimal.Decimal
	Unit        string // UN, KG, CX...

	// Códigos fiscais (simples; ampliar conforme necessidade)
	NCM  string
	CFOP string

	CurrentStock decimal.Decimal // derivado: entradas IN + ajustes ADJ - saídas de pedidos confirmados/faturados

	// Locação
	RentalAvailable bool
	DailyRate       decimal.Decimal
	Deposit         decimal.Decimal // caução

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
