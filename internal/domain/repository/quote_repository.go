package repository

import "github.com/gestaoplug/erp-api/internal/domain/entity"

// QuoteRepository porta de persistência de Quote e seus itens.
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	GetByID(id string) (*entity.Quote, error)
	Update(quote *entity.Quote) error
	// SetOrderID grava o vínculo com o pedido gerado na conversão.
	SetOrderID(quoteID, orderID string) error
	List(status string, limit, offset int) ([]*entity.Quote, error)
	Delete(id string) error

	CreateItem(item *entity.QuoteItem) error
	GetItem(itemID string) (*entity.QuoteItem, error)
	UpdateItem(item *entity.QuoteItem) error
	DeleteItem(itemID string) error
}
