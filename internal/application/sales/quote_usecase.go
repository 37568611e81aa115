package sales

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestaoplug/erp-api/internal/domain"
	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
)

// QuoteInput dados de criação de orçamento.
type QuoteInput struct {
	CustomerID    string
	ValidUntil    *time.Time
	TotalDiscount decimal.Decimal
	Notes         string
	CreatedBy     string
	Items         []ItemInput
}

// QuoteUseCase operações sobre orçamentos.
type QuoteUseCase struct {
	quoteRepo    repository.QuoteRepository
	customerRepo repository.CustomerRepository
	orders       *OrderUseCase
}

// NewQuoteUseCase constrói o caso de uso de orçamentos.
func NewQuoteUseCase(
	quoteRepo repository.QuoteRepository,
	customerRepo repository.CustomerRepository,
	orders *OrderUseCase,
) *QuoteUseCase {
	return &QuoteUseCase{quoteRepo: quoteRepo, customerRepo: customerRepo, orders: orders}
}

// Create cria um orçamento em rascunho com seus itens.
func (uc *QuoteUseCase) Create(in QuoteInput) (*entity.Quote, error) {
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.CustomerID)
	}
	if in.TotalDiscount.IsNegative() {
		return nil, fmt.Errorf("%w: desconto negativo", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	quote := &entity.Quote{
		ID:            uuid.NewString(),
		CustomerID:    in.CustomerID,
		Status:        entity.QuoteStatusDraft,
		ValidUntil:    in.ValidUntil,
		TotalDiscount: in.TotalDiscount,
		Notes:         in.Notes,
		CreatedBy:     in.CreatedBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, it := range in.Items {
		if err := validateItem(it); err != nil {
			return nil, err
		}
		quote.Items = append(quote.Items, &entity.QuoteItem{
			ID:          uuid.NewString(),
			QuoteID:     quote.ID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	if err := uc.quoteRepo.Create(quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// Get orçamento com itens.
func (uc *QuoteUseCase) Get(id string) (*entity.Quote, error) {
	quote, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	return quote, nil
}

// List orçamentos, opcionalmente por status.
func (uc *QuoteUseCase) List(status string, limit, offset int) ([]*entity.Quote, error) {
	if status != "" && !entity.ValidQuoteStatus(status) {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, status)
	}
	return uc.quoteRepo.List(status, limit, offset)
}

// ChangeStatus muda o status do orçamento. Orçamentos não afetam estoque.
func (uc *QuoteUseCase) ChangeStatus(id, status string) (*entity.Quote, error) {
	if !entity.ValidQuoteStatus(status) {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, status)
	}
	quote, err := uc.Get(id)
	if err != nil {
		return nil, err
	}
	quote.Status = status
	quote.UpdatedAt = time.Now().UTC()
	if err := uc.quoteRepo.Update(quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// ConvertToOrder converte o orçamento em pedido, uma única vez: orçamento já
// convertido devolve ErrConflict. O pedido nasce em rascunho com os mesmos
// itens e desconto, e o orçamento é marcado como aprovado com o vínculo.
func (uc *QuoteUseCase) ConvertToOrder(quoteID, createdBy string) (*entity.SalesOrder, error) {
	quote, err := uc.Get(quoteID)
	if err != nil {
		return nil, err
	}
	if quote.OrderID != nil {
		return nil, fmt.Errorf("%w: orçamento já convertido no pedido %s", domain.ErrConflict, *quote.OrderID)
	}
	if quote.Status == entity.QuoteStatusRejected ||
		quote.Status == entity.QuoteStatusCanceled || quote.Status == entity.QuoteStatusExpired {
		return nil, fmt.Errorf("%w: orçamento %s não pode ser convertido", domain.ErrInvalidInput, quote.Status)
	}

	items := make([]ItemInput, len(quote.Items))
	for i, it := range quote.Items {
		items[i] = ItemInput{
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
	}

	order, err := uc.orders.Create(OrderInput{
		CustomerID:    quote.CustomerID,
		TotalDiscount: quote.TotalDiscount,
		Notes:         quote.Notes,
		CreatedBy:     createdBy,
		Items:         items,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.quoteRepo.SetOrderID(quote.ID, order.ID); err != nil {
		return nil, err
	}
	quote.Status = entity.QuoteStatusApproved
	quote.UpdatedAt = time.Now().UTC()
	if err := uc.quoteRepo.Update(quote); err != nil {
		return nil, err
	}
	return order, nil
}

// AddItem adiciona um item ao orçamento.
func (uc *QuoteUseCase) AddItem(quoteID string, in ItemInput) (*entity.QuoteItem, error) {
	if err := validateItem(in); err != nil {
		return nil, err
	}
	quote, err := uc.Get(quoteID)
	if err != nil {
		return nil, err
	}
	item := &entity.QuoteItem{
		ID:          uuid.NewString(),
		QuoteID:     quote.ID,
		ProductID:   in.ProductID,
		Description: in.Description,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
	}
	if err := uc.quoteRepo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem altera um item do orçamento.
func (uc *QuoteUseCase) UpdateItem(itemID string, in ItemInput) (*entity.QuoteItem, error) {
	if err := validateItem(in); err != nil {
		return nil, err
	}
	item, err := uc.quoteRepo.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.ProductID = in.ProductID
	item.Description = in.Description
	item.Quantity = in.Quantity
	item.UnitPrice = in.UnitPrice
	if err := uc.quoteRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem exclui um item do orçamento.
func (uc *QuoteUseCase) RemoveItem(itemID string) error {
	item, err := uc.quoteRepo.GetItem(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.quoteRepo.DeleteItem(itemID)
}

// Delete exclui o orçamento (itens cascateiam).
func (uc *QuoteUseCase) Delete(id string) error {
	return uc.quoteRepo.Delete(id)
}
