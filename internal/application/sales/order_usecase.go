// Package sales casos de uso de orçamentos e pedidos de venda. Escritas em
// pedidos e itens disparam o recálculo de estoque dos produtos afetados.
package sales

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestaoplug/erp-api/internal/application/inventory"
	"github.com/gestaoplug/erp-api/internal/domain"
	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
)

// ItemInput linha de pedido ou orçamento.
type ItemInput struct {
	ProductID   *string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// OrderInput dados de criação de pedido.
type OrderInput struct {
	CustomerID    string
	TotalDiscount decimal.Decimal
	Notes         string
	CreatedBy     string
	Items         []ItemInput
}

// OrderUseCase operações sobre pedidos de venda.
type OrderUseCase struct {
	orderRepo    repository.SalesOrderRepository
	customerRepo repository.CustomerRepository
	reconciler   *inventory.Reconciler
}

// NewOrderUseCase constrói o caso de uso de pedidos.
func NewOrderUseCase(
	orderRepo repository.SalesOrderRepository,
	customerRepo repository.CustomerRepository,
	reconciler *inventory.Reconciler,
) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, customerRepo: customerRepo, reconciler: reconciler}
}

func validateItem(in ItemInput) error {
	if !in.Quantity.IsPositive() {
		return fmt.Errorf("%w: quantidade do item deve ser positiva", domain.ErrInvalidInput)
	}
	if in.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: preço unitário negativo", domain.ErrInvalidInput)
	}
	if in.ProductID == nil && in.Description == "" {
		return fmt.Errorf("%w: item sem produto exige descrição", domain.ErrInvalidInput)
	}
	return nil
}

// Create cria um pedido em rascunho com seus itens. Rascunho não afeta
// estoque, então não há recálculo aqui.
func (uc *OrderUseCase) Create(in OrderInput) (*entity.SalesOrder, error) {
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
	order := &entity.SalesOrder{
		ID:            uuid.NewString(),
		CustomerID:    in.CustomerID,
		Status:        entity.OrderStatusDraft,
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
		order.Items = append(order.Items, &entity.SalesOrderItem{
			ID:          uuid.NewString(),
			OrderID:     order.ID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Get pedido com itens.
func (uc *OrderUseCase) Get(id string) (*entity.SalesOrder, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// List pedidos, opcionalmente por status.
func (uc *OrderUseCase) List(status string, limit, offset int) ([]*entity.SalesOrder, error) {
	if status != "" && !entity.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, status)
	}
	return uc.orderRepo.List(status, limit, offset)
}

// ChangeStatus muda o status do pedido e recalcula o estoque de todos os
// produtos dos itens: entrar ou sair de confirmed/invoiced liga ou desliga a
// saída derivada.
func (uc *OrderUseCase) ChangeStatus(id, status string) (*entity.SalesOrder, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, status)
	}
	order, err := uc.Get(id)
	if err != nil {
		return nil, err
	}
	if order.Status == status {
		return order, nil
	}

	order.Status = status
	order.UpdatedAt = time.Now().UTC()
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}

	uc.reconciler.TriggerMany(productIDs(order.Items))
	return order, nil
}

// Update atualiza o cabeçalho do pedido (desconto, observações). Não mexe em
// itens nem status, então o estoque derivado não muda e não há recálculo.
func (uc *OrderUseCase) Update(id string, totalDiscount decimal.Decimal, notes string) (*entity.SalesOrder, error) {
	if totalDiscount.IsNegative() {
		return nil, fmt.Errorf("%w: desconto negativo", domain.ErrInvalidInput)
	}
	order, err := uc.Get(id)
	if err != nil {
		return nil, err
	}
	order.TotalDiscount = totalDiscount
	order.Notes = notes
	order.UpdatedAt = time.Now().UTC()
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// AddItem adiciona um item; se o pedido afeta estoque, recalcula o produto.
func (uc *OrderUseCase) AddItem(orderID string, in ItemInput) (*entity.SalesOrderItem, error) {
	if err := validateItem(in); err != nil {
		return nil, err
	}
	order, err := uc.Get(orderID)
	if err != nil {
		return nil, err
	}

	item := &entity.SalesOrderItem{
		ID:          uuid.NewString(),
		OrderID:     order.ID,
		ProductID:   in.ProductID,
		Description: in.Description,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
	}
	if err := uc.orderRepo.CreateItem(item); err != nil {
		return nil, err
	}

	if entity.OrderStatusAffectsStock(order.Status) && item.ProductID != nil {
		uc.reconciler.Trigger(*item.ProductID)
	}
	return item, nil
}

// UpdateItem altera quantidade/preço de um item e recalcula o produto (e o
// anterior, se o vínculo de produto mudou).
func (uc *OrderUseCase) UpdateItem(itemID string, in ItemInput) (*entity.SalesOrderItem, error) {
	if err := validateItem(in); err != nil {
		return nil, err
	}
	item, err := uc.orderRepo.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	order, err := uc.Get(item.OrderID)
	if err != nil {
		return nil, err
	}

	previousProduct := item.ProductID
	item.ProductID = in.ProductID
	item.Description = in.Description
	item.Quantity = in.Quantity
	item.UnitPrice = in.UnitPrice
	if err := uc.orderRepo.UpdateItem(item); err != nil {
		return nil, err
	}

	if entity.OrderStatusAffectsStock(order.Status) {
		ids := make([]string, 0, 2)
		if previousProduct != nil {
			ids = append(ids, *previousProduct)
		}
		if item.ProductID != nil {
			ids = append(ids, *item.ProductID)
		}
		uc.reconciler.TriggerMany(ids)
	}
	return item, nil
}

// RemoveItem exclui um item e recalcula o produto quando o pedido afeta estoque.
func (uc *OrderUseCase) RemoveItem(itemID string) error {
	item, err := uc.orderRepo.GetItem(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	order, err := uc.Get(item.OrderID)
	if err != nil {
		return err
	}
	if err := uc.orderRepo.DeleteItem(itemID); err != nil {
		return err
	}
	if entity.OrderStatusAffectsStock(order.Status) && item.ProductID != nil {
		uc.reconciler.Trigger(*item.ProductID)
	}
	return nil
}

// Delete exclui o pedido (itens cascateiam) e recalcula os produtos se ele
// afetava estoque.
func (uc *OrderUseCase) Delete(id string) error {
	order, err := uc.Get(id)
	if err != nil {
		return err
	}
	if err := uc.orderRepo.Delete(id); err != nil {
		return err
	}
	if entity.OrderStatusAffectsStock(order.Status) {
		uc.reconciler.TriggerMany(productIDs(order.Items))
	}
	return nil
}

func productIDs(items []*entity.SalesOrderItem) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if it.ProductID != nil {
			ids = append(ids, *it.ProductID)
		}
	}
	return ids
}
