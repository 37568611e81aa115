package sales

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaoplug/erp-api/internal/application/inventory"
	"github.com/gestaoplug/erp-api/internal/domain"
	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
	"github.com/gestaoplug/erp-api/pkg/logger"
)

type memOrderRepo struct {
	repository.SalesOrderRepository
	orders map[string]*entity.SalesOrder
}

func (m *memOrderRepo) Create(o *entity.SalesOrder) error { m.orders[o.ID] = o; return nil }
func (m *memOrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	return m.orders[id], nil
}
func (m *memOrderRepo) Update(o *entity.SalesOrder) error { m.orders[o.ID] = o; return nil }
func (m *memOrderRepo) Delete(id string) error            { delete(m.orders, id); return nil }

// SumStockAffectingQuantity soma em memória, como a consulta real.
func (m *memOrderRepo) SumStockAffectingQuantity(productID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, o := range m.orders {
		if !entity.OrderStatusAffectsStock(o.Status) {
			continue
		}
		for _, it := range o.Items {
			if it.ProductID != nil && *it.ProductID == productID {
				total = total.Add(it.Quantity)
			}
		}
	}
	return total, nil
}

type memCustomerRepo struct {
	repository.CustomerRepository
	customers map[string]*entity.Customer
}

func (m *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return m.customers[id], nil
}

type memQuoteRepo struct {
	repository.QuoteRepository
	quotes map[string]*entity.Quote
}

func (m *memQuoteRepo) Create(q *entity.Quote) error              { m.quotes[q.ID] = q; return nil }
func (m *memQuoteRepo) GetByID(id string) (*entity.Quote, error)  { return m.quotes[id], nil }
func (m *memQuoteRepo) Update(q *entity.Quote) error              { m.quotes[q.ID] = q; return nil }
func (m *memQuoteRepo) SetOrderID(quoteID, orderID string) error {
	m.quotes[quoteID].OrderID = &orderID
	return nil
}

type memProductRepo struct {
	repository.ProductRepository
	products map[string]*entity.Product
	writes   int
}

func (m *memProductRepo) GetByID(id string) (*entity.Product, error) { return m.products[id], nil }
func (m *memProductRepo) UpdateCurrentStock(id string, qty decimal.Decimal) error {
	m.products[id].CurrentStock = qty
	m.writes++
	return nil
}

type memMovRepo struct {
	repository.StockMovementRepository
	in map[string]decimal.Decimal
}

func (m *memMovRepo) SumQuantityByType(productID, movType string) (decimal.Decimal, error) {
	if movType == entity.MovementTypeIn {
		return m.in[productID], nil
	}
	return decimal.Zero, nil
}

type noTx struct{}

func (noTx) Run(_ context.Context, fn func(
	repository.ProductRepository,
	repository.StockMovementRepository,
	repository.SalesOrderRepository,
) error) error {
	return nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strPtr(s string) *string { return &s }

type fixture struct {
	orders    *OrderUseCase
	quotes    *QuoteUseCase
	orderRepo *memOrderRepo
	quoteRepo *memQuoteRepo
	products  *memProductRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	orderRepo := &memOrderRepo{orders: map[string]*entity.SalesOrder{}}
	quoteRepo := &memQuoteRepo{quotes: map[string]*entity.Quote{}}
	customers := &memCustomerRepo{customers: map[string]*entity.Customer{
		"c1": {ID: "c1", Name: "Cliente Um"},
	}}
	products := &memProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", CurrentStock: dec("10")},
		"p2": {ID: "p2", CurrentStock: dec("5")},
	}}
	movs := &memMovRepo{in: map[string]decimal.Decimal{"p1": dec("10"), "p2": dec("5")}}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	rec := inventory.NewReconciler(products, movs, orderRepo, noTx{}, log)

	orders := NewOrderUseCase(orderRepo, customers, rec)
	return &fixture{
		orders:    orders,
		quotes:    NewQuoteUseCase(quoteRepo, customers, orders),
		orderRepo: orderRepo,
		quoteRepo: quoteRepo,
		products:  products,
	}
}

func TestConfirmarPedidoRecalculaEstoque(t *testing.T) {
	f := newFixture(t)

	order, err := f.orders.Create(OrderInput{
		CustomerID: "c1",
		Items: []ItemInput{
			{ProductID: strPtr("p1"), Quantity: dec("3"), UnitPrice: dec("20.00")},
			{ProductID: strPtr("p2"), Quantity: dec("1"), UnitPrice: dec("15.00")},
		},
	})
	require.NoError(t, err)

	// rascunho não desconta estoque
	assert.True(t, f.products.products["p1"].CurrentStock.Equal(dec("10")))
	assert.Equal(t, 0, f.products.writes)

	_, err = f.orders.ChangeStatus(order.ID, entity.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.True(t, f.products.products["p1"].CurrentStock.Equal(dec("7")))
	assert.True(t, f.products.products["p2"].CurrentStock.Equal(dec("4")))

	// cancelar devolve o estoque
	_, err = f.orders.ChangeStatus(order.ID, entity.OrderStatusCanceled)
	require.NoError(t, err)
	assert.True(t, f.products.products["p1"].CurrentStock.Equal(dec("10")))
	assert.True(t, f.products.products["p2"].CurrentStock.Equal(dec("5")))
}

func TestTotaisDoPedido(t *testing.T) {
	f := newFixture(t)

	order, err := f.orders.Create(OrderInput{
		CustomerID:    "c1",
		TotalDiscount: dec("5.00"),
		Items: []ItemInput{
			{ProductID: strPtr("p1"), Quantity: dec("2"), UnitPrice: dec("30.00")},
			{Description: "Frete", Quantity: dec("1"), UnitPrice: dec("10.00")},
		},
	})
	require.NoError(t, err)
	assert.True(t, order.GrossTotal().Equal(dec("70.00")))
	assert.True(t, order.NetTotal().Equal(dec("65.00")))
}

func TestItemInvalido(t *testing.T) {
	f := newFixture(t)

	_, err := f.orders.Create(OrderInput{
		CustomerID: "c1",
		Items:      []ItemInput{{ProductID: strPtr("p1"), Quantity: dec("0"), UnitPrice: dec("10")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.orders.Create(OrderInput{
		CustomerID: "c1",
		Items:      []ItemInput{{Quantity: dec("1"), UnitPrice: dec("10")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "item sem produto e sem descrição")
}

func TestConverterOrcamentoUmaVez(t *testing.T) {
	f := newFixture(t)

	quote, err := f.quotes.Create(QuoteInput{
		CustomerID:    "c1",
		TotalDiscount: dec("10.00"),
		Items: []ItemInput{
			{ProductID: strPtr("p1"), Quantity: dec("2"), UnitPrice: dec("50.00")},
		},
	})
	require.NoError(t, err)

	order, err := f.quotes.ConvertToOrder(quote.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDraft, order.Status)
	assert.True(t, order.NetTotal().Equal(dec("90.00")))
	require.Len(t, order.Items, 1)

	converted := f.quoteRepo.quotes[quote.ID]
	require.NotNil(t, converted.OrderID)
	assert.Equal(t, order.ID, *converted.OrderID)
	assert.Equal(t, entity.QuoteStatusApproved, converted.Status)

	// segunda conversão é recusada
	_, err = f.quotes.ConvertToOrder(quote.ID, "u1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestConverterOrcamentoCancelado(t *testing.T) {
	f := newFixture(t)

	quote, err := f.quotes.Create(QuoteInput{CustomerID: "c1"})
	require.NoError(t, err)
	_, err = f.quotes.ChangeStatus(quote.ID, entity.QuoteStatusCanceled)
	require.NoError(t, err)

	_, err = f.quotes.ConvertToOrder(quote.ID, "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
