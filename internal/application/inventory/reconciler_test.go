package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
	"github.com/gestaoplug/erp-api/pkg/logger"
)

type fakeProductRepo struct {
	repository.ProductRepository
	products     map[string]*entity.Product
	stockWrites  int
	lastStockSet decimal.Decimal
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) UpdateCurrentStock(productID string, qty decimal.Decimal) error {
	f.products[productID].CurrentStock = qty
	f.stockWrites++
	f.lastStockSet = qty
	return nil
}

func (f *fakeProductRepo) ListIDsForUpdate() ([]string, error) {
	ids := make([]string, 0, len(f.products))
	for id := range f.products {
		ids = append(ids, id)
	}
	return ids, nil
}

type fakeMovementRepo struct {
	repository.StockMovementRepository
	in  map[string]decimal.Decimal
	adj map[string]decimal.Decimal
}

func (f *fakeMovementRepo) SumQuantityByType(productID, movType string) (decimal.Decimal, error) {
	if movType == entity.MovementTypeIn {
		return f.in[productID], nil
	}
	return f.adj[productID], nil
}

type fakeOrderRepo struct {
	repository.SalesOrderRepository
	out map[string]decimal.Decimal
}

func (f *fakeOrderRepo) SumStockAffectingQuantity(productID string) (decimal.Decimal, error) {
	return f.out[productID], nil
}

type fakeTxRunner struct {
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
	orderRepo   repository.SalesOrderRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	repository.ProductRepository,
	repository.StockMovementRepository,
	repository.SalesOrderRepository,
) error) error {
	return fn(f.productRepo, f.movRepo, f.orderRepo)
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestReconciler(products *fakeProductRepo, movs *fakeMovementRepo, orders *fakeOrderRepo) *Reconciler {
	tx := &fakeTxRunner{productRepo: products, movRepo: movs, orderRepo: orders}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return NewReconciler(products, movs, orders, tx, log)
}

func TestRecompute(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		adj     string
		out     string
		stored  string
		want    string
		writes  int
	}{
		{"entradas menos saídas", "10", "0", "4", "0", "6", 1},
		{"ajuste negativo", "10", "-3", "4", "0", "3", 1},
		{"sem movimentos", "0", "0", "0", "0", "0", 0},
		{"estoque negativo permitido", "2", "0", "5", "0", "-3", 1},
		{"valor já correto não grava", "10", "0", "4", "6", "6", 0},
		{"quantidades fracionárias", "1.5", "0.25", "0.5", "0", "1.25", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := &fakeProductRepo{products: map[string]*entity.Product{
				"p1": {ID: "p1", CurrentStock: d(tt.stored)},
			}}
			movs := &fakeMovementRepo{
				in:  map[string]decimal.Decimal{"p1": d(tt.in)},
				adj: map[string]decimal.Decimal{"p1": d(tt.adj)},
			}
			orders := &fakeOrderRepo{out: map[string]decimal.Decimal{"p1": d(tt.out)}}

			r := newTestReconciler(products, movs, orders)
			got, err := r.Recompute("p1")
			require.NoError(t, err)
			assert.True(t, got.Equal(d(tt.want)), "esperado %s, obtido %s", tt.want, got)
			assert.Equal(t, tt.writes, products.stockWrites)
			assert.True(t, products.products["p1"].CurrentStock.Equal(d(tt.want)))
		})
	}
}

func TestRecomputeIdempotente(t *testing.T) {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", CurrentStock: d("0")},
	}}
	movs := &fakeMovementRepo{
		in:  map[string]decimal.Decimal{"p1": d("8")},
		adj: map[string]decimal.Decimal{},
	}
	orders := &fakeOrderRepo{out: map[string]decimal.Decimal{"p1": d("3")}}

	r := newTestReconciler(products, movs, orders)

	_, err := r.Recompute("p1")
	require.NoError(t, err)
	require.Equal(t, 1, products.stockWrites)

	// Segunda chamada sem mudança nas fontes não grava de novo.
	got, err := r.Recompute("p1")
	require.NoError(t, err)
	assert.True(t, got.Equal(d("5")))
	assert.Equal(t, 1, products.stockWrites)
}

func TestRecomputeProdutoInexistente(t *testing.T) {
	products := &fakeProductRepo{products: map[string]*entity.Product{}}
	movs := &fakeMovementRepo{in: map[string]decimal.Decimal{}, adj: map[string]decimal.Decimal{}}
	orders := &fakeOrderRepo{out: map[string]decimal.Decimal{}}

	r := newTestReconciler(products, movs, orders)
	got, err := r.Recompute("ghost")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
	assert.Equal(t, 0, products.stockWrites)
}

func TestRebuildAll(t *testing.T) {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", CurrentStock: d("99")}, // errado, será corrigido
		"p2": {ID: "p2", CurrentStock: d("5")},  // já correto
	}}
	movs := &fakeMovementRepo{
		in:  map[string]decimal.Decimal{"p1": d("10"), "p2": d("5")},
		adj: map[string]decimal.Decimal{},
	}
	orders := &fakeOrderRepo{out: map[string]decimal.Decimal{"p1": d("4")}}

	r := newTestReconciler(products, movs, orders)
	changed, err := r.RebuildAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.True(t, products.products["p1"].CurrentStock.Equal(d("6")))
	assert.True(t, products.products["p2"].CurrentStock.Equal(d("5")))
}
