package finance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaoplug/erp-api/internal/domain"
	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
	"github.com/gestaoplug/erp-api/pkg/logger"
)

type memDocRepo struct {
	repository.FinanceDocumentRepository
	docs         map[string]*entity.FinanceDocument
	statusWrites int
}

func (m *memDocRepo) Create(doc *entity.FinanceDocument) error {
	for _, d := range m.docs {
		if doc.OriginType != nil && d.OriginType != nil &&
			*d.OriginType == *doc.OriginType && *d.OriginID == *doc.OriginID && d.Type == doc.Type {
			return domain.ErrDuplicateOrigin
		}
	}
	m.docs[doc.ID] = doc
	return nil
}

func (m *memDocRepo) GetByID(id string) (*entity.FinanceDocument, error) {
	return m.docs[id], nil
}

func (m *memDocRepo) UpdateStatus(id, status string) error {
	m.docs[id].Status = status
	m.statusWrites++
	return nil
}

func (m *memDocRepo) ExistsForOrigin(originType, originID, docType string) (bool, error) {
	for _, d := range m.docs {
		if d.OriginType != nil && *d.OriginType == originType && *d.OriginID == originID && d.Type == docType {
			return true, nil
		}
	}
	return false, nil
}

// List com filtro opcional: tipo vazio devolve todos, como o adaptador real.
func (m *memDocRepo) List(docType string, _, _ int) ([]*entity.FinanceDocument, error) {
	var out []*entity.FinanceDocument
	for _, d := range m.docs {
		if docType == "" || d.Type == docType {
			out = append(out, d)
		}
	}
	return out, nil
}

type memEntryRepo struct {
	repository.LedgerEntryRepository
	entries map[string]*entity.LedgerEntry
	failAt  int // falha no n-ésimo Create (0 = nunca)
	created int
}

func (m *memEntryRepo) Create(e *entity.LedgerEntry) error {
	m.created++
	if m.failAt > 0 && m.created == m.failAt {
		return assert.AnError
	}
	m.entries[e.ID] = e
	return nil
}

func (m *memEntryRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	return m.entries[id], nil
}

func (m *memEntryRepo) Settle(id string, paidAt time.Time, method string) error {
	e, ok := m.entries[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.PaidAt = &paidAt
	e.PaymentMethod = method
	return nil
}

func (m *memEntryRepo) Update(e *entity.LedgerEntry) error {
	m.entries[e.ID] = e
	return nil
}

func (m *memEntryRepo) SumPaidByMethod(method, docType string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range m.entries {
		if e.PaidAt != nil && e.PaymentMethod == method && e.Type == docType {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

type memOrderRepo struct {
	repository.SalesOrderRepository
	orders map[string]*entity.SalesOrder
}

func (m *memOrderRepo) GetByID(id string) (*entity.SalesOrder, error) { return m.orders[id], nil }

type memMovRepo struct {
	repository.StockMovementRepository
	movs map[string]*entity.StockMovement
}

func (m *memMovRepo) GetByID(id string) (*entity.StockMovement, error) { return m.movs[id], nil }

type memProductRepo struct {
	repository.ProductRepository
	products map[string]*entity.Product
}

func (m *memProductRepo) GetByID(id string) (*entity.Product, error) { return m.products[id], nil }

type memAccountRepo struct {
	repository.AccountRepository
	accounts map[string]*entity.Account
}

func (m *memAccountRepo) GetByID(id string) (*entity.Account, error) { return m.accounts[id], nil }

// memTx simula a transação: se algum Create falhar, desfaz tudo que o
// callback gravou.
type memTx struct {
	docs    *memDocRepo
	entries *memEntryRepo
}

func (t *memTx) RunFinance(_ context.Context, fn func(
	repository.FinanceDocumentRepository,
	repository.LedgerEntryRepository,
) error) error {
	docsBefore := make(map[string]*entity.FinanceDocument, len(t.docs.docs))
	for k, v := range t.docs.docs {
		docsBefore[k] = v
	}
	entriesBefore := make(map[string]*entity.LedgerEntry, len(t.entries.entries))
	for k, v := range t.entries.entries {
		entriesBefore[k] = v
	}
	if err := fn(t.docs, t.entries); err != nil {
		t.docs.docs = docsBefore
		t.entries.entries = entriesBefore
		return err
	}
	return nil
}

type fixture struct {
	uc       *UseCase
	docs     *memDocRepo
	entries  *memEntryRepo
	orders   *memOrderRepo
	movs     *memMovRepo
	products *memProductRepo
	accounts *memAccountRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		docs:     &memDocRepo{docs: map[string]*entity.FinanceDocument{}},
		entries:  &memEntryRepo{entries: map[string]*entity.LedgerEntry{}},
		orders:   &memOrderRepo{orders: map[string]*entity.SalesOrder{}},
		movs:     &memMovRepo{movs: map[string]*entity.StockMovement{}},
		products: &memProductRepo{products: map[string]*entity.Product{}},
		accounts: &memAccountRepo{accounts: map[string]*entity.Account{}},
	}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	f.uc = NewUseCase(f.docs, f.entries, f.orders, f.movs, f.products, f.accounts,
		&memTx{docs: f.docs, entries: f.entries}, log)
	return f
}

// loadEntries anexa as parcelas ao documento, como o adaptador real faz.
func (f *fixture) loadEntries(doc *entity.FinanceDocument) {
	doc.Entries = nil
	for _, e := range f.entries.entries {
		if e.DocumentID != nil && *e.DocumentID == doc.ID {
			doc.Entries = append(doc.Entries, e)
		}
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCreateDocumentParcelas(t *testing.T) {
	f := newFixture(t)

	doc, err := f.uc.CreateDocument(context.Background(), DocumentInput{
		Type:        entity.DocTypeReceivable,
		Description: "Serviço avulso",
		TotalAmount: dec("100.00"),
		Plan:        Plan{Installments: 3, FirstDue: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), IntervalDays: 30},
	})
	require.NoError(t, err)
	require.Len(t, doc.Entries, 3)

	// 100/3 = 33.33 por parcela, sem ajuste na última: soma 99.99
	for _, e := range doc.Entries {
		assert.True(t, e.Amount.Equal(dec("33.33")))
	}
	assert.True(t, doc.InstallmentsTotal().Equal(dec("99.99")))

	assert.Equal(t, "Serviço avulso (1/3)", doc.Entries[0].Description)
	assert.Equal(t, "Serviço avulso (3/3)", doc.Entries[2].Description)

	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), doc.Entries[0].DueDate)
	assert.Equal(t, time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), doc.Entries[1].DueDate)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), doc.Entries[2].DueDate)

	assert.Equal(t, entity.DocStatusOpen, doc.Status)
}

func TestCreateDocumentAtomico(t *testing.T) {
	f := newFixture(t)
	f.entries.failAt = 2 // segunda parcela falha

	_, err := f.uc.CreateDocument(context.Background(), DocumentInput{
		Type:        entity.DocTypePayable,
		Description: "Compra",
		TotalAmount: dec("300.00"),
		Plan:        Plan{Installments: 3, FirstDue: time.Now()},
	})
	require.Error(t, err)
	assert.Empty(t, f.docs.docs, "documento não deve sobreviver à falha nas parcelas")
	assert.Empty(t, f.entries.entries)
}

func TestGenerateReceivableFromOrder(t *testing.T) {
	f := newFixture(t)
	f.orders.orders["o1"] = &entity.SalesOrder{
		ID:            "o1",
		CustomerID:    "c1",
		Status:        entity.OrderStatusConfirmed,
		TotalDiscount: dec("10.00"),
		Items: []*entity.SalesOrderItem{
			{Quantity: dec("2"), UnitPrice: dec("50.00")},
			{Quantity: dec("1"), UnitPrice: dec("20.00")},
		},
	}

	doc, err := f.uc.GenerateReceivableFromOrder(context.Background(), "o1",
		Plan{Installments: 2, FirstDue: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	// líquido: 2x50 + 20 - 10 = 110
	assert.True(t, doc.TotalAmount.Equal(dec("110.00")))
	require.NotNil(t, doc.CustomerID)
	assert.Equal(t, "c1", *doc.CustomerID)
	require.NotNil(t, doc.OriginType)
	assert.Equal(t, entity.OriginSalesOrder, *doc.OriginType)
	for _, e := range doc.Entries {
		assert.True(t, e.Amount.Equal(dec("55.00")))
		require.NotNil(t, e.CustomerID)
		assert.Equal(t, "c1", *e.CustomerID)
	}

	// segunda geração para o mesmo pedido é recusada
	_, err = f.uc.GenerateReceivableFromOrder(context.Background(), "o1", Plan{Installments: 1, FirstDue: time.Now()})
	assert.ErrorIs(t, err, domain.ErrDuplicateOrigin)
}

func TestGeneratePayableFromStockEntry(t *testing.T) {
	f := newFixture(t)
	cost := dec("12.50")
	f.movs.movs["m1"] = &entity.StockMovement{
		ID: "m1", ProductID: "p1", Type: entity.MovementTypeIn,
		Quantity: dec("4"), UnitCost: &cost,
	}
	f.products.products["p1"] = &entity.Product{ID: "p1", Name: "Cabo HDMI"}

	doc, err := f.uc.GeneratePayableFromStockEntry(context.Background(), "m1",
		Plan{Installments: 1, FirstDue: time.Now()}, "Fornecedor X", nil, nil)
	require.NoError(t, err)
	assert.True(t, doc.TotalAmount.Equal(dec("50.00")))
	assert.Equal(t, "Fornecedor X", doc.SupplierName)
	assert.Contains(t, doc.Description, "Cabo HDMI")

	// ajuste (ADJ) não gera contas a pagar
	f.movs.movs["m2"] = &entity.StockMovement{ID: "m2", Type: entity.MovementTypeAdjust, Quantity: dec("-1")}
	_, err = f.uc.GeneratePayableFromStockEntry(context.Background(), "m2",
		Plan{Installments: 1, FirstDue: time.Now()}, "", nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettleInstallmentTransicoes(t *testing.T) {
	f := newFixture(t)
	f.accounts.accounts["a1"] = &entity.Account{ID: "a1", Name: "Caixa Loja"}

	doc, err := f.uc.CreateDocument(context.Background(), DocumentInput{
		Type:        entity.DocTypeReceivable,
		Description: "Venda",
		TotalAmount: dec("200.00"),
		Plan:        Plan{Installments: 2, FirstDue: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
	f.loadEntries(doc)

	// primeira baixa: open -> partial
	err = f.uc.SettleInstallment(doc.Entries[0].ID, time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC), "a1", "")
	require.NoError(t, err)
	assert.Equal(t, entity.DocStatusPartial, f.docs.docs[doc.ID].Status)

	paid := f.entries.entries[doc.Entries[0].ID]
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, "Caixa Loja", paid.PaymentMethod)
	// hora descartada na baixa
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *paid.PaidAt)

	// segunda baixa: partial -> paid
	err = f.uc.SettleInstallment(doc.Entries[1].ID, time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), "", "Pix")
	require.NoError(t, err)
	assert.Equal(t, entity.DocStatusPaid, f.docs.docs[doc.ID].Status)

	// re-baixa sobrescreve sem erro
	err = f.uc.SettleInstallment(doc.Entries[0].ID, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), "", "Boleto")
	require.NoError(t, err)
	assert.Equal(t, "Boleto", f.entries.entries[doc.Entries[0].ID].PaymentMethod)
	assert.Equal(t, entity.DocStatusPaid, f.docs.docs[doc.ID].Status)
}

func TestSettleInstallmentInexistente(t *testing.T) {
	f := newFixture(t)
	err := f.uc.SettleInstallment("ghost", time.Now(), "", "Pix")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReopenInstallment(t *testing.T) {
	f := newFixture(t)

	doc, err := f.uc.CreateDocument(context.Background(), DocumentInput{
		Type:        entity.DocTypeReceivable,
		Description: "Venda",
		TotalAmount: dec("100.00"),
		Plan:        Plan{Installments: 1, FirstDue: time.Now()},
	})
	require.NoError(t, err)
	f.loadEntries(doc)

	require.NoError(t, f.uc.SettleInstallment(doc.Entries[0].ID, time.Now(), "", "Pix"))
	assert.Equal(t, entity.DocStatusPaid, f.docs.docs[doc.ID].Status)

	require.NoError(t, f.uc.ReopenInstallment(doc.Entries[0].ID))
	assert.Equal(t, entity.DocStatusOpen, f.docs.docs[doc.ID].Status)
	assert.Nil(t, f.entries.entries[doc.Entries[0].ID].PaidAt)
}

func TestAccountBalance(t *testing.T) {
	f := newFixture(t)
	f.accounts.accounts["a1"] = &entity.Account{ID: "a1", Name: "Banco"}
	paidAt := time.Now()
	f.entries.entries["e1"] = &entity.LedgerEntry{
		ID: "e1", Type: entity.DocTypeReceivable, Amount: dec("150.00"),
		PaidAt: &paidAt, PaymentMethod: "Banco",
	}
	f.entries.entries["e2"] = &entity.LedgerEntry{
		ID: "e2", Type: entity.DocTypePayable, Amount: dec("40.00"),
		PaidAt: &paidAt, PaymentMethod: "Banco",
	}
	f.entries.entries["e3"] = &entity.LedgerEntry{ // em aberto não conta
		ID: "e3", Type: entity.DocTypeReceivable, Amount: dec("999.00"),
		PaymentMethod: "Banco",
	}

	balance, err := f.uc.AccountBalance("a1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("110.00")))
}

func TestListDocumentsFiltroOpcional(t *testing.T) {
	f := newFixture(t)
	f.docs.docs["d1"] = &entity.FinanceDocument{ID: "d1", Type: entity.DocTypeReceivable}
	f.docs.docs["d2"] = &entity.FinanceDocument{ID: "d2", Type: entity.DocTypePayable}
	f.docs.docs["d3"] = &entity.FinanceDocument{ID: "d3", Type: entity.DocTypeReceivable}

	// Sem tipo lista todos os documentos, não uma lista vazia.
	all, err := f.uc.ListDocuments("", 20, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	onlyCR, err := f.uc.ListDocuments(entity.DocTypeReceivable, 20, 0)
	require.NoError(t, err)
	require.Len(t, onlyCR, 2)
	for _, d := range onlyCR {
		assert.Equal(t, entity.DocTypeReceivable, d.Type)
	}

	_, err = f.uc.ListDocuments("XX", 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
