package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestaoplug/erp-api/internal/domain"
	"github.com/gestaoplug/erp-api/internal/domain/entity"
	domfin "github.com/gestaoplug/erp-api/internal/domain/finance"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
	"github.com/gestaoplug/erp-api/pkg/logger"
)

// Plan parâmetros de parcelamento de um documento.
type Plan struct {
	Installments int       // zero ou negativo vira 1
	FirstDue     time.Time // primeiro vencimento
	IntervalDays int       // zero ou negativo vira 30
}

// DocumentInput dados de criação manual de um título.
type DocumentInput struct {
	Type         string // CR, CP
	Description  string
	TotalAmount  decimal.Decimal
	CustomerID   *string // CR
	SupplierName string  // CP
	Plan         Plan

	// Classificação opcional carregada para as parcelas
	ExpenseCategoryID       *string
	ExpenseCategoryParentID *string
}

// EntryView parcela anotada com o status de exibição relativo a hoje.
type EntryView struct {
	*entity.LedgerEntry
	Status string
}

// UseCase operações sobre títulos financeiros e suas parcelas.
type UseCase struct {
	docRepo     repository.FinanceDocumentRepository
	entryRepo   repository.LedgerEntryRepository
	orderRepo   repository.SalesOrderRepository
	movRepo     repository.StockMovementRepository
	productRepo repository.ProductRepository
	accountRepo repository.AccountRepository
	tx          FinanceTxRunner
	log         *logger.Logger
	now         func() time.Time
}

// NewUseCase constrói o caso de uso financeiro.
func NewUseCase(
	docRepo repository.FinanceDocumentRepository,
	entryRepo repository.LedgerEntryRepository,
	orderRepo repository.SalesOrderRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	accountRepo repository.AccountRepository,
	tx FinanceTxRunner,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		docRepo:     docRepo,
		entryRepo:   entryRepo,
		orderRepo:   orderRepo,
		movRepo:     movRepo,
		productRepo: productRepo,
		accountRepo: accountRepo,
		tx:          tx,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CreateDocument cria o título e suas parcelas atomicamente. As parcelas são
// rateadas por InstallmentAmount (cada uma arredondada de forma independente)
// e descritas com o sufixo "(i/n)".
func (uc *UseCase) CreateDocument(ctx context.Context, in DocumentInput) (*entity.FinanceDocument, error) {
	if in.Type != entity.DocTypeReceivable && in.Type != entity.DocTypePayable {
		return nil, fmt.Errorf("%w: tipo de documento %q", domain.ErrInvalidInput, in.Type)
	}
	if in.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: valor total negativo", domain.ErrInvalidInput)
	}
	return uc.createDocument(ctx, in, nil, nil)
}

// createDocument monta documento + parcelas e grava tudo numa transação.
// originType/originID nulos em títulos manuais.
func (uc *UseCase) createDocument(ctx context.Context, in DocumentInput, originType, originID *string) (*entity.FinanceDocument, error) {
	n := domfin.NormalizeCount(in.Plan.Installments)
	amount := domfin.InstallmentAmount(in.TotalAmount, n)
	dueDates := domfin.Schedule(in.Plan.FirstDue, n, in.Plan.IntervalDays)
	createdAt := uc.now()

	doc := &entity.FinanceDocument{
		ID:           uuid.NewString(),
		Type:         in.Type,
		Description:  in.Description,
		TotalAmount:  in.TotalAmount,
		Status:       entity.DocStatusOpen,
		CustomerID:   in.CustomerID,
		SupplierName: in.SupplierName,
		OriginType:   originType,
		OriginID:     originID,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}

	for i := 0; i < n; i++ {
		doc.Entries = append(doc.Entries, &entity.LedgerEntry{
			ID:                      uuid.NewString(),
			DocumentID:              &doc.ID,
			CustomerID:              in.CustomerID,
			Type:                    in.Type,
			Description:             fmt.Sprintf("%s (%d/%d)", in.Description, i+1, n),
			Amount:                  amount,
			DueDate:                 dueDates[i],
			ExpenseCategoryID:       in.ExpenseCategoryID,
			ExpenseCategoryParentID: in.ExpenseCategoryParentID,
			CreatedAt:               createdAt,
			UpdatedAt:               createdAt,
		})
	}

	err := uc.tx.RunFinance(ctx, func(
		docRepo repository.FinanceDocumentRepository,
		entryRepo repository.LedgerEntryRepository,
	) error {
		if err := docRepo.Create(doc); err != nil {
			return err
		}
		for _, e := range doc.Entries {
			if err := entryRepo.Create(e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// HasDocumentForOrigin pré-checagem de duplicidade por (origem, tipo). A
// garantia final é do índice único parcial: a criação concorrente devolve
// ErrDuplicateOrigin.
func (uc *UseCase) HasDocumentForOrigin(originType, originID, docType string) (bool, error) {
	return uc.docRepo.ExistsForOrigin(originType, originID, docType)
}

// GenerateReceivableFromOrder gera o contas a receber de um pedido: total é o
// líquido do pedido (itens menos desconto), cliente do pedido nas parcelas.
func (uc *UseCase) GenerateReceivableFromOrder(ctx context.Context, orderID string, plan Plan) (*entity.FinanceDocument, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, orderID)
	}

	exists, err := uc.HasDocumentForOrigin(entity.OriginSalesOrder, orderID, entity.DocTypeReceivable)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateOrigin
	}

	originType := entity.OriginSalesOrder
	in := DocumentInput{
		Type:        entity.DocTypeReceivable,
		Description: fmt.Sprintf("Pedido de venda %s", shortID(orderID)),
		TotalAmount: order.NetTotal(),
		CustomerID:  &order.CustomerID,
		Plan:        plan,
	}
	return uc.createDocument(ctx, in, &originType, &orderID)
}

// GeneratePayableFromStockEntry gera o contas a pagar de uma entrada de
// estoque: total é quantidade x custo unitário.
func (uc *UseCase) GeneratePayableFromStockEntry(ctx context.Context, movementID string, plan Plan, supplierName string, categoryID, categoryParentID *string) (*entity.FinanceDocument, error) {
	mov, err := uc.movRepo.GetByID(movementID)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, fmt.Errorf("%w: movimento %s", domain.ErrNotFound, movementID)
	}
	if mov.Type != entity.MovementTypeIn || mov.UnitCost == nil {
		return nil, fmt.Errorf("%w: só entradas com custo geram contas a pagar", domain.ErrInvalidInput)
	}

	exists, err := uc.HasDocumentForOrigin(entity.OriginStockMovement, movementID, entity.DocTypePayable)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateOrigin
	}

	description := fmt.Sprintf("Entrada de estoque %s", shortID(movementID))
	if product, err := uc.productRepo.GetByID(mov.ProductID); err == nil && product != nil {
		description = fmt.Sprintf("Entrada de estoque - %s", product.Name)
	}

	originType := entity.OriginStockMovement
	in := DocumentInput{
		Type:                    entity.DocTypePayable,
		Description:             description,
		TotalAmount:             mov.TotalCost(),
		SupplierName:            supplierName,
		Plan:                    plan,
		ExpenseCategoryID:       categoryID,
		ExpenseCategoryParentID: categoryParentID,
	}
	return uc.createDocument(ctx, in, &originType, &movementID)
}

// SettleInstallment baixa uma parcela: grava data de pagamento e rótulo do
// meio (nome da conta quando accountID é informado, senão method). Re-baixar
// sobrescreve os dados anteriores. Depois recalcula o status do documento e
// grava só se mudou.
func (uc *UseCase) SettleInstallment(entryID string, paidAt time.Time, accountID, method string) error {
	entry, err := uc.entryRepo.GetByID(entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}

	label := method
	if accountID != "" {
		account, err := uc.accountRepo.GetByID(accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return fmt.Errorf("%w: conta %s", domain.ErrNotFound, accountID)
		}
		label = account.Name
	}

	if err := uc.entryRepo.Settle(entryID, domfin.DateOnly(paidAt), label); err != nil {
		return err
	}
	return uc.refreshDocumentStatus(entry.DocumentID)
}

// ReopenInstallment desfaz a baixa (volta a em aberto) e recalcula o documento.
func (uc *UseCase) ReopenInstallment(entryID string) error {
	entry, err := uc.entryRepo.GetByID(entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	entry.PaidAt = nil
	entry.PaymentMethod = ""
	entry.UpdatedAt = uc.now()
	if err := uc.entryRepo.Update(entry); err != nil {
		return err
	}
	return uc.refreshDocumentStatus(entry.DocumentID)
}

// refreshDocumentStatus rederiva o status do documento das parcelas e grava
// só quando difere do armazenado. Parcela avulsa (sem documento) não faz nada.
func (uc *UseCase) refreshDocumentStatus(documentID *string) error {
	if documentID == nil {
		return nil
	}
	doc, err := uc.docRepo.GetByID(*documentID)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}
	if doc.Status == entity.DocStatusCanceled {
		return nil
	}
	status := domfin.DocumentStatus(doc.Entries)
	if status == doc.Status {
		return nil
	}
	return uc.docRepo.UpdateStatus(doc.ID, status)
}

// ListEntries parcelas de um tipo anotadas com o status de exibição. A ordem
// (vencida < vence hoje < em aberto < paga, depois vencimento e id) vem do
// repositório.
func (uc *UseCase) ListEntries(docType string, limit, offset int) ([]*EntryView, error) {
	if docType != entity.DocTypeReceivable && docType != entity.DocTypePayable {
		return nil, fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, docType)
	}
	today := domfin.DateOnly(uc.now())
	entries, err := uc.entryRepo.ListByType(docType, today, limit, offset)
	if err != nil {
		return nil, err
	}
	views := make([]*EntryView, len(entries))
	for i, e := range entries {
		views[i] = &EntryView{LedgerEntry: e, Status: domfin.DisplayStatus(e, today)}
	}
	return views, nil
}

// Cashbook extrato de parcelas pagas, filtrado por conta e período.
func (uc *UseCase) Cashbook(filter repository.CashbookFilter) ([]*entity.LedgerEntry, error) {
	return uc.entryRepo.Cashbook(filter)
}

// AccountBalance saldo da conta: recebimentos menos pagamentos entre as parcelas
// pagas casadas pelo nome da conta.
func (uc *UseCase) AccountBalance(accountID string) (decimal.Decimal, error) {
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	if account == nil {
		return decimal.Zero, fmt.Errorf("%w: conta %s", domain.ErrNotFound, accountID)
	}
	in, err := uc.entryRepo.SumPaidByMethod(account.Name, entity.DocTypeReceivable)
	if err != nil {
		return decimal.Zero, err
	}
	out, err := uc.entryRepo.SumPaidByMethod(account.Name, entity.DocTypePayable)
	if err != nil {
		return decimal.Zero, err
	}
	return in.Sub(out), nil
}

// GetDocument documento com parcelas.
func (uc *UseCase) GetDocument(id string) (*entity.FinanceDocument, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

// ListDocuments documentos de um tipo (vazio lista todos).
func (uc *UseCase) ListDocuments(docType string, limit, offset int) ([]*entity.FinanceDocument, error) {
	if docType != "" && docType != entity.DocTypeReceivable && docType != entity.DocTypePayable {
		return nil, fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, docType)
	}
	return uc.docRepo.List(docType, limit, offset)
}

// DeleteDocument remove o documento (parcelas cascateiam no banco). Excluir um
// documento gerado libera a origem para nova geração.
func (uc *UseCase) DeleteDocument(id string) error {
	return uc.docRepo.Delete(id)
}

// UpdateEntry edição manual de uma parcela (descrição, valor, vencimento,
// classificação).
func (uc *UseCase) UpdateEntry(entry *entity.LedgerEntry) error {
	current, err := uc.entryRepo.GetByID(entry.ID)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	if entry.Amount.IsNegative() {
		return fmt.Errorf("%w: valor negativo", domain.ErrInvalidInput)
	}
	entry.UpdatedAt = uc.now()
	return uc.entryRepo.Update(entry)
}

// shortID prefixo curto de um uuid para descrições legíveis.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
