package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gestaoplug/erp-api/internal/application/dto"
	"github.com/gestaoplug/erp-api/internal/application/finance"
	"github.com/gestaoplug/erp-api/internal/domain/entity"
	domfin "github.com/gestaoplug/erp-api/internal/domain/finance"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
	"github.com/gestaoplug/erp-api/internal/infrastructure/pdf"
)

// FinanceHandler títulos, parcelas, baixas, extrato e carnê.
type FinanceHandler struct {
	uc           *finance.UseCase
	carne        *pdf.CarneGenerator
	customerRepo repository.CustomerRepository
}

// NewFinanceHandler constrói o handler.
func NewFinanceHandler(uc *finance.UseCase, carne *pdf.CarneGenerator, customerRepo repository.CustomerRepository) *FinanceHandler {
	return &FinanceHandler{uc: uc, carne: carne, customerRepo: customerRepo}
}

func toPlan(in dto.PlanRequest) finance.Plan {
	return finance.Plan{
		Installments: in.Installments,
		FirstDue:     in.FirstDue,
		IntervalDays: in.IntervalDays,
	}
}

func (h *FinanceHandler) documentResponse(doc *entity.FinanceDocument) *dto.DocumentResponse {
	today := domfin.DateOnly(time.Now().UTC())
	return dto.ToDocumentResponse(doc, func(e *entity.LedgerEntry) string {
		return domfin.DisplayStatus(e, today)
	})
}

// CreateDocument godoc
// @Summary      Criar título financeiro com parcelamento
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocumentRequest  true  "Título"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finance/documents [post]
func (h *FinanceHandler) CreateDocument(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "description é obrigatório"})
	}
	doc, err := h.uc.CreateDocument(c.UserContext(), finance.DocumentInput{
		Type:                    in.Type,
		Description:             in.Description,
		TotalAmount:             in.TotalAmount,
		CustomerID:              in.CustomerID,
		SupplierName:            in.SupplierName,
		Plan:                    toPlan(in.Plan),
		ExpenseCategoryID:       in.ExpenseCategoryID,
		ExpenseCategoryParentID: in.ExpenseCategoryParentID,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.documentResponse(doc))
}

// GetDocument godoc
// @Summary      Obter título com parcelas
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do título"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/finance/documents/{id} [get]
func (h *FinanceHandler) GetDocument(c *fiber.Ctx) error {
	doc, err := h.uc.GetDocument(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(h.documentResponse(doc))
}

// ListDocuments godoc
// @Summary      Listar títulos (filtro opcional por tipo CR|CP)
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        type    query  string  false  "Tipo (CR|CP)"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.DocumentListResponse
// @Router       /api/finance/documents [get]
func (h *FinanceHandler) ListDocuments(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	docs, err := h.uc.ListDocuments(c.Query("type"), page.Limit, page.Offset)
	if err != nil {
		return handleError(c, err)
	}
	items := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		items = append(items, *h.documentResponse(d))
	}
	return c.JSON(dto.DocumentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	})
}

// DeleteDocument godoc
// @Summary      Excluir título (parcelas em cascata)
// @Tags         finance
// @Security     Bearer
// @Param        id  path  string  true  "ID do título"
// @Success      204
// @Router       /api/finance/documents/{id} [delete]
func (h *FinanceHandler) DeleteDocument(c *fiber.Ctx) error {
	if err := h.uc.DeleteDocument(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GenerateReceivable godoc
// @Summary      Gerar contas a receber a partir de um pedido
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do pedido"
// @Param        body  body  dto.GenerateFromOriginRequest  true  "Plano de parcelamento"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receivable [post]
func (h *FinanceHandler) GenerateReceivable(c *fiber.Ctx) error {
	var in dto.GenerateFromOriginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	doc, err := h.uc.GenerateReceivableFromOrder(c.UserContext(), c.Params("id"), toPlan(in.Plan))
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.documentResponse(doc))
}

// GeneratePayable godoc
// @Summary      Gerar contas a pagar a partir de uma entrada de estoque
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do movimento de entrada"
// @Param        body  body  dto.GenerateFromOriginRequest  true  "Plano e fornecedor"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id}/payable [post]
func (h *FinanceHandler) GeneratePayable(c *fiber.Ctx) error {
	var in dto.GenerateFromOriginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	doc, err := h.uc.GeneratePayableFromStockEntry(
		c.UserContext(), c.Params("id"), toPlan(in.Plan),
		in.SupplierName, in.ExpenseCategoryID, in.ExpenseCategoryParentID,
	)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.documentResponse(doc))
}

// SettleEntry godoc
// @Summary      Baixar (pagar) uma parcela
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID da parcela"
// @Param        body  body  dto.SettleRequest  true  "Dados da baixa"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/finance/entries/{id}/settle [post]
func (h *FinanceHandler) SettleEntry(c *fiber.Ctx) error {
	var in dto.SettleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.PaidAt.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paid_at é obrigatório"})
	}
	if err := h.uc.SettleInstallment(c.Params("id"), in.PaidAt, in.AccountID, in.Method); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReopenEntry godoc
// @Summary      Estornar a baixa de uma parcela
// @Tags         finance
// @Security     Bearer
// @Param        id  path  string  true  "ID da parcela"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/finance/entries/{id}/reopen [post]
func (h *FinanceHandler) ReopenEntry(c *fiber.Ctx) error {
	if err := h.uc.ReopenInstallment(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListEntries godoc
// @Summary      Listar parcelas de um tipo com status de exibição
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        type    query  string  true   "Tipo (CR|CP)"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.EntryListResponse
// @Router       /api/finance/entries [get]
func (h *FinanceHandler) ListEntries(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	views, err := h.uc.ListEntries(c.Query("type"), page.Limit, page.Offset)
	if err != nil {
		return handleError(c, err)
	}
	items := make([]dto.EntryResponse, 0, len(views))
	for _, v := range views {
		items = append(items, dto.ToEntryResponse(v.LedgerEntry, v.Status))
	}
	return c.JSON(dto.EntryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	})
}

// Cashbook godoc
// @Summary      Extrato de parcelas pagas (livro-caixa)
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        method  query  string  false  "Nome da conta / meio de pagamento"
// @Param        start   query  string  false  "Início (YYYY-MM-DD)"
// @Param        end     query  string  false  "Fim (YYYY-MM-DD)"
// @Success      200     {object}  dto.EntryListResponse
// @Router       /api/finance/cashbook [get]
func (h *FinanceHandler) Cashbook(c *fiber.Ctx) error {
	filter := repository.CashbookFilter{PaymentMethod: c.Query("method")}
	if s := c.Query("start"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start inválido, use YYYY-MM-DD"})
		}
		filter.Start = &t
	}
	if s := c.Query("end"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end inválido, use YYYY-MM-DD"})
		}
		filter.End = &t
	}
	entries, err := h.uc.Cashbook(filter)
	if err != nil {
		return handleError(c, err)
	}
	items := make([]dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.ToEntryResponse(e, entity.DocStatusPaid))
	}
	return c.JSON(dto.EntryListResponse{Items: items})
}

// AccountBalance godoc
// @Summary      Saldo de uma conta (recebimentos menos pagamentos)
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da conta"
// @Success      200  {object}  dto.BalanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/accounts/{id}/balance [get]
func (h *FinanceHandler) AccountBalance(c *fiber.Ctx) error {
	id := c.Params("id")
	balance, err := h.uc.AccountBalance(id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.BalanceResponse{AccountID: id, Balance: balance})
}

// Carne godoc
// @Summary      Carnê de pagamento do título em PDF
// @Tags         finance
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID do título"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/finance/documents/{id}/carne [get]
func (h *FinanceHandler) Carne(c *fiber.Ctx) error {
	doc, err := h.uc.GetDocument(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	var customer *entity.Customer
	if doc.CustomerID != nil {
		customer, err = h.customerRepo.GetByID(*doc.CustomerID)
		if err != nil {
			return handleError(c, err)
		}
	}
	out, err := h.carne.Generate(doc, customer)
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="carne-%s.pdf"`, doc.ID))
	return c.Send(out)
}
